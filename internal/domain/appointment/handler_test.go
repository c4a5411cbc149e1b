package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *Service) {
	t.Helper()
	svc, _ := newTestService()
	return NewHandler(svc), svc
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T: %v", err, err)
	}
	return httpErr.Code
}

func bookingBody(patient string, scheduledAt time.Time) string {
	b, _ := json.Marshal(map[string]any{
		"patient_name": patient,
		"scheduled_at": scheduledAt,
		"doctor_id":    doctorGarcia,
		"room_id":      room101,
	})
	return string(b)
}

func TestHandler_Book_Created(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/api/v1/appointments", bookingBody("Ana", at(10, 0)))
	if err := h.Book(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var got Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.PatientName != "Ana" {
		t.Errorf("expected patient Ana, got %s", got.PatientName)
	}
}

func TestHandler_Book_ConflictIs409(t *testing.T) {
	h, svc := newTestHandler(t)
	mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: at(10, 0), DoctorID: doctorGarcia, RoomID: room101,
	})
	e := echo.New()

	c, _ := doJSON(e, http.MethodPost, "/api/v1/appointments", bookingBody("Luis", at(10, 0)))
	err := h.Book(c)
	if status := httpStatus(t, err); status != http.StatusConflict {
		t.Errorf("expected 409, got %d", status)
	}
}

func TestHandler_Book_MissingPatientIs400(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := doJSON(e, http.MethodPost, "/api/v1/appointments", bookingBody("", at(10, 0)))
	err := h.Book(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestHandler_Book_UnknownDoctorIs404(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	body, _ := json.Marshal(map[string]any{
		"patient_name": "Ana",
		"scheduled_at": at(10, 0),
		"doctor_id":    "33333333-3333-3333-3333-333333333333",
		"room_id":      room101,
	})
	c, _ := doJSON(e, http.MethodPost, "/api/v1/appointments", string(body))
	err := h.Book(c)
	if status := httpStatus(t, err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestHandler_Reschedule_OK(t *testing.T) {
	h, svc := newTestHandler(t)
	booked := mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: at(10, 0), DoctorID: doctorGarcia, RoomID: room101,
	})
	e := echo.New()

	c, rec := doJSON(e, http.MethodPut, "/", bookingBody("Ana", at(15, 0)))
	c.SetPath("/api/v1/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues(booked.ID.String())
	if err := h.Reschedule(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Reschedule_NotFoundIs404(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := doJSON(e, http.MethodPut, "/", bookingBody("Ana", at(15, 0)))
	c.SetPath("/api/v1/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues("44444444-4444-4444-4444-444444444444")
	err := h.Reschedule(c)
	if status := httpStatus(t, err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestHandler_Reschedule_ElapsedIs409(t *testing.T) {
	h, svc := newTestHandler(t)
	booked := mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: time.Now().Add(-time.Hour), DoctorID: doctorGarcia, RoomID: room101,
	})
	e := echo.New()

	c, _ := doJSON(e, http.MethodPut, "/", bookingBody("Ana", at(15, 0)))
	c.SetPath("/api/v1/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues(booked.ID.String())
	err := h.Reschedule(c)
	if status := httpStatus(t, err); status != http.StatusConflict {
		t.Errorf("expected 409, got %d", status)
	}
}

func TestHandler_Reschedule_BadIDIs400(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := doJSON(e, http.MethodPut, "/", bookingBody("Ana", at(15, 0)))
	c.SetPath("/api/v1/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	err := h.Reschedule(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestHandler_Cancel_NoContent(t *testing.T) {
	h, svc := newTestHandler(t)
	booked := mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: at(10, 0), DoctorID: doctorGarcia, RoomID: room101,
	})
	e := echo.New()

	c, rec := doJSON(e, http.MethodDelete, "/", "")
	c.SetPath("/api/v1/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues(booked.ID.String())
	if err := h.Cancel(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_Cancel_ElapsedIs409(t *testing.T) {
	h, svc := newTestHandler(t)
	booked := mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: time.Now().Add(-time.Hour), DoctorID: doctorGarcia, RoomID: room101,
	})
	e := echo.New()

	c, _ := doJSON(e, http.MethodDelete, "/", "")
	c.SetPath("/api/v1/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues(booked.ID.String())
	err := h.Cancel(c)
	if status := httpStatus(t, err); status != http.StatusConflict {
		t.Errorf("expected 409, got %d", status)
	}
}

func TestHandler_ListAppointments(t *testing.T) {
	h, svc := newTestHandler(t)
	mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: at(10, 0), DoctorID: doctorGarcia, RoomID: room101,
	})
	mustBook(t, svc, &Appointment{
		PatientName: "Luis", ScheduledAt: at(15, 0), DoctorID: doctorLopez, RoomID: room102,
	})
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/api/v1/appointments", "")
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []*Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(items))
	}
}

func TestHandler_ListByDoctorAndDate(t *testing.T) {
	h, svc := newTestHandler(t)
	mustBook(t, svc, &Appointment{
		PatientName: "Ana", ScheduledAt: at(10, 0), DoctorID: doctorGarcia, RoomID: room101,
	})
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/?date=2030-06-01", "")
	c.SetPath("/api/v1/doctors/:id/appointments")
	c.SetParamNames("id")
	c.SetParamValues(doctorGarcia.String())
	if err := h.ListByDoctorAndDate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []*Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 appointment, got %d", len(items))
	}
}

func TestHandler_ListByDoctorAndDate_BadDateIs400(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := doJSON(e, http.MethodGet, "/?date=junio", "")
	c.SetPath("/api/v1/doctors/:id/appointments")
	c.SetParamNames("id")
	c.SetParamValues(doctorGarcia.String())
	err := h.ListByDoctorAndDate(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestHandler_ListByDoctorAndDate_UnknownDoctorIs404(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := doJSON(e, http.MethodGet, "/?date=2030-06-01", "")
	c.SetPath("/api/v1/doctors/:id/appointments")
	c.SetParamNames("id")
	c.SetParamValues("55555555-5555-5555-5555-555555555555")
	err := h.ListByDoctorAndDate(c)
	if status := httpStatus(t, err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}
