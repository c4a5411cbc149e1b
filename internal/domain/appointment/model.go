package appointment

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxPerDoctorPerDay is the booking quota a single doctor may hold
	// within one calendar day.
	MaxPerDoctorPerDay = 8

	// PatientSpacing is the minimum distance between two appointments of
	// the same patient, applied symmetrically around the candidate time.
	PatientSpacing = 2 * time.Hour
)

// Appointment maps to the appointments table. Doctor and room are
// referenced by id and resolved through the directory; the appointment
// never owns them.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduled_at"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor_id"`
	RoomID      uuid.UUID `db:"room_id" json:"room_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DayWindow returns the half-open interval [local midnight, next local
// midnight) containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// SpacingWindow returns the closed interval [t-2h, t+2h] used by the
// patient spacing check.
func SpacingWindow(t time.Time) (time.Time, time.Time) {
	return t.Add(-PatientSpacing), t.Add(PatientSpacing)
}
