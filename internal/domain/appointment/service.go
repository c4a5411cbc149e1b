package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service enforces the booking rules:
//   - a room holds at most one appointment per instant
//   - a doctor holds at most one appointment per instant
//   - a patient's appointments are at least two hours apart
//   - a doctor holds at most 8 appointments per calendar day
//
// Checks run in that order against the current store state and the first
// failure aborts the rest. Validation and persistence are separate store
// calls, so two concurrent bookings for the same slot can both pass; see
// DESIGN.md for the transactional strengthening path.
type Service struct {
	appts   Repository
	doctors DoctorDirectory
	rooms   RoomDirectory
}

func NewService(appts Repository, doctors DoctorDirectory, rooms RoomDirectory) *Service {
	return &Service{appts: appts, doctors: doctors, rooms: rooms}
}

// Book validates the candidate against the four rules and persists it.
// Booking in the past is allowed, matching the original system; only
// reschedule and cancel guard elapsed appointments.
func (s *Service) Book(ctx context.Context, a *Appointment) (*Appointment, error) {
	if err := s.validate(ctx, a, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.appts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Reschedule replaces the stored appointment with the candidate after
// re-running the booking rules. The stored record is excluded from the
// conflict queries so an unchanged reschedule does not collide with
// itself.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, a *Appointment) (*Appointment, error) {
	stored, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored.ScheduledAt.Before(time.Now()) {
		return nil, ErrAppointmentElapsed
	}
	if err := s.validate(ctx, a, id); err != nil {
		return nil, err
	}
	a.ID = id
	if err := s.appts.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel removes a future appointment. Elapsed appointments are
// immutable.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	stored, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored.ScheduledAt.Before(time.Now()) {
		return ErrAppointmentElapsed
	}
	return s.appts.Delete(ctx, id)
}

// ListByDoctorAndDate returns the doctor's appointments within the
// calendar day containing date, ascending by scheduled time.
func (s *Service) ListByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*Appointment, error) {
	ok, err := s.doctors.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDoctorNotFound
	}
	dayStart, dayEnd := DayWindow(date)
	return s.appts.ListByDoctorBetween(ctx, doctorID, dayStart, dayEnd, uuid.Nil)
}

func (s *Service) ListAll(ctx context.Context) ([]*Appointment, error) {
	return s.appts.ListAll(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appts.GetByID(ctx, id)
}

// validate runs the reference and conflict checks for a candidate.
// exclude names a stored appointment the conflict queries must skip
// (the record under reschedule); uuid.Nil skips nothing.
func (s *Service) validate(ctx context.Context, a *Appointment, exclude uuid.UUID) error {
	if a.PatientName == "" {
		return ErrPatientNameRequired
	}
	if a.ScheduledAt.IsZero() {
		return ErrScheduledAtRequired
	}

	if ok, err := s.doctors.DoctorExists(ctx, a.DoctorID); err != nil {
		return err
	} else if !ok {
		return ErrDoctorNotFound
	}
	if ok, err := s.rooms.RoomExists(ctx, a.RoomID); err != nil {
		return err
	} else if !ok {
		return ErrRoomNotFound
	}

	// Room availability: same room, same instant.
	inRoom, err := s.appts.ListByRoomAt(ctx, a.RoomID, a.ScheduledAt, exclude)
	if err != nil {
		return err
	}
	if len(inRoom) > 0 {
		return ErrRoomOccupied
	}

	// Doctor availability: same doctor, same instant.
	withDoctor, err := s.appts.ListByDoctorAt(ctx, a.DoctorID, a.ScheduledAt, exclude)
	if err != nil {
		return err
	}
	if len(withDoctor) > 0 {
		return ErrDoctorBusy
	}

	// Patient spacing: same patient within the symmetric two-hour window.
	spacingFrom, spacingTo := SpacingWindow(a.ScheduledAt)
	nearby, err := s.appts.ListByPatientBetween(ctx, a.PatientName, spacingFrom, spacingTo, exclude)
	if err != nil {
		return err
	}
	if len(nearby) > 0 {
		return ErrPatientTooSoon
	}

	// Daily quota: the doctor's bookings within the candidate's calendar
	// day, rooms included.
	dayStart, dayEnd := DayWindow(a.ScheduledAt)
	sameDay, err := s.appts.ListByDoctorBetween(ctx, a.DoctorID, dayStart, dayEnd, exclude)
	if err != nil {
		return err
	}
	if len(sameDay) >= MaxPerDoctorPerDay {
		return ErrDoctorDayFull
	}

	return nil
}
