package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the store contract the scheduling service validates
// against. Range queries take an exclude id so a reschedule can omit the
// record being replaced; pass uuid.Nil to match everything.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*Appointment, error)

	// ListByRoomAt returns appointments for the room at exactly the given
	// instant.
	ListByRoomAt(ctx context.Context, roomID uuid.UUID, at time.Time, exclude uuid.UUID) ([]*Appointment, error)
	// ListByDoctorAt returns appointments for the doctor at exactly the
	// given instant.
	ListByDoctorAt(ctx context.Context, doctorID uuid.UUID, at time.Time, exclude uuid.UUID) ([]*Appointment, error)
	// ListByPatientBetween returns appointments for the patient (exact
	// name match) with scheduled time in [from, to], bounds inclusive.
	ListByPatientBetween(ctx context.Context, patientName string, from, to time.Time, exclude uuid.UUID) ([]*Appointment, error)
	// ListByDoctorBetween returns appointments for the doctor with
	// scheduled time in [from, to), ordered by scheduled time ascending.
	ListByDoctorBetween(ctx context.Context, doctorID uuid.UUID, from, to time.Time, exclude uuid.UUID) ([]*Appointment, error)
}

// DoctorDirectory resolves doctor references. Implemented by the
// directory service.
type DoctorDirectory interface {
	DoctorExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// RoomDirectory resolves room references. Implemented by the directory
// service.
type RoomDirectory interface {
	RoomExists(ctx context.Context, id uuid.UUID) (bool, error)
}
