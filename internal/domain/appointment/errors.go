package appointment

import "errors"

// Common errors returned by the scheduling service.
var (
	ErrRoomOccupied        = errors.New("room is already booked at the requested time")
	ErrDoctorBusy          = errors.New("doctor already has an appointment at the requested time")
	ErrPatientTooSoon      = errors.New("patient already has an appointment within two hours of the requested time")
	ErrDoctorDayFull       = errors.New("doctor already has 8 appointments scheduled for this day")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrAppointmentElapsed  = errors.New("appointment has already taken place")
	ErrPatientNameRequired = errors.New("patient_name is required")
	ErrScheduledAtRequired = errors.New("scheduled_at is required")
)
