package booking

import "errors"

// Sentinel errors returned by the booking core. Handlers match on these to
// pick the HTTP status instead of inspecting ad hoc fields.
var (
	ErrSlotTaken          = errors.New("slot already taken")
	ErrInvalidSlotTime    = errors.New("time is not one of the bookable slots")
	ErrInvalidService     = errors.New("unknown service")
	ErrNotesTooLong       = errors.New("notes exceed the allowed length")
	ErrDoctorNotesTooLong = errors.New("doctor notes exceed the allowed length")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCancelWindowClosed = errors.New("appointments can only be cancelled more than 24 hours before the visit")
	ErrTerminalStatus     = errors.New("appointment is already cancelled or completed")
)
