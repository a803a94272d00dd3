package booking

import (
	"time"

	"clinic-booking-server/internal/models"
)

// OwnerCancelWindow is how far before the visit a patient may still cancel.
// Exactly at the boundary cancellation is no longer allowed.
const OwnerCancelWindow = 24 * time.Hour

// ValidateTransition enforces the appointment state machine:
// pending → confirmed|cancelled, confirmed → completed|cancelled.
// Terminal states accept nothing.
func ValidateTransition(from, to models.AppointmentStatus) error {
	switch from {
	case models.StatusPending:
		if to == models.StatusConfirmed || to == models.StatusCancelled {
			return nil
		}
	case models.StatusConfirmed:
		if to == models.StatusCompleted || to == models.StatusCancelled {
			return nil
		}
	}
	return ErrInvalidTransition
}

// ValidateOwnerCancel checks the patient-side cancellation window. The
// appointment must still be active and start strictly more than
// OwnerCancelWindow from now.
func ValidateOwnerCancel(appt *models.Appointment, now time.Time) error {
	if appt.Status.IsTerminal() {
		return ErrTerminalStatus
	}
	if appt.ScheduledAt().Sub(now) > OwnerCancelWindow {
		return nil
	}
	return ErrCancelWindowClosed
}

// ValidateAnnotation allows doctor notes only while the appointment is
// still active.
func ValidateAnnotation(status models.AppointmentStatus) error {
	if status.IsTerminal() {
		return ErrTerminalStatus
	}
	return nil
}

// ValidateDetails checks the static appointment fields against the slot
// universe, the service list and the notes caps.
func ValidateDetails(appt *models.Appointment) error {
	if !IsSlotTime(appt.Time) {
		return ErrInvalidSlotTime
	}
	if !IsService(appt.Service) {
		return ErrInvalidService
	}
	if len([]rune(appt.Notes)) > MaxNotesLen {
		return ErrNotesTooLong
	}
	if len([]rune(appt.DoctorNotes)) > MaxDoctorNotesLen {
		return ErrDoctorNotesTooLong
	}
	return nil
}
