// Package authz is the role/ownership gate evaluated before every mutating
// operation. It returns tagged decisions so handlers can short-circuit with
// a 403 and a reason instead of re-deriving the rule inline.
package authz

import (
	"clinic-booking-server/internal/models"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow grants access.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses access with a reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// ManageAppointment decides whether the actor may read, update, cancel or
// delete the appointment owned by ownerID. Admins bypass ownership.
func ManageAppointment(actorID string, role models.Role, ownerID string) Decision {
	if role == models.RoleAdmin {
		return Allow()
	}
	if actorID == ownerID {
		return Allow()
	}
	return Deny("you do not own this appointment")
}

// AdminOnly decides whether the actor may perform admin-only operations
// such as confirming appointments or managing users.
func AdminOnly(role models.Role) Decision {
	if role == models.RoleAdmin {
		return Allow()
	}
	return Deny("administrator role required")
}

// ChangeOwnStatus decides whether a plain user may set the given status on
// their own appointment. Users may only cancel; everything else is an admin
// action.
func ChangeOwnStatus(role models.Role, to models.AppointmentStatus) Decision {
	if role == models.RoleAdmin {
		return Allow()
	}
	if to == models.StatusCancelled {
		return Allow()
	}
	return Deny("patients may only cancel their appointments")
}
