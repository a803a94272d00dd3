package authz

import (
	"testing"

	"clinic-booking-server/internal/models"
)

func TestManageAppointment(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		role    models.Role
		ownerID string
		allowed bool
	}{
		{"owner", "u1", models.RoleUser, "u1", true},
		{"other user", "u1", models.RoleUser, "u2", false},
		{"admin on any", "admin1", models.RoleAdmin, "u2", true},
		{"empty actor", "", models.RoleUser, "u2", false},
	}

	for _, tc := range tests {
		d := ManageAppointment(tc.actorID, tc.role, tc.ownerID)
		if d.Allowed != tc.allowed {
			t.Errorf("%s: allowed=%v, want %v", tc.name, d.Allowed, tc.allowed)
		}
		if !d.Allowed && d.Reason == "" {
			t.Errorf("%s: deny without reason", tc.name)
		}
	}
}

func TestAdminOnly(t *testing.T) {
	if d := AdminOnly(models.RoleAdmin); !d.Allowed {
		t.Error("admin denied")
	}
	if d := AdminOnly(models.RoleUser); d.Allowed {
		t.Error("user allowed admin action")
	}
}

func TestChangeOwnStatus(t *testing.T) {
	if d := ChangeOwnStatus(models.RoleUser, models.StatusCancelled); !d.Allowed {
		t.Error("user denied cancelling own appointment")
	}
	if d := ChangeOwnStatus(models.RoleUser, models.StatusConfirmed); d.Allowed {
		t.Error("user allowed to confirm own appointment")
	}
	if d := ChangeOwnStatus(models.RoleUser, models.StatusCompleted); d.Allowed {
		t.Error("user allowed to complete own appointment")
	}
	if d := ChangeOwnStatus(models.RoleAdmin, models.StatusConfirmed); !d.Allowed {
		t.Error("admin denied status change")
	}
}
