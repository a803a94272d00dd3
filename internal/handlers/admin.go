package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"
)

// AdminHandler handles admin user management.
type AdminHandler struct {
	DB *gorm.DB
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// GetUsers returns all users, newest first.
func (h *AdminHandler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("created_at desc").Find(&users).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch users")
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}

	utils.SuccessWithCount(c, len(sanitized), sanitized)
}

// UpdateRoleRequest represents the request body for a role change.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole changes a user's role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req UpdateRoleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role := models.Role(req.Role)
	if role != models.RoleUser && role != models.RoleAdmin {
		utils.BadRequest(c, "Invalid user role")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	user.Role = role
	if err := h.DB.Save(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to update role")
		return
	}

	utils.Success(c, user.Sanitize())
}

// DeleteUser removes a user and their appointment history. Refused while
// the user still has pending or confirmed appointments.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error")
		}
		return
	}

	var active int64
	err := h.DB.Model(&models.Appointment{}).
		Where("user_id = ? AND status IN ?", userID,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&active).Error
	if err != nil {
		utils.InternalServerError(c, "Database error")
		return
	}
	if active > 0 {
		utils.BadRequest(c, "Cannot delete a user with active appointments")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Appointment{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.RefreshToken{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete user")
		return
	}

	utils.Success(c, gin.H{})
}

// Stats summarizes users and appointments for the admin dashboard.
type Stats struct {
	Users struct {
		Total   int64 `json:"total"`
		Admins  int64 `json:"admins"`
		Regular int64 `json:"regular"`
	} `json:"users"`
	Appointments struct {
		Total     int64 `json:"total"`
		Pending   int64 `json:"pending"`
		Confirmed int64 `json:"confirmed"`
		Completed int64 `json:"completed"`
		Cancelled int64 `json:"cancelled"`
	} `json:"appointments"`
}

// GetStats returns aggregate counts by role and status.
func (h *AdminHandler) GetStats(c *gin.Context) {
	var stats Stats

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.Users.Total, &models.User{}, "", nil},
		{&stats.Users.Admins, &models.User{}, "role = ?", []interface{}{models.RoleAdmin}},
		{&stats.Users.Regular, &models.User{}, "role = ?", []interface{}{models.RoleUser}},
		{&stats.Appointments.Total, &models.Appointment{}, "", nil},
		{&stats.Appointments.Pending, &models.Appointment{}, "status = ?", []interface{}{models.StatusPending}},
		{&stats.Appointments.Confirmed, &models.Appointment{}, "status = ?", []interface{}{models.StatusConfirmed}},
		{&stats.Appointments.Completed, &models.Appointment{}, "status = ?", []interface{}{models.StatusCompleted}},
		{&stats.Appointments.Cancelled, &models.Appointment{}, "status = ?", []interface{}{models.StatusCancelled}},
	}

	for _, cnt := range counts {
		q := h.DB.Model(cnt.model)
		if cnt.query != "" {
			q = q.Where(cnt.query, cnt.args...)
		}
		if err := q.Count(cnt.dest).Error; err != nil {
			utils.InternalServerError(c, "Failed to compute statistics")
			return
		}
	}

	utils.Success(c, stats)
}
