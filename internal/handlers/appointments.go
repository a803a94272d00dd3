package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-booking-server/internal/authz"
	"clinic-booking-server/internal/booking"
	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/middleware"
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store *booking.Store
	Cfg   *config.Config
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store *booking.Store, cfg *config.Config) *AppointmentHandler {
	return &AppointmentHandler{Store: store, Cfg: cfg}
}

// parseDate accepts a plain calendar date or a full timestamp and returns it
// normalized to UTC midnight.
func parseDate(value string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", value); err == nil {
		return models.NormalizeDate(d), nil
	}
	d, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return models.NormalizeDate(d), nil
}

// writeBookingError maps booking core errors onto the response envelope.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotTaken):
		utils.BadRequest(c, "This time is already taken")
	case errors.Is(err, booking.ErrInvalidSlotTime),
		errors.Is(err, booking.ErrInvalidService),
		errors.Is(err, booking.ErrNotesTooLong),
		errors.Is(err, booking.ErrDoctorNotesTooLong),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrTerminalStatus):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, booking.ErrCancelWindowClosed):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.NotFound(c, "Appointment not found")
	default:
		utils.InternalServerError(c, "Database error")
	}
}

// CreateAppointmentRequest represents the request body for booking a visit.
type CreateAppointmentRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Service    string `json:"service" binding:"required"`
	Specialist string `json:"specialist"`
	Notes      string `json:"notes"`
}

// CreateAppointment books a new pending appointment for the requesting user.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date format")
		return
	}

	specialist := req.Specialist
	if specialist == "" {
		specialist = h.Cfg.DefaultSpecialist
	}

	appointment := models.Appointment{
		UserID:     userID,
		Specialist: specialist,
		Date:       date,
		Time:       req.Time,
		Service:    req.Service,
		Notes:      req.Notes,
	}

	if err := h.Store.Create(c.Request.Context(), &appointment); err != nil {
		writeBookingError(c, err)
		return
	}

	utils.Created(c, appointment)
}

// GetMyAppointments returns the requesting user's appointments, newest date
// first.
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	err := h.Store.DB().WithContext(c.Request.Context()).
		Preload("User").
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.SuccessWithCount(c, len(appointments), appointments)
}

// GetAppointments returns every appointment with the owner populated. Admin
// only (enforced by routing).
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	err := h.Store.DB().WithContext(c.Request.Context()).
		Preload("User").
		Order("date desc").
		Find(&appointments).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments")
		return
	}

	utils.SuccessWithCount(c, len(appointments), appointments)
}

// AvailableTimesResponse lists the free/booked split for one day.
type AvailableTimesResponse struct {
	Success        bool     `json:"success"`
	Date           string   `json:"date"`
	Specialist     string   `json:"specialist"`
	AvailableTimes []string `json:"availableTimes"`
	BookedTimes    []string `json:"bookedTimes"`
}

// GetAvailableTimes computes which slots are still free on a date.
func (h *AppointmentHandler) GetAvailableTimes(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.BadRequest(c, "Please provide a date")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		utils.BadRequest(c, "Invalid date format")
		return
	}

	specialist := c.Query("specialist")
	if specialist == "" {
		specialist = h.Cfg.DefaultSpecialist
	}

	available, booked, err := h.Store.AvailableTimes(c.Request.Context(), date, specialist)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch available times")
		return
	}

	c.JSON(http.StatusOK, AvailableTimesResponse{
		Success:        true,
		Date:           dateStr,
		Specialist:     specialist,
		AvailableTimes: available,
		BookedTimes:    booked,
	})
}

// UpdateAppointmentRequest represents the request body for the generic
// owner/admin update. All fields are optional.
type UpdateAppointmentRequest struct {
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Service    string  `json:"service"`
	Specialist string  `json:"specialist"`
	Notes      *string `json:"notes"`
	Status     string  `json:"status"`
}

// UpdateAppointment handles PUT /appointments/:id. Owners may edit details
// of their active appointments and cancel them while the 24h window is
// open; admins may do either on any appointment.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointment, ok := h.loadAuthorized(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)

	if req.Status != "" && models.AppointmentStatus(req.Status) != appointment.Status {
		to := models.AppointmentStatus(req.Status)

		if decision := authz.ChangeOwnStatus(role, to); !decision.Allowed {
			utils.Forbidden(c, decision.Reason)
			return
		}
		if err := booking.ValidateTransition(appointment.Status, to); err != nil {
			writeBookingError(c, err)
			return
		}
		if role != models.RoleAdmin {
			if err := booking.ValidateOwnerCancel(appointment, time.Now().UTC()); err != nil {
				writeBookingError(c, err)
				return
			}
		}
		appointment.Status = to
	}

	slotChanged := false
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			utils.BadRequest(c, "Invalid date format")
			return
		}
		if !date.Equal(appointment.Date) {
			appointment.Date = date
			slotChanged = true
		}
	}
	if req.Time != "" && req.Time != appointment.Time {
		appointment.Time = req.Time
		slotChanged = true
	}
	if req.Specialist != "" && req.Specialist != appointment.Specialist {
		appointment.Specialist = req.Specialist
		slotChanged = true
	}
	if req.Service != "" {
		appointment.Service = req.Service
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := booking.ValidateDetails(appointment); err != nil {
		writeBookingError(c, err)
		return
	}

	var err error
	if slotChanged {
		err = h.Store.Reschedule(c.Request.Context(), appointment)
	} else {
		err = h.Store.Save(c.Request.Context(), appointment)
	}
	if err != nil {
		writeBookingError(c, err)
		return
	}

	utils.Success(c, appointment)
}

// DeleteAppointment removes an appointment. Owner or admin only.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointment, ok := h.loadAuthorized(c)
	if !ok {
		return
	}

	if err := h.Store.DB().WithContext(c.Request.Context()).
		Delete(&models.Appointment{}, "id = ?", appointment.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete appointment")
		return
	}

	utils.Success(c, gin.H{})
}

// loadAuthorized fetches the appointment from the path id and runs the
// ownership gate. Writes the error response itself on failure.
func (h *AppointmentHandler) loadAuthorized(c *gin.Context) (*models.Appointment, bool) {
	appointment, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return nil, false
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)

	if decision := authz.ManageAppointment(userID, role, appointment.UserID); !decision.Allowed {
		utils.Forbidden(c, decision.Reason)
		return nil, false
	}
	return appointment, true
}

// DoctorActionRequest carries the optional notes for admin transitions.
type DoctorActionRequest struct {
	Notes string `json:"notes"`
}

// ConfirmAppointment transitions pending → confirmed. Admin only.
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.doctorAction(c, models.StatusConfirmed, false)
}

// CancelAppointment transitions pending/confirmed → cancelled with an
// optional reason. Admin only.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	h.doctorAction(c, models.StatusCancelled, false)
}

// CompleteAppointment transitions confirmed → completed with optional
// doctor notes. Admin only.
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	h.doctorAction(c, models.StatusCompleted, false)
}

// AddDoctorNotes annotates an active appointment without changing status.
// Admin only.
func (h *AppointmentHandler) AddDoctorNotes(c *gin.Context) {
	h.doctorAction(c, "", true)
}

func (h *AppointmentHandler) doctorAction(c *gin.Context, to models.AppointmentStatus, notesRequired bool) {
	appointment, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	var req DoctorActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request payload: "+err.Error())
			return
		}
	}
	if notesRequired && req.Notes == "" {
		utils.BadRequest(c, "Please provide notes")
		return
	}

	if to != "" {
		if err := booking.ValidateTransition(appointment.Status, to); err != nil {
			writeBookingError(c, err)
			return
		}
		appointment.Status = to
	} else if err := booking.ValidateAnnotation(appointment.Status); err != nil {
		writeBookingError(c, err)
		return
	}

	if req.Notes != "" {
		appointment.DoctorNotes = req.Notes
	}
	now := time.Now().UTC()
	appointment.DoctorActionAt = &now

	if err := booking.ValidateDetails(appointment); err != nil {
		writeBookingError(c, err)
		return
	}

	if err := h.Store.Save(c.Request.Context(), appointment); err != nil {
		writeBookingError(c, err)
		return
	}

	utils.Success(c, appointment)
}
