package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsTerminal reports whether the status no longer occupies a slot.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Appointment represents a booked visit with a specialist.
type Appointment struct {
	BaseModel
	UserID     string            `gorm:"size:36;index" json:"userId"`
	Specialist string            `gorm:"size:100;index" json:"specialist"`
	Date       time.Time         `gorm:"index" json:"date"` // calendar date, stored at UTC midnight
	Time       string            `gorm:"size:5" json:"time"`
	Service    string            `gorm:"size:100" json:"service"`
	Notes      string            `gorm:"size:500" json:"notes,omitempty"`
	Status     AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`

	DoctorNotes    string     `gorm:"size:1000" json:"doctorNotes,omitempty"`
	DoctorActionAt *time.Time `json:"doctorActionAt,omitempty"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// ScheduledAt returns the exact start instant of the appointment, combining
// the calendar date with the slot time.
func (a *Appointment) ScheduledAt() time.Time {
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		return a.Date
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// NormalizeDate truncates a parsed date to UTC midnight so (date, time,
// specialist) lookups compare equal regardless of the incoming zone offset.
func NormalizeDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
