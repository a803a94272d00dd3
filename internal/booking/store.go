package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic-booking-server/internal/models"
)

// activeStatuses are the statuses that occupy a slot.
var activeStatuses = []models.AppointmentStatus{
	models.StatusPending,
	models.StatusConfirmed,
}

// Store wraps appointment persistence with the conflict guard. Creates and
// slot moves for the same (date, specialist) are serialized through a keyed
// mutex, so two concurrent requests cannot both pass the availability check
// and double-book a slot.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store on top of the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, locks: make(map[string]*sync.Mutex)}
}

// DB exposes the underlying handle for plain reads.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) slotLock(date time.Time, specialist string) *sync.Mutex {
	key := date.Format("2006-01-02") + "|" + specialist
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// BookedTimes returns the times of all active appointments for the given
// date and specialist.
func (s *Store) BookedTimes(ctx context.Context, date time.Time, specialist string) ([]string, error) {
	var times []string
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("date = ? AND specialist = ? AND status IN ?", date, specialist, activeStatuses).
		Pluck("time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// AvailableTimes computes the free/booked split of the slot universe for a
// date and specialist. Read-only.
func (s *Store) AvailableTimes(ctx context.Context, date time.Time, specialist string) (available, booked []string, err error) {
	times, err := s.BookedTimes(ctx, date, specialist)
	if err != nil {
		return nil, nil, err
	}
	available, booked = SplitSlots(times)
	return available, booked, nil
}

// Create inserts a new pending appointment, failing with ErrSlotTaken when
// an active appointment already occupies the same (date, time, specialist).
// The check and the insert run inside one transaction while the slot lock
// is held.
func (s *Store) Create(ctx context.Context, appt *models.Appointment) error {
	if err := ValidateDetails(appt); err != nil {
		return err
	}
	appt.Date = models.NormalizeDate(appt.Date)
	appt.Status = models.StatusPending

	l := s.slotLock(appt.Date, appt.Specialist)
	l.Lock()
	defer l.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSlotFree(tx, appt, ""); err != nil {
			return err
		}
		return tx.Create(appt).Error
	})
}

// Reschedule persists an updated appointment. When the slot key changed the
// target slot is re-checked under the lock, excluding the appointment itself.
func (s *Store) Reschedule(ctx context.Context, appt *models.Appointment) error {
	if err := ValidateDetails(appt); err != nil {
		return err
	}
	appt.Date = models.NormalizeDate(appt.Date)

	l := s.slotLock(appt.Date, appt.Specialist)
	l.Lock()
	defer l.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !appt.Status.IsTerminal() {
			if err := ensureSlotFree(tx, appt, appt.ID); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(appt).Error
	})
}

// Save persists changes that do not move the appointment to another slot
// (status transitions, notes).
func (s *Store) Save(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(appt).Error
}

// Get loads an appointment with its owner populated.
func (s *Store) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).Preload("User").First(&appt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func ensureSlotFree(tx *gorm.DB, appt *models.Appointment, excludeID string) error {
	var existing models.Appointment
	q := tx.Where("date = ? AND time = ? AND specialist = ? AND status IN ?",
		appt.Date, appt.Time, appt.Specialist, activeStatuses)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Take(&existing).Error
	if err == nil {
		return ErrSlotTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
