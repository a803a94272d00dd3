package booking

// SlotTimes is the fixed daily universe of bookable times, in order.
var SlotTimes = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

// Services is the fixed set of services a visit can be booked for.
var Services = []string{
	"Консультация",
	"Диагностика",
	"Лечение",
	"Обследование",
}

const (
	MaxNotesLen       = 500
	MaxDoctorNotesLen = 1000
)

// IsSlotTime reports whether t belongs to the slot universe.
func IsSlotTime(t string) bool {
	for _, s := range SlotTimes {
		if s == t {
			return true
		}
	}
	return false
}

// IsService reports whether svc is one of the offered services.
func IsService(svc string) bool {
	for _, s := range Services {
		if s == svc {
			return true
		}
	}
	return false
}

// SplitSlots partitions the slot universe into available and booked times,
// preserving universe order in both halves. Times outside the universe are
// ignored, so available ∪ booked always equals SlotTimes.
func SplitSlots(bookedTimes []string) (available, booked []string) {
	taken := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		taken[t] = true
	}

	available = make([]string, 0, len(SlotTimes))
	booked = make([]string, 0, len(bookedTimes))
	for _, t := range SlotTimes {
		if taken[t] {
			booked = append(booked, t)
		} else {
			available = append(available, t)
		}
	}
	return available, booked
}
