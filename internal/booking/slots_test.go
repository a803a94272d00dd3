package booking

import (
	"reflect"
	"testing"
)

func TestSplitSlots_Empty(t *testing.T) {
	available, booked := SplitSlots(nil)
	if !reflect.DeepEqual(available, SlotTimes) {
		t.Errorf("expected full universe available, got %v", available)
	}
	if len(booked) != 0 {
		t.Errorf("expected no booked times, got %v", booked)
	}
}

func TestSplitSlots_PreservesUniverseOrder(t *testing.T) {
	// Booked times arrive in query order, not universe order.
	available, booked := SplitSlots([]string{"17:00", "09:00", "12:00"})

	if !reflect.DeepEqual(booked, []string{"09:00", "12:00", "17:00"}) {
		t.Errorf("booked not in universe order: %v", booked)
	}
	if !reflect.DeepEqual(available, []string{"10:00", "11:00", "14:00", "15:00", "16:00"}) {
		t.Errorf("unexpected available slots: %v", available)
	}
}

func TestSplitSlots_PartitionProperty(t *testing.T) {
	cases := [][]string{
		nil,
		{"09:00"},
		{"10:00", "15:00"},
		{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"},
		{"13:00", "18:00"}, // outside the universe, ignored
		{"10:00", "10:00"}, // duplicates collapse
	}

	for _, booked := range cases {
		available, taken := SplitSlots(booked)

		merged := make(map[string]int)
		for _, s := range available {
			merged[s]++
		}
		for _, s := range taken {
			merged[s]++
		}

		if len(merged) != len(SlotTimes) {
			t.Errorf("booked=%v: union has %d slots, want %d", booked, len(merged), len(SlotTimes))
		}
		for _, s := range SlotTimes {
			if merged[s] != 1 {
				t.Errorf("booked=%v: slot %s appears %d times across both sets", booked, s, merged[s])
			}
		}
	}
}

func TestIsSlotTime(t *testing.T) {
	for _, s := range SlotTimes {
		if !IsSlotTime(s) {
			t.Errorf("universe slot %s rejected", s)
		}
	}
	for _, s := range []string{"13:00", "09:30", "", "9:00"} {
		if IsSlotTime(s) {
			t.Errorf("non-slot time %q accepted", s)
		}
	}
}

func TestIsService(t *testing.T) {
	if !IsService("Консультация") {
		t.Error("known service rejected")
	}
	if IsService("Массаж") {
		t.Error("unknown service accepted")
	}
}
