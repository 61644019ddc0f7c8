// Package slotgrid defines the canonical 30-minute booking grid for a
// business day: every half hour from 08:00 through 18:00, business-local time.
//
// The grid carries 21 entries. The final 18:00 entry is the close-of-business
// boundary kept for display parity; a session cannot start at close and still
// fit, so BookableStarts exposes only the first 20 entries (08:00–17:30).
package slotgrid

import (
	"fmt"
	"time"
)

const (
	// OpenMinute and CloseMinute bound the grid in minutes since midnight.
	OpenMinute  = 8 * 60  // 08:00
	CloseMinute = 18 * 60 // 18:00

	// StepMinutes is the slot granularity and the session length.
	StepMinutes = 30
)

// Slots returns the full ordered grid of "HH:MM" slot strings,
// 08:00 through 18:00 inclusive.
func Slots() []string {
	var slots []string
	for m := OpenMinute; m <= CloseMinute; m += StepMinutes {
		slots = append(slots, FromMinutes(m))
	}
	return slots
}

// BookableStarts returns the slots at which a 30-minute session can actually
// start: the full grid minus the trailing close-of-business boundary.
func BookableStarts() []string {
	slots := Slots()
	return slots[:len(slots)-1]
}

// Contains reports whether s is an entry of the full grid.
func Contains(s string) bool {
	m, err := ToMinutes(s)
	if err != nil {
		return false
	}
	return m >= OpenMinute && m <= CloseMinute && m%StepMinutes == 0
}

// ToMinutes parses an "HH:MM" string into minutes since midnight.
func ToMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time-of-day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FromMinutes formats minutes since midnight as "HH:MM".
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FloorToSlot rounds minutes since midnight DOWN to the nearest slot boundary.
func FloorToSlot(m int) int {
	return m - m%StepMinutes
}

// Display renders a 24-hour "HH:MM" slot for end users. When twelveHour is
// true the slot is shown as e.g. "8:30 AM"; otherwise it is returned as-is.
// Only presentation changes; the underlying business-zone slot is untouched.
func Display(slot string, twelveHour bool) string {
	if !twelveHour {
		return slot
	}
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return t.Format("3:04 PM")
}
