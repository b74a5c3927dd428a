package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotTime maps a zero-based slot index to its wall-clock label, e.g.
// SlotTime(1, 16, 15, 45) == "5:00 PM". Pure and deterministic; slot times are
// always derived from slot order, never stored. Negative indices are a caller
// contract violation.
func SlotTime(index, startHour, startMinute, durationMinutes int) string {
	total := startHour*60 + startMinute + index*durationMinutes
	hour := (total / 60) % 24
	minute := total % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, suffix)
}

// ParseStartTime splits an "HH:MM" start time into hour and minute.
func ParseStartTime(s string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid start time %q: expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start time %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid start time %q: out of range", s)
	}
	return hour, minute, nil
}
