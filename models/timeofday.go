package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time expressed as minutes since midnight (0-1439).
// All slot arithmetic and comparisons run on this representation so they stay
// pure integer operations with no date anchoring.
type TimeOfDay int

// TimeStyle selects a text rendering for a TimeOfDay.
type TimeStyle int

const (
	// Style24 renders "HH:MM" (canonical storage form).
	Style24 TimeStyle = iota
	// Style12 renders "H:MM AM/PM" (display form).
	Style12
)

// ErrInvalidTimeFormat reports a clock-time string that matches neither the
// 24-hour nor the 12-hour pattern, or carries out-of-range fields.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ParseTimeOfDay accepts either "HH:MM" (24-hour) or "H:MM AM/PM" (12-hour,
// case-insensitive meridiem) and returns the canonical TimeOfDay.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidTimeFormat)
	}

	clock := trimmed
	meridiem := ""
	if fields := strings.Fields(trimmed); len(fields) == 2 {
		clock = fields[0]
		meridiem = strings.ToUpper(fields[1])
		if meridiem != "AM" && meridiem != "PM" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
	} else if len(fields) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	if meridiem == "" {
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		return TimeOfDay(hour*60 + minute), nil
	}

	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Format renders the TimeOfDay in the requested style. Noon is "12:00 PM" and
// midnight is "12:00 AM" in the 12-hour style.
func (t TimeOfDay) Format(style TimeStyle) string {
	hour := int(t) / 60
	minute := int(t) % 60

	if style == Style24 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

func (t TimeOfDay) String() string {
	return t.Format(Style24)
}
