package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the engine.
const DateLayout = "2006-01-02"

// MinutesOfDay returns t's offset from midnight in minutes.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AtMinutes resolves a minutes-from-midnight offset onto a calendar day.
func AtMinutes(day time.Time, minutes int) time.Time {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.Add(time.Duration(minutes) * time.Minute)
}

// FormatMinutes renders a minutes-from-midnight value as a clock label,
// e.g. 540 -> "9:00 AM".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, period)
}

// IntervalLabel renders a "9:00 AM - 10:00 AM" style label.
func IntervalLabel(startMinutes, endMinutes int) string {
	return fmt.Sprintf("%s - %s", FormatMinutes(startMinutes), FormatMinutes(endMinutes))
}
