package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesOfDayRoundTrip(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	at := AtMinutes(day, 570)
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, 570, MinutesOfDay(at))
}

func TestAtMinutesIgnoresTimeOfDay(t *testing.T) {
	afternoon := time.Date(2025, 6, 2, 15, 45, 12, 0, time.UTC)
	at := AtMinutes(afternoon, 60)
	assert.Equal(t, time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC), at)
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{540, "9:00 AM"},
		{570, "9:30 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{1020, "5:00 PM"},
		{1439, "11:59 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMinutes(tc.minutes))
	}
}

func TestIntervalLabel(t *testing.T) {
	assert.Equal(t, "9:00 AM - 10:00 AM", IntervalLabel(540, 600))
}
