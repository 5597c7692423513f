package scheduling

import "time"

// Overlaps reports whether two half-open appointment intervals share at least
// one instant: [aStart, aStart+aDuration) vs [bStart, bStart+bDuration).
// Durations are in minutes. Back-to-back intervals do not overlap.
func Overlaps(aStart time.Time, aDuration int, bStart time.Time, bDuration int) bool {
	aEnd := aStart.Add(time.Duration(aDuration) * time.Minute)
	bEnd := bStart.Add(time.Duration(bDuration) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
