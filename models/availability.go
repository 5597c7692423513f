package models

import "time"

// AvailabilityRule describes one recurring weekly booking window for a provider.
// A provider may hold several rules for the same weekday (e.g. split
// morning/afternoon ranges).
type AvailabilityRule struct {
	ProviderID   string       `bson:"providerId" json:"providerId"`
	DayOfWeek    time.Weekday `bson:"dayOfWeek" json:"dayOfWeek"`       // 0=Sunday … 6=Saturday
	Start        int          `bson:"start" json:"start"`               // minutes from midnight (e.g., 540 for 9:00 AM)
	End          int          `bson:"end" json:"end"`                   // minutes from midnight, same day
	SlotDuration int          `bson:"slotDuration" json:"slotDuration"` // minutes per generated slot
}

// SetAvailabilityRequest carries a provider's full weekly rule set.
// The whole set replaces whatever was stored before; there are no
// partial-day edits.
type SetAvailabilityRequest struct {
	Rules []AvailabilityRule `json:"rules" binding:"required"`
}
