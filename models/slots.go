package models

import "time"

// CandidateSlot is a bookable window derived from a provider's weekly rules.
// Slots are produced on demand and never persisted; a slot becomes real only
// when a booking for its interval is accepted.
type CandidateSlot struct {
	ProviderID string    `json:"providerId"`
	Date       string    `json:"date"`     // "YYYY-MM-DD"
	Start      time.Time `json:"start"`    // absolute start instant
	Duration   int       `json:"duration"` // minutes
	Label      string    `json:"label"`    // e.g. "9:00 AM - 10:00 AM"
}
