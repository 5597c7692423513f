package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

// maxSlotRangeDays bounds a single generation request.
const maxSlotRangeDays = 62

// GenerateSlots expands the provider's weekly rules over the inclusive date
// range into concrete candidate slots, then drops every candidate whose
// interval overlaps an active appointment. Output is chronological: date
// ascending, then start time ascending.
//
// Results may be served from a short-lived cache; a stale read is harmless
// because booking re-validates the interval.
func (s *DefaultScheduleService) GenerateSlots(ctx context.Context, providerID, fromDate, toDate string) ([]models.CandidateSlot, error) {
	if providerID == "" {
		return nil, NewValidationError("provider id is required")
	}
	from, err := time.Parse(utils.DateLayout, fromDate)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid from date %q", fromDate))
	}
	to, err := time.Parse(utils.DateLayout, toDate)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid to date %q", toDate))
	}
	if to.Before(from) {
		return nil, NewValidationError("date range end precedes start")
	}
	// The range is inclusive on both ends, so the day count is the
	// difference plus one.
	if to.Sub(from) >= maxSlotRangeDays*24*time.Hour {
		return nil, NewValidationError(fmt.Sprintf("date range exceeds %d days", maxSlotRangeDays))
	}

	cacheKey := fmt.Sprintf("slots:%s:%s:%s", providerID, fromDate, toDate)
	if cached, ok := s.cachedSlots(ctx, cacheKey); ok {
		return cached, nil
	}

	rules, err := s.Rules.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	if len(rules) == 0 {
		return []models.CandidateSlot{}, nil
	}

	byWeekday := make(map[time.Weekday][]models.AvailabilityRule)
	for _, rule := range rules {
		byWeekday[rule.DayOfWeek] = append(byWeekday[rule.DayOfWeek], rule)
	}

	// One ledger read covers the whole range; candidates are checked against
	// every active appointment's full interval, not just exact start matches.
	rangeEnd := to.AddDate(0, 0, 1)
	booked, err := s.Appointments.FindActiveInRange(ctx, providerID, from, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active appointments: %w", err)
	}

	slots := []models.CandidateSlot{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dayRules, ok := byWeekday[d.Weekday()]
		if !ok {
			continue
		}
		dateStr := d.Format(utils.DateLayout)

		for _, rule := range dayRules {
			for m := rule.Start; m+rule.SlotDuration <= rule.End; m += rule.SlotDuration {
				start := utils.AtMinutes(d, m)
				if conflictsWithBooked(start, rule.SlotDuration, booked) {
					continue
				}
				slots = append(slots, models.CandidateSlot{
					ProviderID: providerID,
					Date:       dateStr,
					Start:      start,
					Duration:   rule.SlotDuration,
					Label:      utils.IntervalLabel(m, m+rule.SlotDuration),
				})
			}
		}
	}

	// Split-day rules may generate out of order within a date.
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	s.storeSlots(ctx, cacheKey, slots)
	return slots, nil
}

func conflictsWithBooked(start time.Time, duration int, booked []models.Appointment) bool {
	for _, appt := range booked {
		if Overlaps(start, duration, appt.Start, appt.Duration) {
			return true
		}
	}
	return false
}

func (s *DefaultScheduleService) cachedSlots(ctx context.Context, key string) ([]models.CandidateSlot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.CandidateSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		utils.GetLogger().Warn("failed to decode cached slots", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return slots, true
}

func (s *DefaultScheduleService) storeSlots(ctx context.Context, key string, slots []models.CandidateSlot) {
	if s.Cache == nil {
		return
	}
	ttl := s.SlotCacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache slots", zap.String("key", key), zap.Error(err))
	}
}
