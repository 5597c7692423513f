package scheduling

import (
	"context"
	"fmt"
	"time"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

const minutesPerDay = 24 * 60

// SetWeeklyAvailability validates every rule before atomically replacing the
// provider's whole rule set. A failing rule aborts the call with nothing
// written.
func (s *DefaultScheduleService) SetWeeklyAvailability(ctx context.Context, providerID string, rules []models.AvailabilityRule) error {
	if providerID == "" {
		return NewValidationError("provider id is required")
	}
	for i, rule := range rules {
		if err := validateRule(i, rule); err != nil {
			return err
		}
	}

	if err := s.Rules.ReplaceForProvider(ctx, providerID, rules); err != nil {
		return fmt.Errorf("failed to replace availability rules: %w", err)
	}

	utils.GetLogger().Info("weekly availability replaced",
		zap.String("providerID", providerID),
		zap.Int("rules", len(rules)))
	return nil
}

// GetWeeklyAvailability returns the provider's rule set; empty if none set.
func (s *DefaultScheduleService) GetWeeklyAvailability(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	if providerID == "" {
		return nil, NewValidationError("provider id is required")
	}
	rules, err := s.Rules.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	return rules, nil
}

func validateRule(i int, rule models.AvailabilityRule) error {
	if rule.DayOfWeek < time.Sunday || rule.DayOfWeek > time.Saturday {
		return NewValidationError(fmt.Sprintf("rule %d: dayOfWeek must be between 0 and 6; got %d", i+1, rule.DayOfWeek))
	}
	if rule.Start < 0 || rule.End > minutesPerDay {
		return NewValidationError(fmt.Sprintf("rule %d: times must fall within a single day", i+1))
	}
	if rule.Start >= rule.End {
		return NewValidationError(fmt.Sprintf("rule %d: start must be before end", i+1))
	}
	if rule.SlotDuration <= 0 {
		return NewValidationError(fmt.Sprintf("rule %d: slot duration must be positive; got %d", i+1, rule.SlotDuration))
	}
	return nil
}
