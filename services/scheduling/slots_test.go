package scheduling

import (
	"context"
	"testing"
	"time"

	"carebook/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
const testMonday = "2025-06-02"

func bookedAppointment(providerID string, start time.Time, duration int, status string) *models.Appointment {
	return &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		ClientID:   "client-1",
		Start:      start,
		End:        start.Add(time.Duration(duration) * time.Minute),
		Duration:   duration,
		Type:       models.TypeFollowup,
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

func TestGenerateSlotsFromSingleRule(t *testing.T) {
	svc, _, _ := newTestScheduleService()
	ctx := context.Background()

	// Monday 9:00-12:00, 60-minute slots.
	require.NoError(t, svc.SetWeeklyAvailability(ctx, "prov-1", []models.AvailabilityRule{
		mondayRule(540, 720, 60),
	}))

	slots, err := svc.GenerateSlots(ctx, "prov-1", testMonday, testMonday)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	// 9:00, 10:00, 11:00 only; a 12:00 slot would end past the rule.
	assert.Equal(t, 9, slots[0].Start.Hour())
	assert.Equal(t, 10, slots[1].Start.Hour())
	assert.Equal(t, 11, slots[2].Start.Hour())
	for _, slot := range slots {
		assert.Equal(t, testMonday, slot.Date)
		assert.Equal(t, 60, slot.Duration)
		assert.Equal(t, "prov-1", slot.ProviderID)
	}
	assert.Equal(t, "9:00 AM - 10:00 AM", slots[0].Label)
}

func TestGenerateSlotsSkipsBookedIntervals(t *testing.T) {
	svc, _, appts := newTestScheduleService()
	ctx := context.Background()

	require.NoError(t, svc.SetWeeklyAvailability(ctx, "prov-1", []models.AvailabilityRule{
		mondayRule(540, 720, 60),
	}))

	// Book 10:00-11:00 on that Monday.
	tenAM := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, appts.CreateIfFree(ctx, bookedAppointment("prov-1", tenAM, 60, models.StatusConfirmed)))

	slots, err := svc.GenerateSlots(ctx, "prov-1", testMonday, testMonday)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 9, slots[0].Start.Hour())
	assert.Equal(t, 11, slots[1].Start.Hour())
}

func TestGenerateSlotsFiltersByFullInterval(t *testing.T) {
	svc, _, appts := newTestScheduleService()
	ctx := context.Background()

	// 30-minute slots 9:00-12:00.
	require.NoError(t, svc.SetWeeklyAvailability(ctx, "prov-1", []models.AvailabilityRule{
		mondayRule(540, 720, 30),
	}))

	// A 90-minute booking at 10:00 must hide every slot it touches, not just
	// the one sharing its start time.
	tenAM := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, appts.CreateIfFree(ctx, bookedAppointment("prov-1", tenAM, 90, models.StatusPending)))

	slots, err := svc.GenerateSlots(ctx, "prov-1", testMonday, testMonday)
	require.NoError(t, err)

	starts := make([]string, len(slots))
	for i, slot := range slots {
		starts[i] = slot.Start.Format("15:04")
	}
	assert.Equal(t, []string{"09:00", "09:30", "11:30"}, starts)
}

func TestGenerateSlotsIgnoresInactiveAppointments(t *testing.T) {
	svc, _, appts := newTestScheduleService()
	ctx := context.Background()

	require.NoError(t, svc.SetWeeklyAvailability(ctx, "prov-1", []models.AvailabilityRule{
		mondayRule(540, 720, 60),
	}))

	tenAM := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	cancelled := bookedAppointment("prov-1", tenAM, 60, models.StatusCancelled)
	completed := bookedAppointment("prov-1", tenAM.Add(-time.Hour), 60, models.StatusCompleted)
	appts.appts[cancelled.ID] = cancelled
	appts.appts[completed.ID] = completed

	slots, err := svc.GenerateSlots(ctx, "prov-1", testMonday, testMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestGenerateSlotsIsIdempotent(t *testing.T) {
	svc, _, appts := newTestScheduleService()
	ctx := context.Background()

	require.NoError(t, svc.SetWeeklyAvailability(ctx, "prov-1", []models.AvailabilityRule{
		mondayRule(540, 720, 60),
		mondayRule(840, 960, 30),
	}))
	tenAM := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, appts.CreateIfFree(ctx, bookedAppointment("prov-1", tenAM, 60, models.StatusPending)))

	first, err := svc.GenerateSlots(ctx, "prov-1", testMonday, testMonday)
	require.NoError(t, err)
	second, err := svc.GenerateSlots(ctx, "prov-1", testMonday, testMonday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlotsChronologicalAcrossDays(t *testing.T) {
	svc, _, _ := newTestScheduleService()
	ctx := context.Background()

	require.NoError(t, svc.SetWeeklyAvailability(ctx, "prov-1", []models.AvailabilityRule{
		{DayOfWeek: time.Tuesday, Start: 600, End: 720, SlotDuration: 60},
		mondayRule(840, 960, 60), // afternoon listed before morning
		mondayRule(540, 660, 60),
	}))

	// Monday through Tuesday, inclusive on both ends.
	slots, err := svc.GenerateSlots(ctx, "prov-1", testMonday, "2025-06-03")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start),
			"slots must be ordered: %v before %v", slots[i-1].Start, slots[i].Start)
	}
	assert.Equal(t, testMonday, slots[0].Date)
	assert.Equal(t, "2025-06-03", slots[len(slots)-1].Date)
}

func TestGenerateSlotsEmptyWhenNoRules(t *testing.T) {
	svc, _, _ := newTestScheduleService()

	slots, err := svc.GenerateSlots(context.Background(), "prov-1", testMonday, testMonday)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlotsRangeCapBoundary(t *testing.T) {
	svc, _, _ := newTestScheduleService()
	ctx := context.Background()

	// 2025-06-02 through 2025-08-02 is exactly 62 inclusive dates: allowed.
	_, err := svc.GenerateSlots(ctx, "prov-1", testMonday, "2025-08-02")
	require.NoError(t, err)

	// One more day tips the inclusive count to 63: rejected.
	_, err = svc.GenerateSlots(ctx, "prov-1", testMonday, "2025-08-03")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGenerateSlotsValidation(t *testing.T) {
	svc, _, _ := newTestScheduleService()
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to string
	}{
		{"bad from date", "02-06-2025", testMonday},
		{"bad to date", testMonday, "not-a-date"},
		{"reversed range", "2025-06-09", testMonday},
		{"range too long", testMonday, "2025-12-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateSlots(ctx, "prov-1", tt.from, tt.to)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}
