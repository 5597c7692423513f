package scheduling

import (
	"context"
	"fmt"
	"time"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

// CancellationWindow is how far ahead of the start an appointment must be for
// a client-initiated cancellation to be within policy.
const CancellationWindow = 24 * time.Hour

// transitions lists the allowed outward status moves. Cancelled and completed
// are terminal.
var transitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted},
	models.StatusCancelled: {},
	models.StatusCompleted: {},
}

// CanTransition reports whether the status machine permits from -> to.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanCancel reports whether the appointment is still inside the cancellation
// window at the given instant. Exactly 24 hours ahead is NOT cancellable; the
// margin must be strictly greater. The predicate is advisory: Cancel itself
// does not reject late cancellations, enforcement belongs to the caller.
func CanCancel(appt *models.Appointment, now time.Time) bool {
	return appt.Start.Sub(now) > CancellationWindow
}

// CompleteElapsed marks every active appointment whose interval has fully
// elapsed as completed. Invoked periodically by the background worker.
func (s *DefaultAppointmentService) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.Appointments.CompletePast(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("completion sweep failed: %w", err)
	}
	if n > 0 {
		utils.GetLogger().Info("completed elapsed appointments", zap.Int64("count", n))
	}
	return n, nil
}
