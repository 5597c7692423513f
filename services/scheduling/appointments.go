package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "carebook/database/repository/appointment"
	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a new pending appointment. The conflict check and the insert
// run under the provider's booking lock and inside a storage transaction, so
// of two concurrent overlapping requests at most one can succeed.
func (s *DefaultAppointmentService) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		ClientID:   req.ClientID,
		Start:      req.Start,
		End:        req.Start.Add(time.Duration(req.Duration) * time.Minute),
		Duration:   req.Duration,
		Type:       req.Type,
		Status:     models.StatusPending,
		Notes:      req.Notes,
		CreatedAt:  now,
	}

	lock := s.locks.get(req.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.Appointments.CreateIfFree(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, NewConflictError(fmt.Sprintf(
				"interval [%s, %s) overlaps an existing appointment",
				appt.Start.Format(time.RFC3339), appt.End.Format(time.RFC3339)))
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.Time("start", appt.Start))

	if err := s.Notifier.AppointmentBooked(ctx, appt); err != nil {
		utils.GetLogger().Warn("booked notification failed", zap.Error(err))
	}
	return appt, nil
}

// Get loads a single appointment by id.
func (s *DefaultAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		}
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	return appt, nil
}

// Reschedule moves an appointment to a new start, keeping its duration and
// status. The appointment itself is excluded from the conflict check, so a
// reschedule onto the current start is always a no-op success.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, id string, newStart time.Time) (*models.Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsTerminal() {
		return nil, NewValidationError(fmt.Sprintf("cannot reschedule a %s appointment", current.Status))
	}

	newEnd := newStart.Add(time.Duration(current.Duration) * time.Minute)

	lock := s.locks.get(current.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	updated, err := s.Appointments.UpdateStartIfFree(ctx, id, newStart, newEnd)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			return nil, NewConflictError(fmt.Sprintf(
				"interval [%s, %s) overlaps an existing appointment",
				newStart.Format(time.RFC3339), newEnd.Format(time.RFC3339)))
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		}
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	utils.GetLogger().Info("appointment rescheduled",
		zap.String("appointmentID", id),
		zap.Time("start", newStart))

	if err := s.Notifier.AppointmentRescheduled(ctx, updated); err != nil {
		utils.GetLogger().Warn("rescheduled notification failed", zap.Error(err))
	}
	return updated, nil
}

// Cancel soft-cancels an appointment. The record is never deleted and a
// second cancel of the same appointment is a no-op success.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == models.StatusCancelled {
		return current, nil
	}
	if current.Status == models.StatusCompleted {
		return nil, NewValidationError("cannot cancel a completed appointment")
	}

	updated, err := s.Appointments.UpdateStatus(ctx, id, models.StatusCancelled)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		case errors.Is(err, appointmentRepo.ErrNotActive):
			// The appointment went terminal between our read and the write,
			// typically because the completion sweep claimed it first.
			latest, getErr := s.Get(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			if latest.Status == models.StatusCancelled {
				return latest, nil
			}
			return nil, NewValidationError(fmt.Sprintf("cannot cancel a %s appointment", latest.Status))
		}
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	utils.GetLogger().Info("appointment cancelled", zap.String("appointmentID", id))

	if err := s.Notifier.AppointmentCancelled(ctx, updated); err != nil {
		utils.GetLogger().Warn("cancelled notification failed", zap.Error(err))
	}
	return updated, nil
}

// Transition drives a lifecycle status change (e.g. pending -> confirmed).
// Cancellation goes through Cancel so it keeps its idempotency.
func (s *DefaultAppointmentService) Transition(ctx context.Context, id, status string) (*models.Appointment, error) {
	if status == models.StatusCancelled {
		return s.Cancel(ctx, id)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !CanTransition(current.Status, status) {
		return nil, NewValidationError(fmt.Sprintf("invalid transition %s -> %s", current.Status, status))
	}

	updated, err := s.Appointments.UpdateStatus(ctx, id, status)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		case errors.Is(err, appointmentRepo.ErrNotActive):
			latest, getErr := s.Get(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			if latest.Status == status {
				return latest, nil
			}
			return nil, NewValidationError(fmt.Sprintf("invalid transition %s -> %s", latest.Status, status))
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	utils.GetLogger().Info("appointment status updated",
		zap.String("appointmentID", id),
		zap.String("status", status))
	return updated, nil
}

// UpdateNotes replaces the appointment's notes.
func (s *DefaultAppointmentService) UpdateNotes(ctx context.Context, id, notes string) (*models.Appointment, error) {
	updated, err := s.Appointments.UpdateNotes(ctx, id, notes)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("appointment %s not found", id))
		}
		return nil, fmt.Errorf("failed to update appointment notes: %w", err)
	}
	return updated, nil
}

func validateCreate(req models.CreateAppointmentRequest) error {
	if req.ProviderID == "" {
		return NewValidationError("provider id is required")
	}
	if req.ClientID == "" {
		return NewValidationError("client id is required")
	}
	if req.Start.IsZero() {
		return NewValidationError("start time is required")
	}
	if req.Duration <= 0 {
		return NewValidationError(fmt.Sprintf("duration must be positive; got %d", req.Duration))
	}
	switch req.Type {
	case models.TypeInitial, models.TypeFollowup, models.TypeCheckup:
	default:
		return NewValidationError(fmt.Sprintf("unknown appointment type %q", req.Type))
	}
	return nil
}
