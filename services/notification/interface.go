package notification

import (
	"context"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

// NotificationService is the engine's view of the platform's notification
// layer. Delivery (email, push) happens outside the scheduling engine.
type NotificationService interface {
	AppointmentBooked(ctx context.Context, appt *models.Appointment) error
	AppointmentRescheduled(ctx context.Context, appt *models.Appointment) error
	AppointmentCancelled(ctx context.Context, appt *models.Appointment) error
}

// LogNotificationService records notification events to the log only. It is
// the default wiring when no delivery backend is attached.
type LogNotificationService struct{}

func (s *LogNotificationService) AppointmentBooked(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("notify: appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.String("clientID", appt.ClientID))
	return nil
}

func (s *LogNotificationService) AppointmentRescheduled(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("notify: appointment rescheduled",
		zap.String("appointmentID", appt.ID),
		zap.Time("start", appt.Start))
	return nil
}

func (s *LogNotificationService) AppointmentCancelled(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("notify: appointment cancelled",
		zap.String("appointmentID", appt.ID))
	return nil
}
