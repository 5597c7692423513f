package scheduling

import (
	"context"
	"time"

	appointmentRepo "carebook/database/repository/appointment"
	availabilityRepo "carebook/database/repository/availability"
	"carebook/models"
	"carebook/services/notification"

	"github.com/go-redis/redis/v8"
)

// ScheduleService manages recurring weekly availability and slot generation.
type ScheduleService interface {
	SetWeeklyAvailability(ctx context.Context, providerID string, rules []models.AvailabilityRule) error
	GetWeeklyAvailability(ctx context.Context, providerID string) ([]models.AvailabilityRule, error)
	GenerateSlots(ctx context.Context, providerID, fromDate, toDate string) ([]models.CandidateSlot, error)
}

// AppointmentService is the booking ledger plus lifecycle operations.
type AppointmentService interface {
	Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	Reschedule(ctx context.Context, id string, newStart time.Time) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) (*models.Appointment, error)
	Transition(ctx context.Context, id, status string) (*models.Appointment, error)
	UpdateNotes(ctx context.Context, id, notes string) (*models.Appointment, error)
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Rules        availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client // optional; nil disables slot-response caching
	SlotCacheTTL time.Duration
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	locks        *providerLocks
}

// NewDefaultAppointmentService wires the ledger with per-provider booking locks.
func NewDefaultAppointmentService(repo appointmentRepo.AppointmentRepository, notifier notification.NotificationService) *DefaultAppointmentService {
	if notifier == nil {
		notifier = &notification.LogNotificationService{}
	}
	return &DefaultAppointmentService{
		Appointments: repo,
		Notifier:     notifier,
		locks:        newProviderLocks(),
	}
}
