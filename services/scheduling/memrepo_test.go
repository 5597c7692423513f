package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	appointmentRepo "carebook/database/repository/appointment"
	"carebook/models"
)

// memAppointmentRepo is an in-memory AppointmentRepository for tests. Its
// methods take the same atomic check-and-insert shape as the Mongo
// implementation.
type memAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (r *memAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appts {
		if existing.ProviderID != appt.ProviderID || !existing.IsActive() {
			continue
		}
		if Overlaps(appt.Start, appt.Duration, existing.Start, existing.Duration) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	stored := *appt
	r.appts[appt.ID] = &stored
	return nil
}

func (r *memAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	copied := *appt
	return &copied, nil
}

func (r *memAppointmentRepo) UpdateStartIfFree(ctx context.Context, id string, start, end time.Time) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	for _, existing := range r.appts {
		if existing.ID == id || existing.ProviderID != appt.ProviderID || !existing.IsActive() {
			continue
		}
		if Overlaps(start, appt.Duration, existing.Start, existing.Duration) {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}
	appt.Start = start
	appt.End = end
	copied := *appt
	return &copied, nil
}

func (r *memAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	if !appt.IsActive() {
		return nil, appointmentRepo.ErrNotActive
	}
	appt.Status = status
	copied := *appt
	return &copied, nil
}

func (r *memAppointmentRepo) UpdateNotes(ctx context.Context, id, notes string) (*models.Appointment, error) {
	return r.set(id, func(a *models.Appointment) { a.Notes = notes })
}

func (r *memAppointmentRepo) set(id string, apply func(*models.Appointment)) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	apply(appt)
	copied := *appt
	return &copied, nil
}

func (r *memAppointmentRepo) FindActiveInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []models.Appointment{}
	for _, appt := range r.appts {
		if appt.ProviderID != providerID || !appt.IsActive() {
			continue
		}
		if appt.Start.Before(to) && appt.End.After(from) {
			result = append(result, *appt)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result, nil
}

func (r *memAppointmentRepo) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, appt := range r.appts {
		if appt.IsActive() && appt.End.Before(now) {
			appt.Status = models.StatusCompleted
			n++
		}
	}
	return n, nil
}

func (r *memAppointmentRepo) EnsureIndexes() error { return nil }

// memAvailabilityRepo is an in-memory AvailabilityRepository for tests.
type memAvailabilityRepo struct {
	mu    sync.Mutex
	rules map[string][]models.AvailabilityRule
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{rules: make(map[string][]models.AvailabilityRule)}
}

func (r *memAvailabilityRepo) ReplaceForProvider(ctx context.Context, providerID string, rules []models.AvailabilityRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]models.AvailabilityRule, len(rules))
	for i, rule := range rules {
		rule.ProviderID = providerID
		replaced[i] = rule
	}
	r.rules[providerID] = replaced
	return nil
}

func (r *memAvailabilityRepo) GetByProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rules := append([]models.AvailabilityRule{}, r.rules[providerID]...)
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].DayOfWeek == rules[j].DayOfWeek {
			return rules[i].Start < rules[j].Start
		}
		return rules[i].DayOfWeek < rules[j].DayOfWeek
	})
	return rules, nil
}

func (r *memAvailabilityRepo) EnsureIndexes() error { return nil }
