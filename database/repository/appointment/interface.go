// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"carebook/config"
	"carebook/database"
	"carebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a conflicting active appointment already
// holds part of the requested interval.
var ErrSlotTaken = errors.New("appointment interval already taken")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// ErrNotActive is returned when a status update finds the appointment already
// in a terminal state, e.g. because the completion sweep got there first.
var ErrNotActive = errors.New("appointment is no longer active")

// AppointmentRepository is the persistence surface for the booking ledger.
type AppointmentRepository interface {
	// CreateIfFree atomically re-checks the interval and inserts the
	// appointment; it returns ErrSlotTaken when an active appointment
	// overlaps [appt.Start, appt.End).
	CreateIfFree(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// UpdateStartIfFree moves the appointment, re-checking the new interval
	// against all other active appointments of the same provider.
	UpdateStartIfFree(ctx context.Context, id string, start, end time.Time) (*models.Appointment, error)
	// UpdateStatus moves the appointment to the given status only while it is
	// still pending or confirmed; it returns ErrNotActive once the record has
	// reached a terminal state.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	UpdateNotes(ctx context.Context, id, notes string) (*models.Appointment, error)
	FindActiveInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error)
	// CompletePast marks active appointments whose interval has fully
	// elapsed as completed; returns the number transitioned.
	CompletePast(ctx context.Context, now time.Time) (int64, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
