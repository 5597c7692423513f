package models

import "time"

// Appointment statuses. Pending and confirmed appointments occupy the
// provider's calendar; cancelled and completed ones do not.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment types.
const (
	TypeInitial  = "initial"
	TypeFollowup = "followup"
	TypeCheckup  = "checkup"
)

// Appointment represents a booked visit between a client and a provider.
// End is denormalized from Start + Duration so overlap queries can run
// against indexed fields.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`                 // Unique appointment identifier (UUID)
	ProviderID string    `bson:"providerId" json:"providerId"` // Provider who was booked
	ClientID   string    `bson:"clientId" json:"clientId"`     // Client who made the booking
	Start      time.Time `bson:"start" json:"start"`           // Absolute start instant
	End        time.Time `bson:"end" json:"end"`               // Start + Duration minutes
	Duration   int       `bson:"duration" json:"duration"`     // Duration in minutes
	Type       string    `bson:"type" json:"type"`             // "initial", "followup", or "checkup"
	Status     string    `bson:"status" json:"status"`         // pending / confirmed / cancelled / completed
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// IsActive reports whether the appointment blocks new bookings.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal reports whether the status permits no further transitions.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	ProviderID string    `json:"providerId" binding:"required"`
	ClientID   string    `json:"clientId" binding:"required"`
	Start      time.Time `json:"start" binding:"required"`
	Duration   int       `json:"duration" binding:"required"`
	Type       string    `json:"type" binding:"required"`
	Notes      string    `json:"notes"`
}

// PatchAppointmentRequest updates an existing appointment. Any subset of
// fields may be present; a new start triggers a reschedule with a fresh
// conflict check, a new status drives a lifecycle transition.
type PatchAppointmentRequest struct {
	Start  *time.Time `json:"start"`
	Status *string    `json:"status"`
	Notes  *string    `json:"notes"`
}
