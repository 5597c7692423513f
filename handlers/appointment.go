package handlers

import (
	"net/http"

	"carebook/models"
	"carebook/services/scheduling"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking ledger endpoints.
type AppointmentHandler struct {
	Service scheduling.AppointmentService
}

func NewAppointmentHandler(svc scheduling.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler books a new pending appointment.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// GetAppointmentHandler returns a single appointment by id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// PatchAppointmentHandler applies partial updates: a new start triggers a
// reschedule with a fresh conflict check, a new status drives a lifecycle
// transition, notes are replaced as-is. Updates apply in that order and the
// first failure aborts the call.
func (h *AppointmentHandler) PatchAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	var req models.PatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.Start == nil && req.Status == nil && req.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	ctx := c.Request.Context()
	var appt *models.Appointment
	var err error

	if req.Start != nil {
		if appt, err = h.Service.Reschedule(ctx, id, *req.Start); err != nil {
			respondSchedulingError(c, err)
			return
		}
	}
	if req.Status != nil {
		if appt, err = h.Service.Transition(ctx, id, *req.Status); err != nil {
			respondSchedulingError(c, err)
			return
		}
	}
	if req.Notes != nil {
		if appt, err = h.Service.UpdateNotes(ctx, id, *req.Notes); err != nil {
			respondSchedulingError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelAppointmentHandler soft-cancels an appointment. Cancelling an
// already-cancelled appointment succeeds without changing anything.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.Cancel(c.Request.Context(), id)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled",
		"appointment": appt,
	})
}
