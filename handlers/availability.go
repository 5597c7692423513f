package handlers

import (
	"net/http"

	"carebook/models"
	"carebook/services/scheduling"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes availability and slot-generation endpoints.
type ScheduleHandler struct {
	Service scheduling.ScheduleService
}

func NewScheduleHandler(svc scheduling.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// SetAvailabilityHandler replaces a provider's full weekly rule set.
func (h *ScheduleHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.SetWeeklyAvailability(c.Request.Context(), providerID, req.Rules); err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Weekly availability updated",
		"rules":   req.Rules,
	})
}

// GetAvailabilityHandler returns a provider's weekly rule set.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	rules, err := h.Service.GetWeeklyAvailability(c.Request.Context(), providerID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GetSlotsHandler generates candidate slots for a provider over a date range.
func (h *ScheduleHandler) GetSlotsHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters (YYYY-MM-DD)"})
		return
	}

	slots, err := h.Service.GenerateSlots(c.Request.Context(), providerID, from, to)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
