package handlers

import (
	"errors"
	"net/http"

	"carebook/services/scheduling"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps the engine's error taxonomy onto HTTP statuses.
func respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var conflictErr *scheduling.ConflictError
	var notFoundErr *scheduling.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "Booking conflict", conflictErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
