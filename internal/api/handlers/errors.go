package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// CapacityErrorResponse is returned with 422 when a committee slot rule rejects a write
type CapacityErrorResponse struct {
	Error     string `json:"error" example:"no slots remaining on committee (available: 0)"`
	Kind      string `json:"kind" example:"no_slots_remaining"`
	Hint      string `json:"hint"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

// writeError maps a domain error to its status code. Unclassified errors
// become 500 with the given fallback message.
func writeError(c *gin.Context, err error, fallback string) {
	var capacityErr *apperrors.CapacityError
	switch {
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusUnprocessableEntity, CapacityErrorResponse{
			Error:     capacityErr.Error(),
			Kind:      string(capacityErr.Kind),
			Hint:      capacityErr.Hint,
			Required:  capacityErr.Required,
			Available: capacityErr.Available,
		})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

func badRequestBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}

// committeeIDParam parses a positive committee ID from the named path parameter
func committeeIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidCommitteeID.Error()})
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
