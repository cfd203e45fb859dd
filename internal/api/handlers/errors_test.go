package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "committee-tracker-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperrors.NewValidationError("email", "must be a valid email"), http.StatusBadRequest, "email"},
		{"not found", apperrors.ErrCommitteeNotFound, http.StatusNotFound, "committee not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrFacultyNotFound), http.StatusNotFound, "faculty"},
		{"already exists", apperrors.ErrAssignmentExists, http.StatusConflict, "committee assignment"},
		{"conflict", apperrors.ErrFacultyDivisionLocked, http.StatusConflict, ""},
		{"unclassified", errors.New("connection refused"), http.StatusInternalServerError, "Failed to do the thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, tt.err, "Failed to do the thing")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestWriteErrorCapacity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	writeError(c, fmt.Errorf("propose: %w", apperrors.NewUnmetRequirementsError(2, 1)), "unused")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body CapacityErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(apperrors.CapacityUnmetRequirements), body.Kind)
	assert.Equal(t, 2, body.Required)
	assert.Equal(t, 1, body.Available)
	assert.NotEmpty(t, body.Hint)
}

func TestCommitteeIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, ok := range map[string]bool{"7": true, "0": false, "-1": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		id, got := committeeIDParam(c, "id")

		assert.Equal(t, ok, got, raw)
		if ok {
			assert.Equal(t, uint(7), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	}
}
