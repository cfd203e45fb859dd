package handlers

import (
	"net/http"

	"committee-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for committee assignments
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// ProposeAssignment handles POST /api/v1/assignments
// @Summary Propose a committee assignment
// @Description Records the assignment if the committee's slot rules admit one more member of the faculty's senate division
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.ProposeAssignmentRequest true "Candidate assignment"
// @Success 201 {object} service.AssignmentResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Faculty or committee not found"
// @Failure 409 {object} map[string]interface{} "Assignment exists or concurrent modification"
// @Failure 422 {object} CapacityErrorResponse "Rejected by committee slot rules"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [post]
func (h *AssignmentHandler) ProposeAssignment(c *gin.Context) {
	var req service.ProposeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	assignment, err := h.service.ProposeAssignment(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "Failed to propose assignment")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment handles DELETE /api/v1/assignments/:email/:committee_id
// @Summary Remove a committee assignment
// @Tags assignments
// @Param email path string true "Faculty email"
// @Param committee_id path int true "Committee ID"
// @Success 204 "Assignment removed"
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Assignment or committee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{email}/{committee_id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	committeeID, ok := committeeIDParam(c, "committee_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("email"), committeeID); err != nil {
		writeError(c, err, "Failed to delete assignment")
		return
	}

	c.Status(http.StatusNoContent)
}
