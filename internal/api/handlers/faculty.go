package handlers

import (
	"net/http"

	"committee-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FacultyHandler handles HTTP requests for faculty
type FacultyHandler struct {
	service     service.FacultyServiceInterface
	assignments service.AssignmentServiceInterface
}

// NewFacultyHandler creates a new faculty handler
func NewFacultyHandler(service service.FacultyServiceInterface, assignments service.AssignmentServiceInterface) *FacultyHandler {
	return &FacultyHandler{
		service:     service,
		assignments: assignments,
	}
}

// CreateFaculty handles POST /api/v1/faculty
// @Summary Create a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param faculty body service.CreateFacultyRequest true "Faculty data"
// @Success 201 {object} service.FacultyResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Senate division or department not found"
// @Failure 409 {object} map[string]interface{} "Faculty already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty [post]
func (h *FacultyHandler) CreateFaculty(c *gin.Context) {
	var req service.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	faculty, err := h.service.Create(&req)
	if err != nil {
		writeError(c, err, "Failed to create faculty")
		return
	}

	c.JSON(http.StatusCreated, faculty)
}

// GetFaculty handles GET /api/v1/faculty/:email
// @Summary Get faculty member by email
// @Tags faculty
// @Produce json
// @Param email path string true "Faculty email"
// @Success 200 {object} service.FacultyResponse
// @Failure 404 {object} map[string]interface{} "Faculty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty/{email} [get]
func (h *FacultyHandler) GetFaculty(c *gin.Context) {
	faculty, err := h.service.GetByEmail(c.Param("email"))
	if err != nil {
		writeError(c, err, "Failed to get faculty")
		return
	}

	c.JSON(http.StatusOK, faculty)
}

// ListFaculty handles GET /api/v1/faculty
// @Summary List faculty
// @Tags faculty
// @Produce json
// @Param senate_division query string false "Only faculty of this senate division"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FacultyListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty [get]
func (h *FacultyHandler) ListFaculty(c *gin.Context) {
	page, pageSize := pagination(c)

	faculty, err := h.service.GetAll(c.Query("senate_division"), page, pageSize)
	if err != nil {
		writeError(c, err, "Failed to get faculty")
		return
	}

	c.JSON(http.StatusOK, faculty)
}

// UpdateFaculty handles PUT /api/v1/faculty/:email
// @Summary Update a faculty member
// @Description The senate division cannot change while the member holds committee assignments
// @Tags faculty
// @Accept json
// @Produce json
// @Param email path string true "Faculty email"
// @Param faculty body service.UpdateFacultyRequest true "Updated faculty data"
// @Success 200 {object} service.FacultyResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Faculty, senate division or department not found"
// @Failure 409 {object} map[string]interface{} "Senate division locked by assignments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty/{email} [put]
func (h *FacultyHandler) UpdateFaculty(c *gin.Context) {
	var req service.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	faculty, err := h.service.Update(c.Request.Context(), c.Param("email"), &req)
	if err != nil {
		writeError(c, err, "Failed to update faculty")
		return
	}

	c.JSON(http.StatusOK, faculty)
}

// DeleteFaculty handles DELETE /api/v1/faculty/:email
// @Summary Delete a faculty member and their assignments
// @Tags faculty
// @Param email path string true "Faculty email"
// @Success 204 "Faculty deleted"
// @Failure 404 {object} map[string]interface{} "Faculty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty/{email} [delete]
func (h *FacultyHandler) DeleteFaculty(c *gin.Context) {
	if err := h.service.Delete(c.Param("email")); err != nil {
		writeError(c, err, "Failed to delete faculty")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFacultyAssignments handles GET /api/v1/faculty/:email/assignments
// @Summary List a faculty member's committee assignments
// @Tags faculty
// @Produce json
// @Param email path string true "Faculty email"
// @Success 200 {array} service.AssignmentResponse
// @Failure 404 {object} map[string]interface{} "Faculty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /faculty/{email}/assignments [get]
func (h *FacultyHandler) GetFacultyAssignments(c *gin.Context) {
	assignments, err := h.assignments.GetByFaculty(c.Param("email"))
	if err != nil {
		writeError(c, err, "Failed to get faculty assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}
