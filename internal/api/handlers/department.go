package handlers

import (
	"net/http"

	"committee-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	service service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// CreateDepartment handles POST /api/v1/departments
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} service.DepartmentResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Department already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	department, err := h.service.Create(&req)
	if err != nil {
		writeError(c, err, "Failed to create department")
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment handles GET /api/v1/departments/:code
// @Summary Get department by code
// @Tags departments
// @Produce json
// @Param code path string true "Department code"
// @Success 200 {object} service.DepartmentResponse
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{code} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	department, err := h.service.GetByCode(c.Param("code"))
	if err != nil {
		writeError(c, err, "Failed to get department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListDepartments handles GET /api/v1/departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DepartmentListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	page, pageSize := pagination(c)

	departments, err := h.service.GetAll(page, pageSize)
	if err != nil {
		writeError(c, err, "Failed to get departments")
		return
	}

	c.JSON(http.StatusOK, departments)
}

// UpdateDepartment handles PUT /api/v1/departments/:code
// @Summary Rename a department
// @Tags departments
// @Accept json
// @Produce json
// @Param code path string true "Department code"
// @Param department body service.UpdateDepartmentRequest true "Updated data"
// @Success 200 {object} service.DepartmentResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{code} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	department, err := h.service.Update(c.Param("code"), &req)
	if err != nil {
		writeError(c, err, "Failed to update department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment handles DELETE /api/v1/departments/:code
// @Summary Delete a department
// @Description Faculty in the department are left without one
// @Tags departments
// @Param code path string true "Department code"
// @Success 204 "Department deleted"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{code} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	if err := h.service.Delete(c.Param("code")); err != nil {
		writeError(c, err, "Failed to delete department")
		return
	}

	c.Status(http.StatusNoContent)
}
