package handlers

import (
	"net/http"

	"committee-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SenateDivisionHandler handles HTTP requests for senate divisions
type SenateDivisionHandler struct {
	service service.SenateDivisionServiceInterface
}

// NewSenateDivisionHandler creates a new senate division handler
func NewSenateDivisionHandler(service service.SenateDivisionServiceInterface) *SenateDivisionHandler {
	return &SenateDivisionHandler{service: service}
}

// CreateSenateDivision handles POST /api/v1/senate-divisions
// @Summary Create a senate division
// @Tags senate-divisions
// @Accept json
// @Produce json
// @Param division body service.CreateSenateDivisionRequest true "Senate division data"
// @Success 201 {object} service.SenateDivisionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Senate division already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /senate-divisions [post]
func (h *SenateDivisionHandler) CreateSenateDivision(c *gin.Context) {
	var req service.CreateSenateDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	division, err := h.service.Create(&req)
	if err != nil {
		writeError(c, err, "Failed to create senate division")
		return
	}

	c.JSON(http.StatusCreated, division)
}

// GetSenateDivision handles GET /api/v1/senate-divisions/:code
// @Summary Get senate division by code
// @Tags senate-divisions
// @Produce json
// @Param code path string true "Senate division code"
// @Success 200 {object} service.SenateDivisionResponse
// @Failure 404 {object} map[string]interface{} "Senate division not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /senate-divisions/{code} [get]
func (h *SenateDivisionHandler) GetSenateDivision(c *gin.Context) {
	division, err := h.service.GetByCode(c.Param("code"))
	if err != nil {
		writeError(c, err, "Failed to get senate division")
		return
	}

	c.JSON(http.StatusOK, division)
}

// ListSenateDivisions handles GET /api/v1/senate-divisions
// @Summary List senate divisions
// @Tags senate-divisions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SenateDivisionListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /senate-divisions [get]
func (h *SenateDivisionHandler) ListSenateDivisions(c *gin.Context) {
	page, pageSize := pagination(c)

	divisions, err := h.service.GetAll(page, pageSize)
	if err != nil {
		writeError(c, err, "Failed to get senate divisions")
		return
	}

	c.JSON(http.StatusOK, divisions)
}

// UpdateSenateDivision handles PUT /api/v1/senate-divisions/:code
// @Summary Rename a senate division
// @Tags senate-divisions
// @Accept json
// @Produce json
// @Param code path string true "Senate division code"
// @Param division body service.UpdateSenateDivisionRequest true "Updated data"
// @Success 200 {object} service.SenateDivisionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Senate division not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /senate-divisions/{code} [put]
func (h *SenateDivisionHandler) UpdateSenateDivision(c *gin.Context) {
	var req service.UpdateSenateDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	division, err := h.service.Update(c.Param("code"), &req)
	if err != nil {
		writeError(c, err, "Failed to update senate division")
		return
	}

	c.JSON(http.StatusOK, division)
}

// DeleteSenateDivision handles DELETE /api/v1/senate-divisions/:code
// @Summary Delete a senate division
// @Description Fails with 409 while faculty or slot requirements reference the division
// @Tags senate-divisions
// @Param code path string true "Senate division code"
// @Success 204 "Senate division deleted"
// @Failure 404 {object} map[string]interface{} "Senate division not found"
// @Failure 409 {object} map[string]interface{} "Senate division in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /senate-divisions/{code} [delete]
func (h *SenateDivisionHandler) DeleteSenateDivision(c *gin.Context) {
	if err := h.service.Delete(c.Param("code")); err != nil {
		writeError(c, err, "Failed to delete senate division")
		return
	}

	c.Status(http.StatusNoContent)
}
