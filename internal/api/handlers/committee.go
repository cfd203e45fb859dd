package handlers

import (
	"net/http"

	"committee-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommitteeHandler handles HTTP requests for committees, their slot
// requirements and their ledger
type CommitteeHandler struct {
	service     service.CommitteeServiceInterface
	assignments service.AssignmentServiceInterface
}

// NewCommitteeHandler creates a new committee handler
func NewCommitteeHandler(service service.CommitteeServiceInterface, assignments service.AssignmentServiceInterface) *CommitteeHandler {
	return &CommitteeHandler{
		service:     service,
		assignments: assignments,
	}
}

// CreateCommittee handles POST /api/v1/committees
// @Summary Create a committee
// @Description Creates a committee with its initial slot requirements. The requirements must fit within total slots.
// @Tags committees
// @Accept json
// @Produce json
// @Param committee body service.CreateCommitteeRequest true "Committee data"
// @Success 201 {object} service.CommitteeResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Senate division not found"
// @Failure 409 {object} map[string]interface{} "Committee already exists"
// @Failure 422 {object} CapacityErrorResponse "Requirements exceed capacity"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees [post]
func (h *CommitteeHandler) CreateCommittee(c *gin.Context) {
	var req service.CreateCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	committee, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "Failed to create committee")
		return
	}

	c.JSON(http.StatusCreated, committee)
}

// GetCommittee handles GET /api/v1/committees/:id
// @Summary Get committee by ID
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {object} service.CommitteeResponse
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Committee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id} [get]
func (h *CommitteeHandler) GetCommittee(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	committee, err := h.service.GetByID(id)
	if err != nil {
		writeError(c, err, "Failed to get committee")
		return
	}

	c.JSON(http.StatusOK, committee)
}

// ListCommittees handles GET /api/v1/committees
// @Summary List committees
// @Tags committees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CommitteeListResponse
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees [get]
func (h *CommitteeHandler) ListCommittees(c *gin.Context) {
	page, pageSize := pagination(c)

	committees, err := h.service.GetAll(page, pageSize)
	if err != nil {
		writeError(c, err, "Failed to get committees")
		return
	}

	c.JSON(http.StatusOK, committees)
}

// UpdateCommittee handles PUT /api/v1/committees/:id
// @Summary Update a committee
// @Description A total_slots change is rejected if the slot requirements would no longer fit
// @Tags committees
// @Accept json
// @Produce json
// @Param id path int true "Committee ID"
// @Param committee body service.UpdateCommitteeRequest true "Updated committee data"
// @Success 200 {object} service.CommitteeResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Committee not found"
// @Failure 409 {object} map[string]interface{} "Committee name taken or concurrent modification"
// @Failure 422 {object} CapacityErrorResponse "Requirements exceed capacity"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id} [put]
func (h *CommitteeHandler) UpdateCommittee(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	committee, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err, "Failed to update committee")
		return
	}

	c.JSON(http.StatusOK, committee)
}

// DeleteCommittee handles DELETE /api/v1/committees/:id
// @Summary Delete a committee with its requirements and assignments
// @Tags committees
// @Param id path int true "Committee ID"
// @Success 204 "Committee deleted"
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Committee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id} [delete]
func (h *CommitteeHandler) DeleteCommittee(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		writeError(c, err, "Failed to delete committee")
		return
	}

	c.Status(http.StatusNoContent)
}

// ApplyCapacityEdit handles PUT /api/v1/committees/:id/capacity
// @Summary Change committee capacity or one slot requirement
// @Description Sets total_slots, upserts one requirement row, or both, in one transaction. The sum of requirements must not exceed total slots afterwards.
// @Tags committees
// @Accept json
// @Produce json
// @Param id path int true "Committee ID"
// @Param edit body service.CapacityEditRequest true "Capacity edit"
// @Success 200 {object} service.CommitteeResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Committee or senate division not found"
// @Failure 409 {object} map[string]interface{} "Concurrent modification"
// @Failure 422 {object} CapacityErrorResponse "Requirements exceed capacity"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id}/capacity [put]
func (h *CommitteeHandler) ApplyCapacityEdit(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CapacityEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	committee, err := h.service.ApplyCapacityEdit(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err, "Failed to apply capacity edit")
		return
	}

	c.JSON(http.StatusOK, committee)
}

// GetSlotRequirements handles GET /api/v1/committees/:id/slot-requirements
// @Summary List a committee's slot requirements
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {array} service.SlotRequirementResponse
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Committee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id}/slot-requirements [get]
func (h *CommitteeHandler) GetSlotRequirements(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	requirements, err := h.service.GetSlotRequirements(id)
	if err != nil {
		writeError(c, err, "Failed to get slot requirements")
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// CreateSlotRequirement handles POST /api/v1/committees/:id/slot-requirements
// @Summary Add a slot requirement to a committee
// @Tags committees
// @Accept json
// @Produce json
// @Param id path int true "Committee ID"
// @Param requirement body service.SlotRequirementRequest true "Slot requirement"
// @Success 201 {object} service.SlotRequirementResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Committee or senate division not found"
// @Failure 409 {object} map[string]interface{} "Requirement already exists"
// @Failure 422 {object} CapacityErrorResponse "Requirements exceed capacity"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id}/slot-requirements [post]
func (h *CommitteeHandler) CreateSlotRequirement(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SlotRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	requirement, err := h.service.CreateSlotRequirement(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err, "Failed to create slot requirement")
		return
	}

	c.JSON(http.StatusCreated, requirement)
}

// DeleteSlotRequirement handles DELETE /api/v1/committees/:id/slot-requirements/:code
// @Summary Remove a slot requirement
// @Description The senate division becomes unconstrained on the committee
// @Tags committees
// @Param id path int true "Committee ID"
// @Param code path string true "Senate division code"
// @Success 204 "Slot requirement removed"
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Committee or requirement not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id}/slot-requirements/{code} [delete]
func (h *CommitteeHandler) DeleteSlotRequirement(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSlotRequirement(c.Request.Context(), id, c.Param("code")); err != nil {
		writeError(c, err, "Failed to delete slot requirement")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLedger handles GET /api/v1/committees/:id/ledger
// @Summary Get a committee's slot ledger
// @Description Filled and remaining seats per senate division, recomputed from current assignments
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {object} allocation.Ledger
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Committee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id}/ledger [get]
func (h *CommitteeHandler) GetLedger(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	ledger, err := h.service.GetLedger(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to get committee ledger")
		return
	}

	c.JSON(http.StatusOK, ledger)
}

// GetCommitteeAssignments handles GET /api/v1/committees/:id/assignments
// @Summary List a committee's assignments
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID"
// @Success 200 {array} service.AssignmentResponse
// @Failure 400 {object} map[string]interface{} "Invalid committee ID"
// @Failure 404 {object} map[string]interface{} "Committee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /committees/{id}/assignments [get]
func (h *CommitteeHandler) GetCommitteeAssignments(c *gin.Context) {
	id, ok := committeeIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignments.GetByCommittee(id)
	if err != nil {
		writeError(c, err, "Failed to get committee assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}
