package service

import (
	"context"
	"errors"
	"fmt"

	"committee-tracker-backend/internal/allocation"
	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/database/models"
	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/logger"
	"committee-tracker-backend/internal/metrics"
	"committee-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CommitteeService handles committees, their capacity and their slot requirements.
// Every write that can change capacity runs in a serializable transaction
// holding the committee row lock.
type CommitteeService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewCommitteeService creates a new committee service
func NewCommitteeService(store repository.StoreInterface, validator *validator.Validate) *CommitteeService {
	return &CommitteeService{
		store:     store,
		validator: validator,
	}
}

// SlotRequirementRequest declares the minimum seats reserved for one senate division
type SlotRequirementRequest struct {
	SenateDivisionCode string `json:"senate_division_code" validate:"required,max=10"`
	SlotRequirements   int    `json:"slot_requirements"`
}

// CreateCommitteeRequest represents the request to create a committee
type CreateCommitteeRequest struct {
	Name             string                   `json:"name" validate:"required,min=1,max=100"`
	Description      string                   `json:"description,omitempty"`
	TotalSlots       int                      `json:"total_slots"`
	SlotRequirements []SlotRequirementRequest `json:"slot_requirements,omitempty" validate:"dive"`
}

// UpdateCommitteeRequest represents the request to update a committee.
// A nil TotalSlots leaves the capacity unchanged.
type UpdateCommitteeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
	TotalSlots  *int   `json:"total_slots,omitempty"`
}

// CapacityEditRequest changes a committee's capacity, one requirement row, or both
type CapacityEditRequest struct {
	TotalSlots  *int                    `json:"total_slots,omitempty"`
	Requirement *SlotRequirementRequest `json:"requirement,omitempty"`
}

// SlotRequirementResponse represents one requirement row
type SlotRequirementResponse struct {
	CommitteeID        uint   `json:"committee_id"`
	SenateDivisionCode string `json:"senate_division_code"`
	SlotRequirements   int    `json:"slot_requirements"`
}

// CommitteeResponse represents the response for committee operations
type CommitteeResponse struct {
	ID               uint                      `json:"id"`
	Name             string                    `json:"name"`
	Description      string                    `json:"description"`
	TotalSlots       int                       `json:"total_slots"`
	SlotRequirements []SlotRequirementResponse `json:"slot_requirements"`
	CreatedAt        string                    `json:"created_at"`
	UpdatedAt        string                    `json:"updated_at"`
}

// CommitteeListResponse represents a paginated list of committees
type CommitteeListResponse struct {
	Committees []CommitteeResponse `json:"committees"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a committee together with its initial slot requirements.
// The requirements must fit within total slots.
func (s *CommitteeService) Create(ctx context.Context, req *CreateCommitteeRequest) (*CommitteeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.TotalSlots < 0 {
		return nil, apperrors.ErrNegativeTotalSlots
	}

	requirements := make([]allocation.Requirement, 0, len(req.SlotRequirements))
	seen := make(map[string]struct{}, len(req.SlotRequirements))
	for _, r := range req.SlotRequirements {
		if r.SlotRequirements < 0 {
			return nil, apperrors.ErrNegativeRequirement
		}
		if _, dup := seen[r.SenateDivisionCode]; dup {
			return nil, apperrors.NewValidationError("slot_requirements", "senate division "+r.SenateDivisionCode+" is listed more than once")
		}
		seen[r.SenateDivisionCode] = struct{}{}
		requirements = append(requirements, allocation.Requirement{DivisionCode: r.SenateDivisionCode, Minimum: r.SlotRequirements})
	}

	if check := allocation.CheckCapacity(req.TotalSlots, requirements); !check.OK() {
		metrics.RecordCapacityEdit(false)
		return nil, apperrors.NewRequirementsExceedCapacityError(check.Required, check.Available)
	}

	committee := &models.Committee{
		Name:        req.Name,
		Description: req.Description,
		TotalSlots:  req.TotalSlots,
	}
	for _, r := range requirements {
		committee.SlotRequirements = append(committee.SlotRequirements, models.CommitteeSlotRequirement{
			SenateDivisionCode: r.DivisionCode,
			SlotRequirements:   r.Minimum,
		})
	}

	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		committee.ID = 0
		existing, err := tx.Committees().GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing committee: %w", err)
		}
		if existing != nil {
			return apperrors.ErrCommitteeExists
		}

		for _, r := range requirements {
			if err := s.ensureDivision(tx, r.DivisionCode); err != nil {
				return err
			}
		}

		if err := tx.Committees().Create(committee); err != nil {
			switch {
			case database.IsUniqueViolation(err):
				return apperrors.ErrCommitteeExists
			case database.IsForeignKeyViolation(err):
				return apperrors.ErrSenateDivisionNotFound
			}
			return fmt.Errorf("failed to create committee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"committee_id": committee.ID,
		"total_slots":  committee.TotalSlots,
		"requirements": len(committee.SlotRequirements),
	}).Info("Committee created")

	return s.toResponse(committee, committee.SlotRequirements), nil
}

// GetByID retrieves a committee with its slot requirements
func (s *CommitteeService) GetByID(id uint) (*CommitteeResponse, error) {
	committee, err := s.store.Committees().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommitteeNotFound
		}
		return nil, fmt.Errorf("failed to get committee: %w", err)
	}

	rows, err := s.store.SlotRequirements().GetByCommittee(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get slot requirements: %w", err)
	}

	return s.toResponse(committee, rows), nil
}

// GetAll retrieves all committees with pagination. Requirements are not included.
func (s *CommitteeService) GetAll(page, pageSize int) (*CommitteeListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	committees, total, err := s.store.Committees().GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get committees: %w", err)
	}

	responses := make([]CommitteeResponse, len(committees))
	for i := range committees {
		responses[i] = *s.toResponse(&committees[i], nil)
	}

	return &CommitteeListResponse{
		Committees: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a committee's name and description, and its capacity when
// TotalSlots is set. A capacity change goes through the capacity check.
func (s *CommitteeService) Update(ctx context.Context, id uint, req *UpdateCommitteeRequest) (*CommitteeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.TotalSlots != nil && *req.TotalSlots < 0 {
		return nil, apperrors.ErrNegativeTotalSlots
	}

	var (
		committee *models.Committee
		rows      []models.CommitteeSlotRequirement
		edited    bool
	)
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		var err error
		committee, err = lockCommittee(tx, id)
		if err != nil {
			return err
		}

		if req.Name != committee.Name {
			existing, err := tx.Committees().GetByName(req.Name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing committee: %w", err)
			}
			if existing != nil {
				return apperrors.ErrCommitteeExists
			}
		}

		edited = req.TotalSlots != nil && *req.TotalSlots != committee.TotalSlots
		if edited {
			requirements, err := loadRequirements(tx, id)
			if err != nil {
				return err
			}
			if check := allocation.CheckCapacity(*req.TotalSlots, requirements); !check.OK() {
				return apperrors.NewRequirementsExceedCapacityError(check.Required, check.Available)
			}
			committee.TotalSlots = *req.TotalSlots
		}

		committee.Name = req.Name
		committee.Description = req.Description
		if err := tx.Committees().Update(committee); err != nil {
			if database.IsUniqueViolation(err) {
				return apperrors.ErrCommitteeExists
			}
			return fmt.Errorf("failed to update committee: %w", err)
		}

		rows, err = tx.SlotRequirements().GetByCommittee(id)
		if err != nil {
			return fmt.Errorf("failed to get slot requirements: %w", err)
		}
		return nil
	})
	if edited || apperrors.IsCapacity(err) {
		metrics.RecordCapacityEdit(err == nil)
	}
	if err != nil {
		return nil, err
	}

	return s.toResponse(committee, rows), nil
}

// Delete deletes a committee with its requirements and assignments
func (s *CommitteeService) Delete(id uint) error {
	if err := s.store.Committees().Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommitteeNotFound
		}
		return fmt.Errorf("failed to delete committee: %w", err)
	}
	return nil
}

// ApplyCapacityEdit changes total slots and/or upserts one requirement row.
// The sum of requirements after the edit must not exceed total slots after
// the edit. Lowering capacity below the number of seats already filled is
// allowed; the committee then admits no one until seats are freed.
func (s *CommitteeService) ApplyCapacityEdit(ctx context.Context, id uint, req *CapacityEditRequest) (*CommitteeResponse, error) {
	if req.TotalSlots == nil && req.Requirement == nil {
		return nil, apperrors.ErrEmptyCapacityEdit
	}
	if req.TotalSlots != nil && *req.TotalSlots < 0 {
		return nil, apperrors.ErrNegativeTotalSlots
	}
	if req.Requirement != nil {
		if err := validate(s.validator, req.Requirement); err != nil {
			return nil, err
		}
		if req.Requirement.SlotRequirements < 0 {
			return nil, apperrors.ErrNegativeRequirement
		}
	}

	log := logger.WithContext(ctx).WithField("committee_id", id)

	var (
		committee *models.Committee
		rows      []models.CommitteeSlotRequirement
	)
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		var err error
		committee, err = lockCommittee(tx, id)
		if err != nil {
			return err
		}

		requirements, err := loadRequirements(tx, id)
		if err != nil {
			return err
		}

		totalSlots := committee.TotalSlots
		if req.TotalSlots != nil {
			totalSlots = *req.TotalSlots
		}
		if req.Requirement != nil {
			if err := s.ensureDivision(tx, req.Requirement.SenateDivisionCode); err != nil {
				return err
			}
			requirements = allocation.ApplyRequirement(requirements, allocation.Requirement{
				DivisionCode: req.Requirement.SenateDivisionCode,
				Minimum:      req.Requirement.SlotRequirements,
			})
		}

		if check := allocation.CheckCapacity(totalSlots, requirements); !check.OK() {
			return apperrors.NewRequirementsExceedCapacityError(check.Required, check.Available)
		}

		if totalSlots != committee.TotalSlots {
			if err := tx.Committees().UpdateTotalSlots(id, totalSlots); err != nil {
				return fmt.Errorf("failed to update committee capacity: %w", err)
			}
			committee.TotalSlots = totalSlots
		}
		if req.Requirement != nil {
			row := &models.CommitteeSlotRequirement{
				CommitteeID:        id,
				SenateDivisionCode: req.Requirement.SenateDivisionCode,
				SlotRequirements:   req.Requirement.SlotRequirements,
			}
			if err := tx.SlotRequirements().Upsert(row); err != nil {
				if database.IsForeignKeyViolation(err) {
					return apperrors.ErrSenateDivisionNotFound
				}
				return fmt.Errorf("failed to save slot requirement: %w", err)
			}
		}

		rows, err = tx.SlotRequirements().GetByCommittee(id)
		if err != nil {
			return fmt.Errorf("failed to get slot requirements: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsCapacity(err) {
			metrics.RecordCapacityEdit(false)
			log.WithError(err).Warn("Capacity edit rejected")
		}
		return nil, err
	}

	metrics.RecordCapacityEdit(true)
	log.WithField("total_slots", committee.TotalSlots).Info("Capacity edit applied")

	return s.toResponse(committee, rows), nil
}

// GetSlotRequirements lists a committee's requirement rows
func (s *CommitteeService) GetSlotRequirements(id uint) ([]SlotRequirementResponse, error) {
	if _, err := s.store.Committees().GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommitteeNotFound
		}
		return nil, fmt.Errorf("failed to get committee: %w", err)
	}

	rows, err := s.store.SlotRequirements().GetByCommittee(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get slot requirements: %w", err)
	}
	return toRequirementResponses(rows), nil
}

// CreateSlotRequirement adds a requirement row. An existing row for the same
// division is a conflict; use ApplyCapacityEdit to change it.
func (s *CommitteeService) CreateSlotRequirement(ctx context.Context, id uint, req *SlotRequirementRequest) (*SlotRequirementResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.SlotRequirements < 0 {
		return nil, apperrors.ErrNegativeRequirement
	}

	row := &models.CommitteeSlotRequirement{
		CommitteeID:        id,
		SenateDivisionCode: req.SenateDivisionCode,
		SlotRequirements:   req.SlotRequirements,
	}
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		committee, err := lockCommittee(tx, id)
		if err != nil {
			return err
		}
		if err := s.ensureDivision(tx, req.SenateDivisionCode); err != nil {
			return err
		}

		existing, err := tx.SlotRequirements().Get(id, req.SenateDivisionCode)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing slot requirement: %w", err)
		}
		if existing != nil {
			return apperrors.ErrSlotRequirementExists
		}

		requirements, err := loadRequirements(tx, id)
		if err != nil {
			return err
		}
		requirements = append(requirements, allocation.Requirement{DivisionCode: req.SenateDivisionCode, Minimum: req.SlotRequirements})
		if check := allocation.CheckCapacity(committee.TotalSlots, requirements); !check.OK() {
			return apperrors.NewRequirementsExceedCapacityError(check.Required, check.Available)
		}

		if err := tx.SlotRequirements().Create(row); err != nil {
			switch {
			case database.IsUniqueViolation(err):
				return apperrors.ErrSlotRequirementExists
			case database.IsForeignKeyViolation(err):
				return apperrors.ErrSenateDivisionNotFound
			}
			return fmt.Errorf("failed to create slot requirement: %w", err)
		}
		return nil
	})
	if err == nil || apperrors.IsCapacity(err) {
		metrics.RecordCapacityEdit(err == nil)
	}
	if err != nil {
		return nil, err
	}

	return &SlotRequirementResponse{
		CommitteeID:        row.CommitteeID,
		SenateDivisionCode: row.SenateDivisionCode,
		SlotRequirements:   row.SlotRequirements,
	}, nil
}

// DeleteSlotRequirement removes a requirement row. The division becomes
// unconstrained on the committee.
func (s *CommitteeService) DeleteSlotRequirement(ctx context.Context, id uint, divisionCode string) error {
	return s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		if _, err := lockCommittee(tx, id); err != nil {
			return err
		}
		if err := tx.SlotRequirements().Delete(id, divisionCode); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSlotRequirementNotFound
			}
			return fmt.Errorf("failed to delete slot requirement: %w", err)
		}
		return nil
	})
}

// GetLedger recomputes the slot ledger of a committee from one snapshot
func (s *CommitteeService) GetLedger(ctx context.Context, id uint) (*allocation.Ledger, error) {
	var ledger *allocation.Ledger
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		committee, err := tx.Committees().GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCommitteeNotFound
			}
			return fmt.Errorf("failed to get committee: %w", err)
		}
		ledger, err = loadLedger(tx, committee)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (s *CommitteeService) ensureDivision(tx repository.StoreInterface, code string) error {
	if _, err := tx.SenateDivisions().GetByCode(code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSenateDivisionNotFound
		}
		return fmt.Errorf("failed to get senate division: %w", err)
	}
	return nil
}

// lockCommittee loads a committee and holds its row lock for the rest of tx
func lockCommittee(tx repository.StoreInterface, id uint) (*models.Committee, error) {
	committee, err := tx.Committees().GetByIDForUpdate(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommitteeNotFound
		}
		return nil, fmt.Errorf("failed to lock committee: %w", err)
	}
	return committee, nil
}

func toRequirementResponses(rows []models.CommitteeSlotRequirement) []SlotRequirementResponse {
	responses := make([]SlotRequirementResponse, len(rows))
	for i, row := range rows {
		responses[i] = SlotRequirementResponse{
			CommitteeID:        row.CommitteeID,
			SenateDivisionCode: row.SenateDivisionCode,
			SlotRequirements:   row.SlotRequirements,
		}
	}
	return responses
}

func (s *CommitteeService) toResponse(committee *models.Committee, rows []models.CommitteeSlotRequirement) *CommitteeResponse {
	return &CommitteeResponse{
		ID:               committee.ID,
		Name:             committee.Name,
		Description:      committee.Description,
		TotalSlots:       committee.TotalSlots,
		SlotRequirements: toRequirementResponses(rows),
		CreatedAt:        committee.CreatedAt.Format(timestampLayout),
		UpdatedAt:        committee.UpdatedAt.Format(timestampLayout),
	}
}
