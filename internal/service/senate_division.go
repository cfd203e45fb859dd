package service

import (
	"errors"
	"fmt"

	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/database/models"
	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SenateDivisionService handles business logic for senate divisions
type SenateDivisionService struct {
	repo      repository.SenateDivisionRepositoryInterface
	validator *validator.Validate
}

// NewSenateDivisionService creates a new senate division service
func NewSenateDivisionService(repo repository.SenateDivisionRepositoryInterface, validator *validator.Validate) *SenateDivisionService {
	return &SenateDivisionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSenateDivisionRequest represents the request to create a senate division
type CreateSenateDivisionRequest struct {
	Code string `json:"code" validate:"required,min=1,max=10"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateSenateDivisionRequest represents the request to update a senate division
type UpdateSenateDivisionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SenateDivisionResponse represents the response for senate division operations
type SenateDivisionResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SenateDivisionListResponse represents a paginated list of senate divisions
type SenateDivisionListResponse struct {
	SenateDivisions []SenateDivisionResponse `json:"senate_divisions"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
}

// Create creates a new senate division
func (s *SenateDivisionService) Create(req *CreateSenateDivisionRequest) (*SenateDivisionResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing senate division: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSenateDivisionExists
	}

	division := &models.SenateDivision{
		Code: req.Code,
		Name: req.Name,
	}
	if err := s.repo.Create(division); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrSenateDivisionExists
		}
		return nil, fmt.Errorf("failed to create senate division: %w", err)
	}

	return s.toResponse(division), nil
}

// GetByCode retrieves a senate division by code
func (s *SenateDivisionService) GetByCode(code string) (*SenateDivisionResponse, error) {
	division, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSenateDivisionNotFound
		}
		return nil, fmt.Errorf("failed to get senate division: %w", err)
	}

	return s.toResponse(division), nil
}

// GetAll retrieves all senate divisions with pagination
func (s *SenateDivisionService) GetAll(page, pageSize int) (*SenateDivisionListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	divisions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get senate divisions: %w", err)
	}

	responses := make([]SenateDivisionResponse, len(divisions))
	for i := range divisions {
		responses[i] = *s.toResponse(&divisions[i])
	}

	return &SenateDivisionListResponse{
		SenateDivisions: responses,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
	}, nil
}

// Update renames a senate division
func (s *SenateDivisionService) Update(code string, req *UpdateSenateDivisionRequest) (*SenateDivisionResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	division, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSenateDivisionNotFound
		}
		return nil, fmt.Errorf("failed to get senate division: %w", err)
	}

	division.Name = req.Name
	if err := s.repo.Update(division); err != nil {
		return nil, fmt.Errorf("failed to update senate division: %w", err)
	}

	return s.toResponse(division), nil
}

// Delete deletes a senate division that no faculty or requirement references
func (s *SenateDivisionService) Delete(code string) error {
	if err := s.repo.Delete(code); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrSenateDivisionNotFound
		case database.IsForeignKeyViolation(err):
			return apperrors.ErrSenateDivisionInUse
		}
		return fmt.Errorf("failed to delete senate division: %w", err)
	}
	return nil
}

func (s *SenateDivisionService) toResponse(division *models.SenateDivision) *SenateDivisionResponse {
	return &SenateDivisionResponse{
		Code:      division.Code,
		Name:      division.Name,
		CreatedAt: division.CreatedAt.Format(timestampLayout),
		UpdatedAt: division.UpdatedAt.Format(timestampLayout),
	}
}
