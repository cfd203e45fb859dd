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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Code string `json:"code" validate:"required,min=1,max=10"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new department
func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	department := &models.Department{
		Code: req.Code,
		Name: req.Name,
	}
	if err := s.repo.Create(department); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return s.toResponse(department), nil
}

// GetByCode retrieves a department by code
func (s *DepartmentService) GetByCode(code string) (*DepartmentResponse, error) {
	department, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return s.toResponse(department), nil
}

// GetAll retrieves all departments with pagination
func (s *DepartmentService) GetAll(page, pageSize int) (*DepartmentListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	departments, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *s.toResponse(&departments[i])
	}

	return &DepartmentListResponse{
		Departments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update renames a department
func (s *DepartmentService) Update(code string, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	department, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	department.Name = req.Name
	if err := s.repo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return s.toResponse(department), nil
}

// Delete deletes a department. Faculty in it are left without a department.
func (s *DepartmentService) Delete(code string) error {
	if err := s.repo.Delete(code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *DepartmentService) toResponse(department *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		Code:      department.Code,
		Name:      department.Name,
		CreatedAt: department.CreatedAt.Format(timestampLayout),
		UpdatedAt: department.UpdatedAt.Format(timestampLayout),
	}
}
