package service

import (
	"context"
	"errors"
	"fmt"

	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/database/models"
	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// FacultyService handles business logic for faculty
type FacultyService struct {
	store       repository.StoreInterface
	departments repository.DepartmentRepositoryInterface
	validator   *validator.Validate
}

// NewFacultyService creates a new faculty service
func NewFacultyService(
	store repository.StoreInterface,
	departments repository.DepartmentRepositoryInterface,
	validator *validator.Validate,
) *FacultyService {
	return &FacultyService{
		store:       store,
		departments: departments,
		validator:   validator,
	}
}

// CreateFacultyRequest represents the request to create a faculty member
type CreateFacultyRequest struct {
	Email              string  `json:"email" validate:"required,email,max=100"`
	FullName           string  `json:"full_name" validate:"required,min=1,max=100"`
	JobTitle           string  `json:"job_title,omitempty" validate:"max=100"`
	Phone              string  `json:"phone,omitempty" validate:"max=30"`
	SenateDivisionCode string  `json:"senate_division_code" validate:"required,max=10"`
	DepartmentCode     *string `json:"department_code,omitempty" validate:"omitempty,max=10"`
}

// UpdateFacultyRequest represents the request to update a faculty member
type UpdateFacultyRequest struct {
	FullName           string  `json:"full_name" validate:"required,min=1,max=100"`
	JobTitle           string  `json:"job_title,omitempty" validate:"max=100"`
	Phone              string  `json:"phone,omitempty" validate:"max=30"`
	SenateDivisionCode string  `json:"senate_division_code" validate:"required,max=10"`
	DepartmentCode     *string `json:"department_code,omitempty" validate:"omitempty,max=10"`
}

// FacultyResponse represents the response for faculty operations
type FacultyResponse struct {
	Email              string  `json:"email"`
	FullName           string  `json:"full_name"`
	JobTitle           string  `json:"job_title"`
	Phone              string  `json:"phone"`
	SenateDivisionCode string  `json:"senate_division_code"`
	DepartmentCode     *string `json:"department_code,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// FacultyListResponse represents a paginated list of faculty
type FacultyListResponse struct {
	Faculty  []FacultyResponse `json:"faculty"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new faculty member
func (s *FacultyService) Create(req *CreateFacultyRequest) (*FacultyResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.store.Faculty().GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing faculty: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrFacultyExists
	}

	if err := s.checkReferences(s.store, req.SenateDivisionCode, req.DepartmentCode); err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Email:              req.Email,
		FullName:           req.FullName,
		JobTitle:           req.JobTitle,
		Phone:              req.Phone,
		SenateDivisionCode: req.SenateDivisionCode,
		DepartmentCode:     req.DepartmentCode,
	}
	if err := s.store.Faculty().Create(faculty); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrFacultyExists
		}
		return nil, fmt.Errorf("failed to create faculty: %w", err)
	}

	return s.toResponse(faculty), nil
}

// GetByEmail retrieves a faculty member by email
func (s *FacultyService) GetByEmail(email string) (*FacultyResponse, error) {
	faculty, err := s.store.Faculty().GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("failed to get faculty: %w", err)
	}

	return s.toResponse(faculty), nil
}

// GetAll retrieves faculty with pagination, optionally limited to one senate division
func (s *FacultyService) GetAll(senateDivision string, page, pageSize int) (*FacultyListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	var (
		faculty []models.Faculty
		total   int64
		err     error
	)
	if senateDivision != "" {
		faculty, total, err = s.store.Faculty().GetBySenateDivision(senateDivision, pageSize, offset)
	} else {
		faculty, total, err = s.store.Faculty().GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get faculty: %w", err)
	}

	responses := make([]FacultyResponse, len(faculty))
	for i := range faculty {
		responses[i] = *s.toResponse(&faculty[i])
	}

	return &FacultyListResponse{
		Faculty:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a faculty member. The senate division decides which quota
// a seat counts against, so it is fixed while the member holds any committee
// assignment. The row lock and the assignment check share one serializable
// transaction with the write.
func (s *FacultyService) Update(ctx context.Context, email string, req *UpdateFacultyRequest) (*FacultyResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var faculty *models.Faculty
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		var err error
		faculty, err = tx.Faculty().GetByEmailForUpdate(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFacultyNotFound
			}
			return fmt.Errorf("failed to get faculty: %w", err)
		}

		if err := s.checkReferences(tx, req.SenateDivisionCode, req.DepartmentCode); err != nil {
			return err
		}

		if req.SenateDivisionCode != faculty.SenateDivisionCode {
			held, err := tx.Assignments().GetByFaculty(email)
			if err != nil {
				return fmt.Errorf("failed to get faculty assignments: %w", err)
			}
			if len(held) > 0 {
				return apperrors.ErrFacultyDivisionLocked
			}
		}

		faculty.FullName = req.FullName
		faculty.JobTitle = req.JobTitle
		faculty.Phone = req.Phone
		faculty.SenateDivisionCode = req.SenateDivisionCode
		faculty.DepartmentCode = req.DepartmentCode

		if err := tx.Faculty().Update(faculty); err != nil {
			return fmt.Errorf("failed to update faculty: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(faculty), nil
}

// Delete deletes a faculty member along with their assignments
func (s *FacultyService) Delete(email string) error {
	if err := s.store.Faculty().Delete(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("failed to delete faculty: %w", err)
	}
	return nil
}

func (s *FacultyService) checkReferences(store repository.StoreInterface, divisionCode string, departmentCode *string) error {
	if _, err := store.SenateDivisions().GetByCode(divisionCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSenateDivisionNotFound
		}
		return fmt.Errorf("failed to get senate division: %w", err)
	}
	if departmentCode == nil {
		return nil
	}
	if _, err := s.departments.GetByCode(*departmentCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}
	return nil
}

func (s *FacultyService) toResponse(faculty *models.Faculty) *FacultyResponse {
	return &FacultyResponse{
		Email:              faculty.Email,
		FullName:           faculty.FullName,
		JobTitle:           faculty.JobTitle,
		Phone:              faculty.Phone,
		SenateDivisionCode: faculty.SenateDivisionCode,
		DepartmentCode:     faculty.DepartmentCode,
		CreatedAt:          faculty.CreatedAt.Format(timestampLayout),
		UpdatedAt:          faculty.UpdatedAt.Format(timestampLayout),
	}
}
