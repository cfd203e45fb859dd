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

// AssignmentService admits faculty onto committees through the slot validator
type AssignmentService struct {
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(store repository.StoreInterface, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		store:     store,
		validator: validator,
	}
}

// ProposeAssignmentRequest represents a candidate assignment
type ProposeAssignmentRequest struct {
	FacultyEmail string `json:"faculty_email" validate:"required,email,max=100"`
	CommitteeID  uint   `json:"committee_id" validate:"required"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2025-09-01"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// AssignmentResponse represents a committee assignment
type AssignmentResponse struct {
	FacultyEmail       string `json:"faculty_email"`
	CommitteeID        uint   `json:"committee_id"`
	SenateDivisionCode string `json:"senate_division_code,omitempty"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	CreatedAt          string `json:"created_at"`
}

// ProposeAssignment records the assignment if the committee's slot rules
// admit one more member of the faculty's senate division. The ledger read,
// the decision and the insert happen in one serializable transaction that
// holds the committee row lock.
func (s *AssignmentService) ProposeAssignment(ctx context.Context, req *ProposeAssignmentRequest) (*AssignmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"faculty_email": req.FacultyEmail,
		"committee_id":  req.CommitteeID,
	})

	var (
		assignment *models.CommitteeAssignment
		faculty    *models.Faculty
		decision   allocation.Decision
		decided    bool
	)
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		decided = false

		var err error
		faculty, err = tx.Faculty().GetByEmailForShare(req.FacultyEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFacultyNotFound
			}
			return fmt.Errorf("failed to get faculty: %w", err)
		}

		committee, err := lockCommittee(tx, req.CommitteeID)
		if err != nil {
			return err
		}

		startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}

		exists, err := tx.Assignments().Exists(req.FacultyEmail, req.CommitteeID)
		if err != nil {
			return fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if exists {
			return apperrors.ErrAssignmentExists
		}

		ledger, err := loadLedger(tx, committee)
		if err != nil {
			return err
		}

		decision = allocation.Evaluate(ledger, faculty.SenateDivisionCode)
		decided = true
		if !decision.Admitted {
			return rejection(decision, ledger)
		}

		assignment = &models.CommitteeAssignment{
			FacultyEmail: req.FacultyEmail,
			CommitteeID:  req.CommitteeID,
			StartDate:    startDate,
			EndDate:      endDate,
		}
		if err := tx.Assignments().Create(assignment); err != nil {
			switch {
			case database.IsUniqueViolation(err):
				return apperrors.ErrAssignmentExists
			case database.IsForeignKeyViolation(err):
				return apperrors.ErrFacultyNotFound
			case database.IsCheckViolation(err):
				return apperrors.ErrInvalidDateRange
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})

	if decided {
		metrics.RecordDecision(decision.Admitted, string(decision.Reason))
		log = log.WithFields(map[string]interface{}{
			"senate_division":      faculty.SenateDivisionCode,
			"reason":               decision.Reason,
			"committee_slots_left": decision.CommitteeSlotsLeft,
		})
	}
	if err != nil {
		if apperrors.IsCapacity(err) {
			log.Warn("Assignment rejected")
		}
		return nil, err
	}

	log.Info("Assignment admitted")
	return toAssignmentResponse(assignment, faculty.SenateDivisionCode), nil
}

// rejection turns a rejected decision into the capacity error the caller sees.
// Available is the number of free seats before the candidate.
func rejection(decision allocation.Decision, ledger *allocation.Ledger) error {
	available := ledger.TotalRemaining
	if available < 0 {
		available = 0
	}
	if decision.Reason == allocation.ReasonUnmetRequirements {
		return apperrors.NewUnmetRequirementsError(decision.OtherDivisionsSurplus, available)
	}
	return apperrors.NewNoSlotsRemainingError(available)
}

// GetByCommittee lists the assignments on a committee
func (s *AssignmentService) GetByCommittee(committeeID uint) ([]AssignmentResponse, error) {
	if _, err := s.store.Committees().GetByID(committeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommitteeNotFound
		}
		return nil, fmt.Errorf("failed to get committee: %w", err)
	}

	assignments, err := s.store.Assignments().GetByCommittee(committeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get committee assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		division := ""
		if assignments[i].Faculty != nil {
			division = assignments[i].Faculty.SenateDivisionCode
		}
		responses[i] = *toAssignmentResponse(&assignments[i], division)
	}
	return responses, nil
}

// GetByFaculty lists the assignments held by a faculty member
func (s *AssignmentService) GetByFaculty(email string) ([]AssignmentResponse, error) {
	faculty, err := s.store.Faculty().GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("failed to get faculty: %w", err)
	}

	assignments, err := s.store.Assignments().GetByFaculty(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get faculty assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i], faculty.SenateDivisionCode)
	}
	return responses, nil
}

// Delete removes an assignment and frees its seat
func (s *AssignmentService) Delete(ctx context.Context, email string, committeeID uint) error {
	err := s.store.InSerializableTx(ctx, func(tx repository.StoreInterface) error {
		if _, err := lockCommittee(tx, committeeID); err != nil {
			return err
		}
		if err := tx.Assignments().Delete(email, committeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to delete assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"faculty_email": email,
		"committee_id":  committeeID,
	}).Info("Assignment removed")
	return nil
}

func toAssignmentResponse(assignment *models.CommitteeAssignment, divisionCode string) *AssignmentResponse {
	return &AssignmentResponse{
		FacultyEmail:       assignment.FacultyEmail,
		CommitteeID:        assignment.CommitteeID,
		SenateDivisionCode: divisionCode,
		StartDate:          assignment.StartDate.Format(dateLayout),
		EndDate:            assignment.EndDate.Format(dateLayout),
		CreatedAt:          assignment.CreatedAt.Format(timestampLayout),
	}
}
