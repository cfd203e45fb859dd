package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when a referenced entity does not exist.
// It is the domain form of a foreign key violation.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this committee"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation or constraint error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CapacityKind distinguishes the reasons a capacity rule can fail
type CapacityKind string

const (
	CapacityNoSlotsRemaining           CapacityKind = "no_slots_remaining"
	CapacityUnmetRequirements          CapacityKind = "unmet_requirements"
	CapacityRequirementsExceedCapacity CapacityKind = "requirements_exceed_capacity"
)

// CapacityError is returned when a committee slot rule rejects a write.
// Required and Available carry the numbers that did not fit.
type CapacityError struct {
	Kind      CapacityKind
	Required  int
	Available int
	Hint      string
}

func (e *CapacityError) Error() string {
	switch e.Kind {
	case CapacityNoSlotsRemaining:
		return fmt.Sprintf("no slots remaining on committee (available: %d)", e.Available)
	case CapacityUnmetRequirements:
		return fmt.Sprintf("violates committee slot requirements: %d reserved slots still unmet, %d slots available", e.Required, e.Available)
	case CapacityRequirementsExceedCapacity:
		return fmt.Sprintf("slot requirements exceed committee capacity: required %d, available %d", e.Required, e.Available)
	}
	return "committee capacity violation"
}

// Is enables errors.Is() comparison for CapacityError by kind
func (e *CapacityError) Is(target error) bool {
	t, ok := target.(*CapacityError)
	if !ok {
		return false
	}
	return t.Kind == "" || e.Kind == t.Kind
}

// ConflictError represents a write that lost a race with a concurrent writer
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSenateDivisionNotFound  = &NotFoundError{Entity: "senate division"}
	ErrDepartmentNotFound      = &NotFoundError{Entity: "department"}
	ErrFacultyNotFound         = &NotFoundError{Entity: "faculty"}
	ErrCommitteeNotFound       = &NotFoundError{Entity: "committee"}
	ErrSlotRequirementNotFound = &NotFoundError{Entity: "committee slot requirement"}
	ErrAssignmentNotFound      = &NotFoundError{Entity: "committee assignment"}
)

// Already Exists Errors
var (
	ErrSenateDivisionExists  = &AlreadyExistsError{Entity: "senate division", Context: "with this code"}
	ErrDepartmentExists      = &AlreadyExistsError{Entity: "department", Context: "with this code"}
	ErrFacultyExists         = &AlreadyExistsError{Entity: "faculty", Context: "with this email"}
	ErrCommitteeExists       = &AlreadyExistsError{Entity: "committee", Context: "with this name"}
	ErrSlotRequirementExists = &AlreadyExistsError{Entity: "committee slot requirement", Context: "for this senate division"}
	ErrAssignmentExists      = &AlreadyExistsError{Entity: "committee assignment", Context: "for this faculty and committee"}
)

// Constraint Errors
var (
	ErrInvalidDateRange       = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrNegativeTotalSlots     = &ValidationError{Field: "total_slots", Message: "must not be negative"}
	ErrNegativeRequirement    = &ValidationError{Field: "slot_requirements", Message: "must not be negative"}
	ErrEmptyCapacityEdit      = &ValidationError{Message: "capacity edit must change total_slots or a slot requirement"}
	ErrInvalidCommitteeID     = &ValidationError{Field: "committee_id", Message: "must be a positive integer"}
	ErrInvalidDateFormat      = &ValidationError{Message: "dates must use the YYYY-MM-DD format"}
	ErrSenateDivisionInUse    = &ConflictError{Message: "senate division is still referenced by faculty or slot requirements"}
	ErrFacultyDivisionLocked  = &ConflictError{Message: "senate division of a faculty member cannot change while they hold committee assignments"}
	ErrConcurrentModification = &ConflictError{Message: "committee was modified concurrently, retry the request"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsCapacity checks if an error is a CapacityError
func IsCapacity(err error) bool {
	var capacityErr *CapacityError
	return errors.As(err, &capacityErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNoSlotsRemainingError reports a committee already at or over capacity
func NewNoSlotsRemainingError(available int) error {
	return &CapacityError{
		Kind:      CapacityNoSlotsRemaining,
		Required:  1,
		Available: available,
		Hint:      "raise committee capacity or remove an existing assignment first",
	}
}

// NewUnmetRequirementsError reports that other senate divisions still hold
// unmet reserved slots the request would consume
func NewUnmetRequirementsError(unmet, available int) error {
	return &CapacityError{
		Kind:      CapacityUnmetRequirements,
		Required:  unmet,
		Available: available,
		Hint:      "unmet senate requirements exist for other divisions; fill them or lower their requirements first",
	}
}

// NewRequirementsExceedCapacityError reports a capacity edit that would leave
// declared requirements above total slots
func NewRequirementsExceedCapacityError(required, available int) error {
	return &CapacityError{
		Kind:      CapacityRequirementsExceedCapacity,
		Required:  required,
		Available: available,
		Hint:      "lower requirements or raise capacity first",
	}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
