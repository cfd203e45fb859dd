package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "committee"}
		assert.Equal(t, "committee not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "committee"}
		err2 := &NotFoundError{Entity: "committee"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "committee"}
		err2 := &NotFoundError{Entity: "faculty"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCommitteeNotFound, ErrCommitteeNotFound))
		assert.False(t, errors.Is(ErrCommitteeNotFound, ErrFacultyNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrFacultyNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrSenateDivisionNotFound)))
		assert.False(t, IsNotFound(ErrSenateDivisionInUse))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "committee assignment", Context: "for this faculty and committee"}
		assert.Equal(t, "committee assignment already exists for this faculty and committee", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "committee"}
		assert.Equal(t, "committee already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAssignmentExists, &AlreadyExistsError{Entity: "committee assignment"}))
		assert.False(t, errors.Is(ErrAssignmentExists, ErrSlotRequirementExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAssignmentExists))
		assert.False(t, IsAlreadyExists(ErrCommitteeNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		assert.Equal(t, "validation error: end_date - end date must not be before start date", ErrInvalidDateRange.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ErrNegativeRequirement))
		assert.False(t, IsValidation(ErrCommitteeNotFound))
	})
}

func TestCapacityError(t *testing.T) {
	t.Run("no slots remaining", func(t *testing.T) {
		err := NewNoSlotsRemainingError(0)
		assert.True(t, IsCapacity(err))
		assert.Contains(t, err.Error(), "no slots remaining")

		var capErr *CapacityError
		assert.True(t, errors.As(err, &capErr))
		assert.Equal(t, CapacityNoSlotsRemaining, capErr.Kind)
		assert.NotEmpty(t, capErr.Hint)
	})

	t.Run("unmet requirements", func(t *testing.T) {
		err := NewUnmetRequirementsError(2, 1)
		assert.Equal(t, "violates committee slot requirements: 2 reserved slots still unmet, 1 slots available", err.Error())
	})

	t.Run("requirements exceed capacity", func(t *testing.T) {
		err := NewRequirementsExceedCapacityError(5, 3)
		assert.Equal(t, "slot requirements exceed committee capacity: required 5, available 3", err.Error())

		var capErr *CapacityError
		assert.True(t, errors.As(err, &capErr))
		assert.Equal(t, "lower requirements or raise capacity first", capErr.Hint)
	})

	t.Run("errors.Is matches by kind", func(t *testing.T) {
		err := fmt.Errorf("propose: %w", NewNoSlotsRemainingError(-1))
		assert.True(t, errors.Is(err, &CapacityError{Kind: CapacityNoSlotsRemaining}))
		assert.True(t, errors.Is(err, &CapacityError{}))
		assert.False(t, errors.Is(err, &CapacityError{Kind: CapacityUnmetRequirements}))
	})
}

func TestConflictError(t *testing.T) {
	assert.True(t, IsConflict(ErrConcurrentModification))
	assert.True(t, IsConflict(fmt.Errorf("tx: %w", ErrConcurrentModification)))
	assert.False(t, IsConflict(ErrAssignmentExists))
	assert.True(t, IsConflict(ErrSenateDivisionInUse))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom entity", "in committee")
		assert.Equal(t, "custom entity already exists in committee", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing DB_NAME")
		assert.Equal(t, "missing DB_NAME", err.Error())
		assert.True(t, IsConfiguration(err))
	})
}
