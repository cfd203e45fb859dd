package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoriesProduceDistinctKeys(t *testing.T) {
	f := NewFactorySet()

	assert.NotEqual(t, f.SenateDivision.Create().Code, f.SenateDivision.Create().Code)
	assert.NotEqual(t, f.Faculty.WithDivision("AO").Email, f.Faculty.WithDivision("AO").Email)
	assert.NotEqual(t, f.Committee.WithSlots(1).Name, f.Committee.WithSlots(1).Name)
	assert.LessOrEqual(t, len(f.Department.Create().Code), 10)
}

func TestCommitteeWithRequirements(t *testing.T) {
	committee := NewCommitteeFactory().WithRequirements(3, map[string]int{"AO": 1, "SC": 2})

	assert.Equal(t, 3, committee.TotalSlots)
	assert.Len(t, committee.SlotRequirements, 2)
}

func TestAssignmentSpansOneYear(t *testing.T) {
	a := NewAssignmentFactory().Create("a@uni.edu", 1)

	assert.Equal(t, a.StartDate.AddDate(1, 0, 0), a.EndDate)
}
