package testutils

import (
	"strings"
	"time"

	"committee-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// uniqueSuffix returns a short random token for names that must not collide
func uniqueSuffix() string {
	return strings.ToUpper(uuid.New().String()[:6])
}

// SenateDivisionFactory provides methods to create test SenateDivision data
type SenateDivisionFactory struct{}

// NewSenateDivisionFactory creates a new SenateDivisionFactory
func NewSenateDivisionFactory() *SenateDivisionFactory {
	return &SenateDivisionFactory{}
}

// Create creates a test SenateDivision with a random code
func (f *SenateDivisionFactory) Create() *models.SenateDivision {
	return f.WithCode("D" + uniqueSuffix())
}

// WithCode creates a test SenateDivision with a fixed code
func (f *SenateDivisionFactory) WithCode(code string) *models.SenateDivision {
	return &models.SenateDivision{
		Code: code,
		Name: "Division " + code,
	}
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with a random code
func (f *DepartmentFactory) Create() *models.Department {
	return f.WithCode("P" + uniqueSuffix())
}

// WithCode creates a test Department with a fixed code
func (f *DepartmentFactory) WithCode(code string) *models.Department {
	return &models.Department{
		Code: code,
		Name: "Department " + code,
	}
}

// FacultyFactory provides methods to create test Faculty data
type FacultyFactory struct{}

// NewFacultyFactory creates a new FacultyFactory
func NewFacultyFactory() *FacultyFactory {
	return &FacultyFactory{}
}

// WithDivision creates a test Faculty member in the given senate division
func (f *FacultyFactory) WithDivision(divisionCode string) *models.Faculty {
	return f.WithEmail(strings.ToLower(uniqueSuffix())+"@faculty.test.edu", divisionCode)
}

// WithEmail creates a test Faculty member with a fixed email
func (f *FacultyFactory) WithEmail(email, divisionCode string) *models.Faculty {
	return &models.Faculty{
		Email:              email,
		FullName:           "Jane Doe",
		JobTitle:           "Associate Professor",
		Phone:              "+1-555-0123",
		SenateDivisionCode: divisionCode,
	}
}

// CommitteeFactory provides methods to create test Committee data
type CommitteeFactory struct{}

// NewCommitteeFactory creates a new CommitteeFactory
func NewCommitteeFactory() *CommitteeFactory {
	return &CommitteeFactory{}
}

// WithSlots creates a test Committee with the given capacity and no requirements
func (f *CommitteeFactory) WithSlots(totalSlots int) *models.Committee {
	return &models.Committee{
		Name:        "Committee " + uniqueSuffix(),
		Description: "A test committee",
		TotalSlots:  totalSlots,
	}
}

// WithRequirements creates a test Committee carrying requirement rows keyed by division code
func (f *CommitteeFactory) WithRequirements(totalSlots int, requirements map[string]int) *models.Committee {
	committee := f.WithSlots(totalSlots)
	for code, minimum := range requirements {
		committee.SlotRequirements = append(committee.SlotRequirements, models.CommitteeSlotRequirement{
			SenateDivisionCode: code,
			SlotRequirements:   minimum,
		})
	}
	return committee
}

// AssignmentFactory provides methods to create test CommitteeAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a one-year test assignment starting today
func (f *AssignmentFactory) Create(facultyEmail string, committeeID uint) *models.CommitteeAssignment {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	return &models.CommitteeAssignment{
		FacultyEmail: facultyEmail,
		CommitteeID:  committeeID,
		StartDate:    start,
		EndDate:      start.AddDate(1, 0, 0),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	SenateDivision *SenateDivisionFactory
	Department     *DepartmentFactory
	Faculty        *FacultyFactory
	Committee      *CommitteeFactory
	Assignment     *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		SenateDivision: NewSenateDivisionFactory(),
		Department:     NewDepartmentFactory(),
		Faculty:        NewFacultyFactory(),
		Committee:      NewCommitteeFactory(),
		Assignment:     NewAssignmentFactory(),
	}
}
