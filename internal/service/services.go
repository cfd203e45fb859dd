package service

import (
	"committee-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Services bundles the domain services over one database
type Services struct {
	SenateDivisions *SenateDivisionService
	Departments     *DepartmentService
	Faculty         *FacultyService
	Committees      *CommitteeService
	Assignments     *AssignmentService
}

// NewServices wires repositories and services. Assignment and capacity
// writes run in serializable transactions retried according to policy.
func NewServices(db *gorm.DB, policy repository.RetryPolicy) *Services {
	validator := validator.New()

	store := repository.NewStore(db, policy)
	departmentRepo := repository.NewDepartmentRepository(db)

	return &Services{
		SenateDivisions: NewSenateDivisionService(store.SenateDivisions(), validator),
		Departments:     NewDepartmentService(departmentRepo, validator),
		Faculty:         NewFacultyService(store, departmentRepo, validator),
		Committees:      NewCommitteeService(store, validator),
		Assignments:     NewAssignmentService(store, validator),
	}
}
