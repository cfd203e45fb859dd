package service_test

import (
	"context"
	"errors"
	"testing"

	"committee-tracker-backend/internal/database/models"
	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *storeMocks
	service *service.AssignmentService
	ctx     context.Context
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newStoreMocks(suite.ctrl)
	suite.service = service.NewAssignmentService(suite.m.store, validator.New())
	suite.ctx = context.Background()
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func request(email string, committeeID uint) *service.ProposeAssignmentRequest {
	return &service.ProposeAssignmentRequest{
		FacultyEmail: email,
		CommitteeID:  committeeID,
		StartDate:    "2025-09-01",
		EndDate:      "2026-08-31",
	}
}

// committeeState backs the repository mocks with an in-memory committee so
// a sequence of proposals sees the seats admitted before it
type committeeState struct {
	committee    *models.Committee
	requirements []models.CommitteeSlotRequirement
	faculty      map[string]*models.Faculty
	seats        map[string]bool
}

func (suite *AssignmentServiceTestSuite) useState(state *committeeState) {
	suite.m.faculty.EXPECT().GetByEmailForShare(gomock.Any()).DoAndReturn(func(email string) (*models.Faculty, error) {
		if f, ok := state.faculty[email]; ok {
			return f, nil
		}
		return nil, gorm.ErrRecordNotFound
	}).AnyTimes()
	suite.m.committees.EXPECT().GetByIDForUpdate(state.committee.ID).Return(state.committee, nil).AnyTimes()
	suite.m.assignments.EXPECT().Exists(gomock.Any(), state.committee.ID).DoAndReturn(func(email string, _ uint) (bool, error) {
		return state.seats[email], nil
	}).AnyTimes()
	suite.m.requirements.EXPECT().GetByCommittee(state.committee.ID).Return(state.requirements, nil).AnyTimes()
	suite.m.assignments.EXPECT().CountFilledByDivision(state.committee.ID).DoAndReturn(func(uint) ([]models.DivisionFill, error) {
		counts := map[string]int{}
		for email := range state.seats {
			counts[state.faculty[email].SenateDivisionCode]++
		}
		fills := make([]models.DivisionFill, 0, len(counts))
		for code, n := range counts {
			fills = append(fills, models.DivisionFill{SenateDivisionCode: code, Filled: n})
		}
		return fills, nil
	}).AnyTimes()
	suite.m.assignments.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.CommitteeAssignment) error {
		state.seats[a.FacultyEmail] = true
		return nil
	}).AnyTimes()
}

func newState(totalSlots int, requirements map[string]int, faculty map[string]string) *committeeState {
	state := &committeeState{
		committee: &models.Committee{ID: 1, Name: "Curriculum", TotalSlots: totalSlots},
		faculty:   map[string]*models.Faculty{},
		seats:     map[string]bool{},
	}
	for code, n := range requirements {
		state.requirements = append(state.requirements, models.CommitteeSlotRequirement{
			CommitteeID: 1, SenateDivisionCode: code, SlotRequirements: n,
		})
	}
	for email, division := range faculty {
		state.faculty[email] = &models.Faculty{Email: email, SenateDivisionCode: division}
	}
	return state
}

func (suite *AssignmentServiceTestSuite) TestProposeAssignmentAdmitted() {
	suite.useState(newState(2, map[string]int{"AO": 1}, map[string]string{"ao1@uni.edu": "AO"}))

	response, err := suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 1))

	suite.Require().NoError(err)
	suite.Equal("ao1@uni.edu", response.FacultyEmail)
	suite.Equal(uint(1), response.CommitteeID)
	suite.Equal("AO", response.SenateDivisionCode)
	suite.Equal("2025-09-01", response.StartDate)
	suite.Equal("2026-08-31", response.EndDate)
}

func (suite *AssignmentServiceTestSuite) TestSingleReservedSlotRejectsSecondMember() {
	suite.useState(newState(1, map[string]int{"AO": 1}, map[string]string{
		"ao1@uni.edu": "AO",
		"ao2@uni.edu": "AO",
	}))

	_, err := suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 1))
	suite.Require().NoError(err)

	_, err = suite.service.ProposeAssignment(suite.ctx, request("ao2@uni.edu", 1))
	suite.Require().Error(err)

	var capacityErr *apperrors.CapacityError
	suite.Require().ErrorAs(err, &capacityErr)
	suite.Equal(apperrors.CapacityNoSlotsRemaining, capacityErr.Kind)
	suite.Equal(0, capacityErr.Available)
}

func (suite *AssignmentServiceTestSuite) TestOtherDivisionFillsGeneralCapacity() {
	suite.useState(newState(2, map[string]int{"AO": 1}, map[string]string{
		"ao1@uni.edu": "AO",
		"sc1@uni.edu": "SC",
	}))

	_, err := suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 1))
	suite.Require().NoError(err)
	_, err = suite.service.ProposeAssignment(suite.ctx, request("sc1@uni.edu", 1))
	suite.NoError(err)
}

func (suite *AssignmentServiceTestSuite) TestUnconstrainedDivisionTakesLastSeat() {
	suite.useState(newState(1, map[string]int{"AO": 1}, map[string]string{
		"sc1@uni.edu": "SC",
		"sc2@uni.edu": "SC",
		"ao1@uni.edu": "AO",
	}))

	_, err := suite.service.ProposeAssignment(suite.ctx, request("sc1@uni.edu", 1))
	suite.Require().NoError(err)

	_, err = suite.service.ProposeAssignment(suite.ctx, request("sc2@uni.edu", 1))
	suite.ErrorIs(err, &apperrors.CapacityError{Kind: apperrors.CapacityNoSlotsRemaining})

	_, err = suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 1))
	suite.ErrorIs(err, &apperrors.CapacityError{Kind: apperrors.CapacityNoSlotsRemaining})
}

func (suite *AssignmentServiceTestSuite) TestExhaustedQuotaCannotTakeReservedSeat() {
	suite.useState(newState(2, map[string]int{"AO": 1, "SC": 1}, map[string]string{
		"sc1@uni.edu": "SC",
		"sc2@uni.edu": "SC",
	}))

	_, err := suite.service.ProposeAssignment(suite.ctx, request("sc1@uni.edu", 1))
	suite.Require().NoError(err)

	_, err = suite.service.ProposeAssignment(suite.ctx, request("sc2@uni.edu", 1))
	var capacityErr *apperrors.CapacityError
	suite.Require().ErrorAs(err, &capacityErr)
	suite.Equal(apperrors.CapacityUnmetRequirements, capacityErr.Kind)
	suite.Equal(1, capacityErr.Required)
	suite.Equal(1, capacityErr.Available)
	suite.NotEmpty(capacityErr.Hint)
}

func (suite *AssignmentServiceTestSuite) TestDuplicateIsReportedBeforeCapacity() {
	state := newState(0, nil, map[string]string{"ao1@uni.edu": "AO"})
	state.seats["ao1@uni.edu"] = true

	suite.m.faculty.EXPECT().GetByEmailForShare("ao1@uni.edu").Return(state.faculty["ao1@uni.edu"], nil)
	suite.m.committees.EXPECT().GetByIDForUpdate(uint(1)).Return(state.committee, nil)
	suite.m.assignments.EXPECT().Exists("ao1@uni.edu", uint(1)).Return(true, nil)

	_, err := suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 1))
	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentServiceTestSuite) TestFacultyNotFound() {
	suite.m.faculty.EXPECT().GetByEmailForShare("ghost@uni.edu").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ProposeAssignment(suite.ctx, request("ghost@uni.edu", 1))
	suite.ErrorIs(err, apperrors.ErrFacultyNotFound)
}

func (suite *AssignmentServiceTestSuite) TestCommitteeNotFound() {
	suite.m.faculty.EXPECT().GetByEmailForShare("ao1@uni.edu").Return(&models.Faculty{Email: "ao1@uni.edu", SenateDivisionCode: "AO"}, nil)
	suite.m.committees.EXPECT().GetByIDForUpdate(uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 9))
	suite.ErrorIs(err, apperrors.ErrCommitteeNotFound)
}

func (suite *AssignmentServiceTestSuite) TestEndDateBeforeStartDate() {
	suite.m.faculty.EXPECT().GetByEmailForShare("ao1@uni.edu").Return(&models.Faculty{Email: "ao1@uni.edu", SenateDivisionCode: "AO"}, nil)
	suite.m.committees.EXPECT().GetByIDForUpdate(uint(1)).Return(&models.Committee{ID: 1, TotalSlots: 3}, nil)

	req := request("ao1@uni.edu", 1)
	req.EndDate = "2025-01-01"
	_, err := suite.service.ProposeAssignment(suite.ctx, req)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *AssignmentServiceTestSuite) TestInvalidRequest() {
	req := request("not-an-email", 1)
	_, err := suite.service.ProposeAssignment(suite.ctx, req)
	suite.True(apperrors.IsValidation(err))

	req = request("ao1@uni.edu", 1)
	req.StartDate = "09/01/2025"
	_, err = suite.service.ProposeAssignment(suite.ctx, req)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestStorageErrorIsWrapped() {
	boom := errors.New("connection reset")
	suite.m.faculty.EXPECT().GetByEmailForShare("ao1@uni.edu").Return(nil, boom)

	_, err := suite.service.ProposeAssignment(suite.ctx, request("ao1@uni.edu", 1))
	suite.ErrorIs(err, boom)
	suite.False(apperrors.IsNotFound(err))
}

func (suite *AssignmentServiceTestSuite) TestDelete() {
	suite.m.committees.EXPECT().GetByIDForUpdate(uint(1)).Return(&models.Committee{ID: 1}, nil).Times(2)
	suite.m.assignments.EXPECT().Delete("ao1@uni.edu", uint(1)).Return(nil)
	suite.m.assignments.EXPECT().Delete("ao2@uni.edu", uint(1)).Return(gorm.ErrRecordNotFound)

	suite.NoError(suite.service.Delete(suite.ctx, "ao1@uni.edu", 1))
	suite.ErrorIs(suite.service.Delete(suite.ctx, "ao2@uni.edu", 1), apperrors.ErrAssignmentNotFound)
}

func (suite *AssignmentServiceTestSuite) TestGetByCommittee() {
	suite.m.committees.EXPECT().GetByID(uint(1)).Return(&models.Committee{ID: 1}, nil)
	suite.m.assignments.EXPECT().GetByCommittee(uint(1)).Return([]models.CommitteeAssignment{
		{FacultyEmail: "ao1@uni.edu", CommitteeID: 1, Faculty: &models.Faculty{SenateDivisionCode: "AO"}},
	}, nil)

	responses, err := suite.service.GetByCommittee(1)
	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	suite.Equal("AO", responses[0].SenateDivisionCode)
}

func (suite *AssignmentServiceTestSuite) TestGetByFacultyNotFound() {
	suite.m.faculty.EXPECT().GetByEmailForShare("ghost@uni.edu").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByFaculty("ghost@uni.edu")
	suite.ErrorIs(err, apperrors.ErrFacultyNotFound)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
