//go:build integration
// +build integration

package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/repository"
	"committee-tracker-backend/internal/service"
	"committee-tracker-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// AssignmentIntegrationTestSuite runs the assignment service against Postgres
type AssignmentIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *repository.Store
	assignments   *service.AssignmentService
	committees    *service.CommitteeService
	faculty       *service.FacultyService
	factories     *testutils.FactorySet
}

func (suite *AssignmentIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	cfg := suite.baseTestSuite.Config
	suite.store = repository.NewStore(suite.baseTestSuite.DB, repository.RetryPolicy{
		MaxRetries: cfg.TxMaxRetries,
		BaseDelay:  cfg.TxRetryBaseDelay,
	})
	v := validator.New()
	suite.assignments = service.NewAssignmentService(suite.store, v)
	suite.committees = service.NewCommitteeService(suite.store, v)
	suite.faculty = service.NewFacultyService(suite.store, repository.NewDepartmentRepository(suite.baseTestSuite.DB), v)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AssignmentIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssignmentIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	for _, code := range []string{"AO", "SC"} {
		suite.Require().NoError(suite.store.SenateDivisions().Create(suite.factories.SenateDivision.WithCode(code)))
	}
}

func (suite *AssignmentIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentIntegrationTestSuite) propose(email string, committeeID uint) error {
	_, err := suite.assignments.ProposeAssignment(context.Background(), &service.ProposeAssignmentRequest{
		FacultyEmail: email,
		CommitteeID:  committeeID,
		StartDate:    "2025-09-01",
		EndDate:      "2026-08-31",
	})
	return err
}

func (suite *AssignmentIntegrationTestSuite) TestConcurrentProposalsForLastSeat() {
	committee := suite.factories.Committee.WithSlots(1)
	suite.Require().NoError(suite.store.Committees().Create(committee))

	first := suite.factories.Faculty.WithDivision("AO")
	second := suite.factories.Faculty.WithDivision("SC")
	suite.Require().NoError(suite.store.Faculty().Create(first))
	suite.Require().NoError(suite.store.Faculty().Create(second))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, email := range []string{first.Email, second.Email} {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			errs[i] = suite.propose(email, committee.ID)
		}(i, email)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
			continue
		}
		suite.True(apperrors.IsCapacity(err) || apperrors.IsConflict(err), "unexpected error: %v", err)
	}
	suite.Equal(1, admitted)

	ledger, err := suite.committees.GetLedger(context.Background(), committee.ID)
	suite.Require().NoError(err)
	suite.Equal(1, ledger.TotalFilled)
	suite.Equal(0, ledger.TotalRemaining)
}

func (suite *AssignmentIntegrationTestSuite) TestReservedSeatIsProtected() {
	committee := suite.factories.Committee.WithRequirements(2, map[string]int{"AO": 1, "SC": 1})
	suite.Require().NoError(suite.store.Committees().Create(committee))

	sc1 := suite.factories.Faculty.WithDivision("SC")
	sc2 := suite.factories.Faculty.WithDivision("SC")
	ao1 := suite.factories.Faculty.WithDivision("AO")
	suite.Require().NoError(suite.store.Faculty().Create(sc1))
	suite.Require().NoError(suite.store.Faculty().Create(sc2))
	suite.Require().NoError(suite.store.Faculty().Create(ao1))

	suite.Require().NoError(suite.propose(sc1.Email, committee.ID))
	err := suite.propose(sc2.Email, committee.ID)
	suite.ErrorIs(err, &apperrors.CapacityError{Kind: apperrors.CapacityUnmetRequirements})
	suite.NoError(suite.propose(ao1.Email, committee.ID))

	err = suite.propose(ao1.Email, committee.ID)
	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentIntegrationTestSuite) TestCapacityEditAfterFill() {
	committee := suite.factories.Committee.WithSlots(3)
	suite.Require().NoError(suite.store.Committees().Create(committee))

	ao := suite.factories.Faculty.WithDivision("AO")
	suite.Require().NoError(suite.store.Faculty().Create(ao))
	suite.Require().NoError(suite.propose(ao.Email, committee.ID))

	total := 1
	_, err := suite.committees.ApplyCapacityEdit(context.Background(), committee.ID, &service.CapacityEditRequest{
		TotalSlots:  &total,
		Requirement: &service.SlotRequirementRequest{SenateDivisionCode: "SC", SlotRequirements: 2},
	})
	suite.ErrorIs(err, &apperrors.CapacityError{Kind: apperrors.CapacityRequirementsExceedCapacity})

	_, err = suite.committees.ApplyCapacityEdit(context.Background(), committee.ID, &service.CapacityEditRequest{
		Requirement: &service.SlotRequirementRequest{SenateDivisionCode: "SC", SlotRequirements: 2},
	})
	suite.Require().NoError(err)

	ledger, err := suite.committees.GetLedger(context.Background(), committee.ID)
	suite.Require().NoError(err)
	suite.Equal(1, ledger.TotalFilled)
	suite.Equal(2, ledger.TotalRemaining)
}

// A division change racing a proposal must either see the seat and refuse,
// or commit first so the proposal is judged against the new division.
func (suite *AssignmentIntegrationTestSuite) TestDivisionChangeRacingProposal() {
	committee := suite.factories.Committee.WithSlots(5)
	suite.Require().NoError(suite.store.Committees().Create(committee))

	for i := 0; i < 10; i++ {
		member := suite.factories.Faculty.WithDivision("AO")
		suite.Require().NoError(suite.store.Faculty().Create(member))

		var (
			wg         sync.WaitGroup
			assignment *service.AssignmentResponse
			proposeErr error
			updateErr  error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			assignment, proposeErr = suite.assignments.ProposeAssignment(context.Background(), &service.ProposeAssignmentRequest{
				FacultyEmail: member.Email,
				CommitteeID:  committee.ID,
				StartDate:    "2025-09-01",
				EndDate:      "2026-08-31",
			})
		}()
		go func() {
			defer wg.Done()
			_, updateErr = suite.faculty.Update(context.Background(), member.Email, &service.UpdateFacultyRequest{
				FullName:           member.FullName,
				SenateDivisionCode: "SC",
			})
		}()
		wg.Wait()

		if proposeErr != nil {
			suite.True(apperrors.IsConflict(proposeErr), "unexpected error: %v", proposeErr)
		}
		if updateErr != nil {
			suite.True(
				errors.Is(updateErr, apperrors.ErrFacultyDivisionLocked) || apperrors.IsConflict(updateErr),
				"unexpected error: %v", updateErr,
			)
		}

		current, err := suite.store.Faculty().GetByEmail(member.Email)
		suite.Require().NoError(err)
		if proposeErr == nil {
			suite.Equal(current.SenateDivisionCode, assignment.SenateDivisionCode,
				"seat judged against %s but counted against %s", assignment.SenateDivisionCode, current.SenateDivisionCode)
			if assignment.SenateDivisionCode == "AO" {
				suite.ErrorIs(updateErr, apperrors.ErrFacultyDivisionLocked)
			}
		}
	}

	ledger, err := suite.committees.GetLedger(context.Background(), committee.ID)
	suite.Require().NoError(err)
	filled := 0
	for _, d := range ledger.Divisions {
		filled += d.Filled
	}
	suite.Equal(ledger.TotalFilled, filled)
}

func TestAssignmentIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentIntegrationTestSuite))
}
