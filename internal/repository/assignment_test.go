//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/database/models"
	"committee-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	faculty       *FacultyRepository
	committees    *CommitteeRepository
	factories     *testutils.FactorySet

	committee *models.Committee
}

func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.faculty = NewFacultyRepository(suite.baseTestSuite.DB)
	suite.committees = NewCommitteeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	divisions := NewSenateDivisionRepository(suite.baseTestSuite.DB)
	for _, code := range []string{"AO", "SC"} {
		suite.Require().NoError(divisions.Create(suite.factories.SenateDivision.WithCode(code)))
	}
	suite.committee = suite.factories.Committee.WithSlots(5)
	suite.Require().NoError(suite.committees.Create(suite.committee))
}

func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentRepositoryTestSuite) seat(division string) *models.Faculty {
	member := suite.factories.Faculty.WithDivision(division)
	suite.Require().NoError(suite.faculty.Create(member))
	suite.Require().NoError(suite.repo.Create(suite.factories.Assignment.Create(member.Email, suite.committee.ID)))
	return member
}

func (suite *AssignmentRepositoryTestSuite) TestCreateAndGet() {
	member := suite.seat("AO")

	found, err := suite.repo.Get(member.Email, suite.committee.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.Faculty)
	suite.Equal("AO", found.Faculty.SenateDivisionCode)

	exists, err := suite.repo.Exists(member.Email, suite.committee.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists("nobody@uni.edu", suite.committee.ID)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *AssignmentRepositoryTestSuite) TestCreateDuplicate() {
	member := suite.seat("AO")

	err := suite.repo.Create(suite.factories.Assignment.Create(member.Email, suite.committee.ID))
	suite.True(database.IsUniqueViolation(err))
}

func (suite *AssignmentRepositoryTestSuite) TestCreateUnknownFaculty() {
	err := suite.repo.Create(suite.factories.Assignment.Create("nobody@uni.edu", suite.committee.ID))
	suite.True(database.IsForeignKeyViolation(err))
}

func (suite *AssignmentRepositoryTestSuite) TestEndBeforeStartRejectedByCheck() {
	member := suite.factories.Faculty.WithDivision("AO")
	suite.Require().NoError(suite.faculty.Create(member))

	assignment := suite.factories.Assignment.Create(member.Email, suite.committee.ID)
	assignment.EndDate = assignment.StartDate.Add(-24 * time.Hour)
	suite.True(database.IsCheckViolation(suite.repo.Create(assignment)))
}

func (suite *AssignmentRepositoryTestSuite) TestCountFilledByDivision() {
	suite.seat("AO")
	suite.seat("AO")
	suite.seat("SC")

	fills, err := suite.repo.CountFilledByDivision(suite.committee.ID)
	suite.NoError(err)
	suite.Equal([]models.DivisionFill{
		{SenateDivisionCode: "AO", Filled: 2},
		{SenateDivisionCode: "SC", Filled: 1},
	}, fills)
}

func (suite *AssignmentRepositoryTestSuite) TestCountFilledIncludesExpiredAssignments() {
	member := suite.factories.Faculty.WithDivision("AO")
	suite.Require().NoError(suite.faculty.Create(member))

	past := suite.factories.Assignment.Create(member.Email, suite.committee.ID)
	past.StartDate = past.StartDate.AddDate(-3, 0, 0)
	past.EndDate = past.StartDate.AddDate(1, 0, 0)
	suite.Require().NoError(suite.repo.Create(past))

	fills, err := suite.repo.CountFilledByDivision(suite.committee.ID)
	suite.NoError(err)
	suite.Equal([]models.DivisionFill{{SenateDivisionCode: "AO", Filled: 1}}, fills)
}

func (suite *AssignmentRepositoryTestSuite) TestGetByCommitteeAndFaculty() {
	member := suite.seat("AO")
	suite.seat("SC")

	byCommittee, err := suite.repo.GetByCommittee(suite.committee.ID)
	suite.NoError(err)
	suite.Len(byCommittee, 2)

	byFaculty, err := suite.repo.GetByFaculty(member.Email)
	suite.NoError(err)
	suite.Require().Len(byFaculty, 1)
	suite.Equal(suite.committee.ID, byFaculty[0].CommitteeID)
}

func (suite *AssignmentRepositoryTestSuite) TestDelete() {
	member := suite.seat("AO")

	suite.NoError(suite.repo.Delete(member.Email, suite.committee.ID))
	suite.Equal(gorm.ErrRecordNotFound, suite.repo.Delete(member.Email, suite.committee.ID))
}

func (suite *AssignmentRepositoryTestSuite) TestDeletingFacultyCascades() {
	member := suite.seat("AO")

	suite.NoError(suite.faculty.Delete(member.Email))

	fills, err := suite.repo.CountFilledByDivision(suite.committee.ID)
	suite.NoError(err)
	suite.Empty(fills)
}

func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
