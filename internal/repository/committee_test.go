//go:build integration
// +build integration

package repository

import (
	"testing"

	"committee-tracker-backend/internal/database"
	"committee-tracker-backend/internal/database/models"
	"committee-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CommitteeRepositoryTestSuite tests the CommitteeRepository and SlotRequirementRepository
type CommitteeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CommitteeRepository
	requirements  *SlotRequirementRepository
	divisions     *SenateDivisionRepository
	factories     *testutils.FactorySet
}

func (suite *CommitteeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCommitteeRepository(suite.baseTestSuite.DB)
	suite.requirements = NewSlotRequirementRepository(suite.baseTestSuite.DB)
	suite.divisions = NewSenateDivisionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CommitteeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CommitteeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	for _, code := range []string{"AO", "SC"} {
		suite.Require().NoError(suite.divisions.Create(suite.factories.SenateDivision.WithCode(code)))
	}
}

func (suite *CommitteeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CommitteeRepositoryTestSuite) TestCreateWithRequirements() {
	committee := suite.factories.Committee.WithRequirements(3, map[string]int{"AO": 1, "SC": 2})
	suite.Require().NoError(suite.repo.Create(committee))
	suite.NotZero(committee.ID)

	rows, err := suite.requirements.GetByCommittee(committee.ID)
	suite.NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("AO", rows[0].SenateDivisionCode)
	suite.Equal(1, rows[0].SlotRequirements)
	suite.Equal("SC", rows[1].SenateDivisionCode)
	suite.Equal(2, rows[1].SlotRequirements)
}

func (suite *CommitteeRepositoryTestSuite) TestCreateDuplicateName() {
	first := suite.factories.Committee.WithSlots(1)
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.Committee.WithSlots(1)
	second.Name = first.Name
	suite.True(database.IsUniqueViolation(suite.repo.Create(second)))
}

func (suite *CommitteeRepositoryTestSuite) TestNegativeTotalSlotsRejectedByCheck() {
	err := suite.repo.Create(suite.factories.Committee.WithSlots(-1))
	suite.True(database.IsCheckViolation(err))
}

func (suite *CommitteeRepositoryTestSuite) TestGetByIDAndName() {
	committee := suite.factories.Committee.WithSlots(2)
	suite.Require().NoError(suite.repo.Create(committee))

	byID, err := suite.repo.GetByID(committee.ID)
	suite.NoError(err)
	suite.Equal(committee.Name, byID.Name)

	byName, err := suite.repo.GetByName(committee.Name)
	suite.NoError(err)
	suite.Equal(committee.ID, byName.ID)

	_, err = suite.repo.GetByID(committee.ID + 100)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *CommitteeRepositoryTestSuite) TestGetByIDForUpdateInTransaction() {
	committee := suite.factories.Committee.WithSlots(2)
	suite.Require().NoError(suite.repo.Create(committee))

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := NewCommitteeRepository(tx).GetByIDForUpdate(committee.ID)
		if err != nil {
			return err
		}
		suite.Equal(committee.ID, locked.ID)
		return nil
	})
	suite.NoError(err)
}

func (suite *CommitteeRepositoryTestSuite) TestUpdateTotalSlots() {
	committee := suite.factories.Committee.WithSlots(2)
	suite.Require().NoError(suite.repo.Create(committee))

	suite.NoError(suite.repo.UpdateTotalSlots(committee.ID, 5))
	found, err := suite.repo.GetByID(committee.ID)
	suite.NoError(err)
	suite.Equal(5, found.TotalSlots)

	suite.Equal(gorm.ErrRecordNotFound, suite.repo.UpdateTotalSlots(committee.ID+100, 1))
}

func (suite *CommitteeRepositoryTestSuite) TestRequirementUpsertAndDelete() {
	committee := suite.factories.Committee.WithSlots(4)
	suite.Require().NoError(suite.repo.Create(committee))

	row := &models.CommitteeSlotRequirement{CommitteeID: committee.ID, SenateDivisionCode: "AO", SlotRequirements: 1}
	suite.Require().NoError(suite.requirements.Create(row))
	suite.True(database.IsUniqueViolation(suite.requirements.Create(
		&models.CommitteeSlotRequirement{CommitteeID: committee.ID, SenateDivisionCode: "AO", SlotRequirements: 2},
	)))

	suite.NoError(suite.requirements.Upsert(
		&models.CommitteeSlotRequirement{CommitteeID: committee.ID, SenateDivisionCode: "AO", SlotRequirements: 3},
	))
	found, err := suite.requirements.Get(committee.ID, "AO")
	suite.NoError(err)
	suite.Equal(3, found.SlotRequirements)

	suite.NoError(suite.requirements.Delete(committee.ID, "AO"))
	suite.Equal(gorm.ErrRecordNotFound, suite.requirements.Delete(committee.ID, "AO"))
}

func (suite *CommitteeRepositoryTestSuite) TestRequirementUnknownDivision() {
	committee := suite.factories.Committee.WithSlots(1)
	suite.Require().NoError(suite.repo.Create(committee))

	err := suite.requirements.Create(
		&models.CommitteeSlotRequirement{CommitteeID: committee.ID, SenateDivisionCode: "ZZ", SlotRequirements: 1},
	)
	suite.True(database.IsForeignKeyViolation(err))
}

func (suite *CommitteeRepositoryTestSuite) TestDeleteCascadesRequirements() {
	committee := suite.factories.Committee.WithRequirements(2, map[string]int{"AO": 1})
	suite.Require().NoError(suite.repo.Create(committee))

	suite.NoError(suite.repo.Delete(committee.ID))

	rows, err := suite.requirements.GetByCommittee(committee.ID)
	suite.NoError(err)
	suite.Empty(rows)
}

func TestCommitteeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CommitteeRepositoryTestSuite))
}
