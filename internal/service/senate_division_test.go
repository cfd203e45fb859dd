package service_test

import (
	"errors"
	"testing"

	"committee-tracker-backend/internal/database/models"
	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/mocks"
	"committee-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SenateDivisionServiceTestSuite defines the test suite for SenateDivisionService
type SenateDivisionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockSenateDivisionRepositoryInterface
	service  *service.SenateDivisionService
}

func (suite *SenateDivisionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSenateDivisionRepositoryInterface(suite.ctrl)
	suite.service = service.NewSenateDivisionService(suite.mockRepo, validator.New())
}

func (suite *SenateDivisionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SenateDivisionServiceTestSuite) TestCreate() {
	req := &service.CreateSenateDivisionRequest{Code: "AO", Name: "Arts Division"}

	suite.mockRepo.EXPECT().GetByCode("AO").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.service.Create(req)

	suite.Require().NoError(err)
	suite.Equal("AO", response.Code)
	suite.Equal("Arts Division", response.Name)
}

func (suite *SenateDivisionServiceTestSuite) TestCreateDuplicate() {
	suite.mockRepo.EXPECT().GetByCode("AO").Return(&models.SenateDivision{Code: "AO"}, nil)

	_, err := suite.service.Create(&service.CreateSenateDivisionRequest{Code: "AO", Name: "Arts"})
	suite.ErrorIs(err, apperrors.ErrSenateDivisionExists)
}

func (suite *SenateDivisionServiceTestSuite) TestCreateRaceLostToUniqueIndex() {
	suite.mockRepo.EXPECT().GetByCode("AO").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.service.Create(&service.CreateSenateDivisionRequest{Code: "AO", Name: "Arts"})
	suite.ErrorIs(err, apperrors.ErrSenateDivisionExists)
}

func (suite *SenateDivisionServiceTestSuite) TestCreateValidation() {
	_, err := suite.service.Create(&service.CreateSenateDivisionRequest{Code: "TOOLONGCODE1", Name: "Arts"})

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Equal("code", validationErr.Field)
}

func (suite *SenateDivisionServiceTestSuite) TestGetByCodeNotFound() {
	suite.mockRepo.EXPECT().GetByCode("ZZ").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByCode("ZZ")
	suite.ErrorIs(err, apperrors.ErrSenateDivisionNotFound)
}

func (suite *SenateDivisionServiceTestSuite) TestGetAllPagination() {
	suite.mockRepo.EXPECT().GetAll(20, 20).Return([]models.SenateDivision{{Code: "SC"}}, int64(21), nil)

	response, err := suite.service.GetAll(2, 0)

	suite.Require().NoError(err)
	suite.Equal(2, response.Page)
	suite.Equal(20, response.PageSize)
	suite.Equal(int64(21), response.Total)
	suite.Len(response.SenateDivisions, 1)
}

func (suite *SenateDivisionServiceTestSuite) TestUpdate() {
	division := &models.SenateDivision{Code: "AO", Name: "Arts"}
	suite.mockRepo.EXPECT().GetByCode("AO").Return(division, nil)
	suite.mockRepo.EXPECT().Update(division).Return(nil)

	response, err := suite.service.Update("AO", &service.UpdateSenateDivisionRequest{Name: "Arts and Humanities"})

	suite.Require().NoError(err)
	suite.Equal("Arts and Humanities", response.Name)
}

func (suite *SenateDivisionServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().Delete("AO").Return(nil)
	suite.NoError(suite.service.Delete("AO"))

	suite.mockRepo.EXPECT().Delete("ZZ").Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.Delete("ZZ"), apperrors.ErrSenateDivisionNotFound)

	suite.mockRepo.EXPECT().Delete("SC").Return(&pgconn.PgError{Code: "23503"})
	suite.ErrorIs(suite.service.Delete("SC"), apperrors.ErrSenateDivisionInUse)

	boom := errors.New("connection refused")
	suite.mockRepo.EXPECT().Delete("GS").Return(boom)
	suite.ErrorIs(suite.service.Delete("GS"), boom)
}

func TestSenateDivisionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SenateDivisionServiceTestSuite))
}

// DepartmentServiceTestSuite defines the test suite for DepartmentService
type DepartmentServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockDepartmentRepositoryInterface
	service  *service.DepartmentService
}

func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.service = service.NewDepartmentService(suite.mockRepo, validator.New())
}

func (suite *DepartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentServiceTestSuite) TestCreate() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.service.Create(&service.CreateDepartmentRequest{Code: "CS", Name: "Computer Science"})

	suite.Require().NoError(err)
	suite.Equal("CS", response.Code)
}

func (suite *DepartmentServiceTestSuite) TestCreateDuplicate() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.service.Create(&service.CreateDepartmentRequest{Code: "CS", Name: "Computer Science"})
	suite.ErrorIs(err, apperrors.ErrDepartmentExists)
}

func (suite *DepartmentServiceTestSuite) TestUpdateNotFound() {
	suite.mockRepo.EXPECT().GetByCode("XX").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update("XX", &service.UpdateDepartmentRequest{Name: "Nothing"})
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

func (suite *DepartmentServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().Delete("CS").Return(nil)
	suite.NoError(suite.service.Delete("CS"))

	suite.mockRepo.EXPECT().Delete("XX").Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.service.Delete("XX"), apperrors.ErrDepartmentNotFound)
}

func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
