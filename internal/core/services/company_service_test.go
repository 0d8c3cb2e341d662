package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/core/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) ListRecords(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) PaginateRecords(ctx context.Context, page, size int) ([]domain.Company, int64, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Company), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyRepository) FindLatestRecords(ctx context.Context, n int) ([]domain.Company, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) CountDeactivated(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) SaveRecord(ctx context.Context, record domain.Company) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindRecordByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateRecord(ctx context.Context, record domain.Company) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCompanyRepository) SetRecordActive(ctx context.Context, id string, active bool, now time.Time, updatedBy string) error {
	args := m.Called(ctx, id, active, now, updatedBy)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteRecord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) CountDependents(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCompanyRepository
	mockSettings *MockSettingReader
	service      portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.mockSettings = new(MockSettingReader)
	suite.service = services.NewCompanyService(suite.mockRepo, suite.mockSettings)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCompanyRequest{
		Name:  "Acme GmbH",
		Email: "office@acme.example",
		City:  "Berlin",
	}

	suite.mockRepo.On("SaveRecord", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == req.Name && c.Email == req.Email && c.IsActive &&
			c.CreatedBy == creatorUserID
	})).Return(nil).Once()

	company, err := suite.service.Create(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(company)
	suite.NotEmpty(company.CompanyID)
	suite.True(company.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_BlockedByDeals() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockRepo.On("CountDependents", ctx, companyID).Return(int64(3), nil).Once()

	err := suite.service.Delete(ctx, companyID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDependencyConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteRecord", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockRepo.On("CountDependents", ctx, companyID).Return(int64(0), nil).Once()
	suite.mockRepo.On("DeleteRecord", ctx, companyID).Return(nil).Once()

	suite.Require().NoError(suite.service.Delete(ctx, companyID, uuid.NewString()))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockRepo.On("FindRecordByID", ctx, companyID).Return(nil, apperrors.ErrNotFound).Once()

	company, err := suite.service.GetByID(ctx, companyID)

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
