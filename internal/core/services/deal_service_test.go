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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DealRepository ---
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) ListRecords(ctx context.Context) ([]domain.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealRepository) PaginateRecords(ctx context.Context, page, size int) ([]domain.Deal, int64, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Deal), args.Get(1).(int64), args.Error(2)
}

func (m *MockDealRepository) FindLatestRecords(ctx context.Context, n int) ([]domain.Deal, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealRepository) CountDeactivated(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealRepository) SaveRecord(ctx context.Context, record domain.Deal) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDealRepository) FindRecordByID(ctx context.Context, id string) (*domain.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealRepository) UpdateRecord(ctx context.Context, record domain.Deal) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDealRepository) SetRecordActive(ctx context.Context, id string, active bool, now time.Time, updatedBy string) error {
	args := m.Called(ctx, id, active, now, updatedBy)
	return args.Error(0)
}

func (m *MockDealRepository) DeleteRecord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDealRepository) CountDependents(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealRepository) SaveDealTerm(ctx context.Context, term domain.DealTerm) error {
	args := m.Called(ctx, term)
	return args.Error(0)
}

func (m *MockDealRepository) FindDealTermByID(ctx context.Context, termID string) (*domain.DealTerm, error) {
	args := m.Called(ctx, termID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DealTerm), args.Error(1)
}

func (m *MockDealRepository) ListDealTerms(ctx context.Context, dealID string) ([]domain.DealTerm, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DealTerm), args.Error(1)
}

func (m *MockDealRepository) DeleteDealTerm(ctx context.Context, termID string) error {
	args := m.Called(ctx, termID)
	return args.Error(0)
}

// --- Mock SettingReader ---
type MockSettingReader struct {
	mock.Mock
}

func (m *MockSettingReader) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

// --- Test Suite ---
type DealServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockDealRepository
	mockSettings *MockSettingReader
	service      portssvc.DealSvcFacade
}

func (suite *DealServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDealRepository)
	suite.mockSettings = new(MockSettingReader)
	suite.service = services.NewDealService(suite.mockRepo, suite.mockSettings)
}

func (suite *DealServiceTestSuite) TestCreateDeal_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	companyID := uuid.NewString()
	start := time.Now()
	req := dto.CreateDealRequest{
		Name:      "Annual license",
		Amount:    decimal.NewFromInt(5000),
		StartTime: start,
		EndTime:   start.AddDate(1, 0, 0),
		CompanyID: companyID,
	}

	suite.mockRepo.On("SaveRecord", ctx, mock.MatchedBy(func(d domain.Deal) bool {
		return d.Name == req.Name && d.CompanyID == companyID && d.IsActive &&
			d.CreatedBy == creatorUserID && d.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	deal, err := suite.service.Create(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(deal)
	suite.NotEmpty(deal.DealID)
	suite.True(deal.IsActive)
	suite.Equal(creatorUserID, deal.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestCreateDeal_InactiveOnRequest() {
	ctx := context.Background()
	inactive := false
	start := time.Now()
	req := dto.CreateDealRequest{
		Name:      "Paused engagement",
		StartTime: start,
		EndTime:   start.AddDate(0, 6, 0),
		CompanyID: uuid.NewString(),
		IsActive:  &inactive,
	}

	suite.mockRepo.On("SaveRecord", ctx, mock.MatchedBy(func(d domain.Deal) bool {
		return !d.IsActive
	})).Return(nil).Once()

	deal, err := suite.service.Create(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(deal.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestCreateDeal_EndBeforeStart() {
	ctx := context.Background()
	start := time.Now()
	req := dto.CreateDealRequest{
		Name:      "Backwards deal",
		StartTime: start,
		EndTime:   start.AddDate(0, 0, -1),
		CompanyID: uuid.NewString(),
	}

	deal, err := suite.service.Create(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(deal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *DealServiceTestSuite) TestUpdateDeal_PartialFields() {
	ctx := context.Background()
	dealID := uuid.NewString()
	updaterUserID := uuid.NewString()
	start := time.Now()
	existing := &domain.Deal{
		DealID:    dealID,
		Name:      "Old name",
		Amount:    decimal.NewFromInt(100),
		StartTime: start,
		EndTime:   start.AddDate(1, 0, 0),
		CompanyID: uuid.NewString(),
		IsActive:  true,
	}
	newName := "New name"

	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(d domain.Deal) bool {
		return d.Name == newName && d.Amount.Equal(decimal.NewFromInt(100)) &&
			d.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	updated, err := suite.service.Update(ctx, dealID, dto.UpdateDealRequest{Name: &newName}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestUpdateDeal_NotFound() {
	ctx := context.Background()
	dealID := uuid.NewString()

	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.Update(ctx, dealID, dto.UpdateDealRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything)
}

func (suite *DealServiceTestSuite) TestToggleActive_Flips() {
	ctx := context.Background()
	dealID := uuid.NewString()
	updaterUserID := uuid.NewString()
	active := &domain.Deal{DealID: dealID, IsActive: true}
	deactivated := &domain.Deal{DealID: dealID, IsActive: false}

	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(active, nil).Once()
	suite.mockRepo.On("SetRecordActive", ctx, dealID, false, mock.AnythingOfType("time.Time"), updaterUserID).Return(nil).Once()
	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(deactivated, nil).Once()

	updated, err := suite.service.ToggleActive(ctx, dealID, updaterUserID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestToggleActive_DoubleFlipRestores() {
	ctx := context.Background()
	dealID := uuid.NewString()
	updaterUserID := uuid.NewString()
	active := &domain.Deal{DealID: dealID, IsActive: true}
	deactivated := &domain.Deal{DealID: dealID, IsActive: false}

	// First flip: true -> false.
	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(active, nil).Once()
	suite.mockRepo.On("SetRecordActive", ctx, dealID, false, mock.AnythingOfType("time.Time"), updaterUserID).Return(nil).Once()
	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(deactivated, nil).Once()

	// Second flip: false -> true.
	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(deactivated, nil).Once()
	suite.mockRepo.On("SetRecordActive", ctx, dealID, true, mock.AnythingOfType("time.Time"), updaterUserID).Return(nil).Once()
	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(active, nil).Once()

	first, err := suite.service.ToggleActive(ctx, dealID, updaterUserID)
	suite.Require().NoError(err)
	suite.False(first.IsActive)

	second, err := suite.service.ToggleActive(ctx, dealID, updaterUserID)
	suite.Require().NoError(err)
	suite.True(second.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestDeleteDeal_BlockedByTerms() {
	ctx := context.Background()
	dealID := uuid.NewString()

	suite.mockRepo.On("CountDependents", ctx, dealID).Return(int64(2), nil).Once()

	err := suite.service.Delete(ctx, dealID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDependencyConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteRecord", mock.Anything, mock.Anything)
}

func (suite *DealServiceTestSuite) TestDeleteDeal_AfterTermsRemoved() {
	ctx := context.Background()
	dealID := uuid.NewString()
	termID := uuid.NewString()
	deleterUserID := uuid.NewString()

	// First attempt is blocked by the remaining term.
	suite.mockRepo.On("CountDependents", ctx, dealID).Return(int64(1), nil).Once()
	err := suite.service.Delete(ctx, dealID, deleterUserID)
	suite.Require().ErrorIs(err, apperrors.ErrDependencyConflict)

	// Removing the term unblocks the deal.
	suite.mockRepo.On("FindDealTermByID", ctx, termID).
		Return(&domain.DealTerm{TermID: termID, DealID: dealID}, nil).Once()
	suite.mockRepo.On("DeleteDealTerm", ctx, termID).Return(nil).Once()
	suite.Require().NoError(suite.service.DeleteDealTerm(ctx, termID, deleterUserID))

	suite.mockRepo.On("CountDependents", ctx, dealID).Return(int64(0), nil).Once()
	suite.mockRepo.On("DeleteRecord", ctx, dealID).Return(nil).Once()
	suite.Require().NoError(suite.service.Delete(ctx, dealID, deleterUserID))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestDeleteDealTerm_NotFound() {
	ctx := context.Background()
	termID := uuid.NewString()

	suite.mockRepo.On("FindDealTermByID", ctx, termID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteDealTerm(ctx, termID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteDealTerm", mock.Anything, mock.Anything)
}

func (suite *DealServiceTestSuite) TestCreateDealTerm_DealMissing() {
	ctx := context.Background()
	dealID := uuid.NewString()

	suite.mockRepo.On("FindRecordByID", ctx, dealID).Return(nil, apperrors.ErrNotFound).Once()

	term, err := suite.service.CreateDealTerm(ctx, dealID, dto.CreateDealTermRequest{Body: "Net 30"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(term)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDealTerm", mock.Anything, mock.Anything)
}

func (suite *DealServiceTestSuite) TestPaginate_UsesSettingValue() {
	ctx := context.Background()

	suite.mockSettings.On("FindSettingByKey", ctx, domain.SettingPaginationSize).
		Return(&domain.Setting{Key: domain.SettingPaginationSize, Value: "3"}, nil).Once()
	suite.mockRepo.On("PaginateRecords", ctx, 2, 3).
		Return([]domain.Deal{{DealID: uuid.NewString()}}, int64(7), nil).Once()

	page, err := suite.service.Paginate(ctx, 2)

	suite.Require().NoError(err)
	suite.Equal(3, page.PageSize)
	suite.Equal(2, page.Page)
	suite.Equal(int64(7), page.TotalCount)
	suite.Equal(3, page.TotalPages)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSettings.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestPaginate_FallbackOnBadSetting() {
	ctx := context.Background()

	suite.mockSettings.On("FindSettingByKey", ctx, domain.SettingPaginationSize).
		Return(&domain.Setting{Key: domain.SettingPaginationSize, Value: "not-a-number"}, nil).Once()
	suite.mockRepo.On("PaginateRecords", ctx, 1, domain.DefaultPaginationSize).
		Return([]domain.Deal{}, int64(0), nil).Once()

	page, err := suite.service.Paginate(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultPaginationSize, page.PageSize)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DealServiceTestSuite) TestList_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListRecords", ctx).Return(nil, expectedErr).Once()

	records, err := suite.service.List(ctx)

	suite.Require().Error(err)
	suite.Nil(records)
	suite.ErrorIs(err, expectedErr)
}

func TestDealServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DealServiceTestSuite))
}
