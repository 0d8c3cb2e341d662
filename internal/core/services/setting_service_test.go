package services_test

import (
	"context"
	"testing"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/core/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingRepository ---
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertSettings(ctx context.Context, settings []domain.Setting) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Suite ---
type SettingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingRepository
	service  portssvc.SettingSvcFacade
}

func (suite *SettingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingRepository)
	suite.service = services.NewSettingService(suite.mockRepo)
}

func (suite *SettingServiceTestSuite) TestUpdateSettings_UpsertsEachPair() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	req := dto.UpdateSettingsRequest{Settings: []dto.SettingInput{
		{Key: domain.SettingPaginationSize, Value: "25"},
		{Key: domain.SettingCurrency, Value: "EUR"},
	}}

	// Both pairs go to the store in a single batch write.
	suite.mockRepo.On("UpsertSettings", ctx, mock.MatchedBy(func(settings []domain.Setting) bool {
		if len(settings) != 2 {
			return false
		}
		return settings[0].Key == domain.SettingPaginationSize && settings[0].Value == "25" &&
			settings[0].LastUpdatedBy == updaterUserID &&
			settings[1].Key == domain.SettingCurrency && settings[1].Value == "EUR"
	})).Return(nil).Once()

	err := suite.service.UpdateSettings(ctx, req, updaterUserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingServiceTestSuite) TestPaginationSize_ReadsSetting() {
	ctx := context.Background()

	suite.mockRepo.On("FindSettingByKey", ctx, domain.SettingPaginationSize).
		Return(&domain.Setting{Key: domain.SettingPaginationSize, Value: "50"}, nil).Once()

	suite.Equal(50, suite.service.PaginationSize(ctx))
}

func (suite *SettingServiceTestSuite) TestPaginationSize_DefaultWhenMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindSettingByKey", ctx, domain.SettingPaginationSize).
		Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal(domain.DefaultPaginationSize, suite.service.PaginationSize(ctx))
}

func (suite *SettingServiceTestSuite) TestGetValue_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindSettingByKey", ctx, "missing_key").
		Return(nil, apperrors.ErrNotFound).Once()

	value, err := suite.service.GetValue(ctx, "missing_key")

	suite.Require().Error(err)
	suite.Empty(value)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingServiceTestSuite))
}
