package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SystemLogRepository ---
type MockSystemLogRepository struct {
	mock.Mock
}

func (m *MockSystemLogRepository) AppendLog(ctx context.Context, entry domain.SystemLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSystemLogRepository) ListLogs(ctx context.Context) ([]domain.SystemLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SystemLog), args.Error(1)
}

func (m *MockSystemLogRepository) PaginateLogs(ctx context.Context, page, size int) ([]domain.SystemLog, int64, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.SystemLog), args.Get(1).(int64), args.Error(2)
}

// --- Test Suite ---
type SystemLogServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockSystemLogRepository
	mockSettings *MockSettingReader
	service      portssvc.SystemLogSvcFacade
}

func (suite *SystemLogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSystemLogRepository)
	suite.mockSettings = new(MockSettingReader)
	suite.service = services.NewSystemLogService(suite.mockRepo, suite.mockSettings)
}

func (suite *SystemLogServiceTestSuite) TestAppend_RecordsEntry() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockRepo.On("AppendLog", ctx, mock.MatchedBy(func(e domain.SystemLog) bool {
		return e.Message == "Deal created" && e.StatusCode == domain.LogCodeChanged &&
			e.ActorID == actorID && e.LogID != "" && !e.CreatedAt.IsZero()
	})).Return(nil).Once()

	suite.service.Append(ctx, "Deal created", domain.LogCodeChanged, actorID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SystemLogServiceTestSuite) TestAppend_SwallowsRepoError() {
	ctx := context.Background()

	suite.mockRepo.On("AppendLog", ctx, mock.AnythingOfType("domain.SystemLog")).
		Return(assert.AnError).Once()

	// Must not panic or surface the failure to the caller.
	suite.service.Append(ctx, "Company updated", domain.LogCodeChanged, uuid.NewString())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SystemLogServiceTestSuite) TestFormatAll_FormatsNewestFirst() {
	ctx := context.Background()
	actorID := "4f1c2d3e"
	created := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	entries := []domain.SystemLog{
		{LogID: uuid.NewString(), Message: "Task deleted", StatusCode: 201, ActorID: actorID, CreatedAt: created},
	}

	suite.mockRepo.On("ListLogs", ctx).Return(entries, nil).Once()

	formatted, err := suite.service.FormatAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(formatted, 1)
	suite.Equal("2026-05-12 09:30 [201] Task deleted (actor: 4f1c2d3e)", formatted[0])
}

func (suite *SystemLogServiceTestSuite) TestPaginate_UsesSettingValue() {
	ctx := context.Background()

	suite.mockSettings.On("FindSettingByKey", ctx, domain.SettingPaginationSize).
		Return(&domain.Setting{Key: domain.SettingPaginationSize, Value: "5"}, nil).Once()
	suite.mockRepo.On("PaginateLogs", ctx, 1, 5).
		Return([]domain.SystemLog{}, int64(12), nil).Once()

	page, err := suite.service.Paginate(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(5, page.PageSize)
	suite.Equal(int64(12), page.TotalCount)
	suite.Equal(3, page.TotalPages)
}

func TestSystemLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SystemLogServiceTestSuite))
}
