package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/craftscrm/crm_backend/internal/apperrors"
	"github.com/craftscrm/crm_backend/internal/core/domain"
	portssvc "github.com/craftscrm/crm_backend/internal/core/ports/services"
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/craftscrm/crm_backend/internal/handlers"
	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/craftscrm/crm_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) Create(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) Update(ctx context.Context, id string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.Company, error) {
	args := m.Called(ctx, id, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) ToggleActive(ctx context.Context, id string, updaterUserID string) (*domain.Company, error) {
	args := m.Called(ctx, id, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) Delete(ctx context.Context, id string, deleterUserID string) error {
	args := m.Called(ctx, id, deleterUserID)
	return args.Error(0)
}

func (m *MockCompanyService) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) List(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyService) Paginate(ctx context.Context, page int) (*dto.Page[domain.Company], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Page[domain.Company]), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock SystemLogService ---
type MockSystemLogService struct {
	mock.Mock
}

func (m *MockSystemLogService) Append(ctx context.Context, message string, statusCode int, actorID string) {
	m.Called(ctx, message, statusCode, actorID)
}

func (m *MockSystemLogService) FormatAll(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSystemLogService) Paginate(ctx context.Context, page int) (*dto.Page[domain.SystemLog], error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Page[domain.SystemLog]), args.Error(1)
}

var _ portssvc.SystemLogSvcFacade = (*MockSystemLogService)(nil)

// --- Test Suite ---
type CompanyHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCompanySvc *MockCompanyService
	mockSystemLog  *MockSystemLogService
	jwtSecret      string
}

func (suite *CompanyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "crm-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCompanySvc = new(MockCompanyService)
	suite.mockSystemLog = new(MockSystemLogService)

	cfg := &config.Config{
		JWTSecret:              suite.jwtSecret,
		IsProduction:           true, // skip swagger registration
		AuthRateLimitPerMinute: 100,
	}
	container := &portssvc.ServiceContainer{
		Company:   suite.mockCompanySvc,
		SystemLog: suite.mockSystemLog,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *CompanyHandlerTestSuite) doRequest(method, path string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CompanyHandlerTestSuite) TestStoreCompany_AuditsOnceAndRespondsWithFlashKey() {
	userID := uuid.NewString()
	req := dto.CreateCompanyRequest{Name: "Acme GmbH"}
	created := &domain.Company{CompanyID: uuid.NewString(), Name: "Acme GmbH", IsActive: true}

	suite.mockCompanySvc.On("Create", mock.Anything, mock.MatchedBy(func(r dto.CreateCompanyRequest) bool {
		return r.Name == req.Name
	}), userID).Return(created, nil).Once()
	suite.mockSystemLog.On("Append", mock.Anything, "Company created", domain.LogCodeChanged, userID).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/companies", req, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var outcome dto.WriteOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	suite.Equal(messages.CompanyStore, outcome.MessageSuccess)
	suite.Empty(outcome.MessageError)
	suite.Equal("/companies", outcome.RedirectTo)

	suite.mockCompanySvc.AssertExpectations(suite.T())
	suite.mockSystemLog.AssertExpectations(suite.T())
	suite.mockSystemLog.AssertNumberOfCalls(suite.T(), "Append", 1)
}

func (suite *CompanyHandlerTestSuite) TestStoreCompany_FailureSkipsAudit() {
	userID := uuid.NewString()
	req := dto.CreateCompanyRequest{Name: "Broken Co"}

	suite.mockCompanySvc.On("Create", mock.Anything, mock.Anything, userID).
		Return(nil, assert.AnError).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/companies", req, userID)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var outcome dto.WriteOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	suite.Equal(messages.GenericError, outcome.MessageError)
	suite.Empty(outcome.MessageSuccess)

	suite.mockSystemLog.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyHandlerTestSuite) TestStoreCompany_InvalidBodySkipsCommand() {
	userID := uuid.NewString()

	// Missing required name field.
	w := suite.doRequest(http.MethodPost, "/api/v1/companies", map[string]string{"city": "Berlin"}, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	var outcome dto.WriteOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	suite.Equal(messages.InvalidInput, outcome.MessageError)

	suite.mockCompanySvc.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
	suite.mockSystemLog.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany_DependencyConflict() {
	userID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockCompanySvc.On("Delete", mock.Anything, companyID, userID).
		Return(apperrors.NewDependencyConflictError("company still has deals")).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/companies/"+companyID, nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
	var outcome dto.WriteOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	suite.Equal(messages.CompanyFirstDeleteDeals, outcome.MessageError)

	suite.mockSystemLog.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany_Success() {
	userID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockCompanySvc.On("Delete", mock.Anything, companyID, userID).Return(nil).Once()
	suite.mockSystemLog.On("Append", mock.Anything, "Company deleted", domain.LogCodeChanged, userID).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/companies/"+companyID, nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var outcome dto.WriteOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	suite.Equal(messages.CompanyDelete, outcome.MessageSuccess)

	suite.mockSystemLog.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_NotFound() {
	userID := uuid.NewString()
	companyID := uuid.NewString()
	name := "Renamed Co"

	suite.mockCompanySvc.On("Update", mock.Anything, companyID, mock.Anything, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/companies/"+companyID, dto.UpdateCompanyRequest{Name: &name}, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	var outcome dto.WriteOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	suite.Equal(messages.RecordNotFound, outcome.MessageError)
}

func (suite *CompanyHandlerTestSuite) TestListCompanies_NoToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCompanySvc.AssertNotCalled(suite.T(), "List", mock.Anything)
}

func (suite *CompanyHandlerTestSuite) TestPaginateCompanies_PassesPage() {
	userID := uuid.NewString()
	page := &dto.Page[domain.Company]{Items: []domain.Company{}, Page: 3, PageSize: 10}

	suite.mockCompanySvc.On("Paginate", mock.Anything, 3).Return(page, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/companies/paginate?page=3", nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCompanySvc.AssertExpectations(suite.T())
}

func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
