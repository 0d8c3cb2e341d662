package services

import (
	"context"
	"time"

	"github.com/craftscrm/crm_backend/internal/core/domain"
	"github.com/craftscrm/crm_backend/internal/dto"
)

// RecordSvc is the command/query surface shared by every CRUD entity: one
// method per write command plus the read projections. C and U are the
// entity's create/update request DTOs.
type RecordSvc[T any, C any, U any] interface {
	// Create persists a new record with a fresh id; is_active defaults true.
	Create(ctx context.Context, req C, creatorUserID string) (*T, error)
	// Update applies the partial request to the record; unset fields are untouched.
	Update(ctx context.Context, id string, req U, updaterUserID string) (*T, error)
	// ToggleActive flips the record's is_active flag.
	ToggleActive(ctx context.Context, id string, updaterUserID string) (*T, error)
	// Delete removes the record unless dependent children still reference it,
	// in which case it fails with apperrors.ErrDependencyConflict.
	Delete(ctx context.Context, id string, deleterUserID string) error

	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]T, error)
	// Paginate resolves the page size from the pagination_size setting on every
	// call; a changed setting takes effect on the very next page request.
	Paginate(ctx context.Context, page int) (*dto.Page[T], error)
}

// CompanySvcFacade manages companies.
type CompanySvcFacade interface {
	RecordSvc[domain.Company, dto.CreateCompanyRequest, dto.UpdateCompanyRequest]
}

// DealSvcFacade manages deals and their terms.
type DealSvcFacade interface {
	RecordSvc[domain.Deal, dto.CreateDealRequest, dto.UpdateDealRequest]
	CreateDealTerm(ctx context.Context, dealID string, req dto.CreateDealTermRequest, creatorUserID string) (*domain.DealTerm, error)
	ListDealTerms(ctx context.Context, dealID string) ([]domain.DealTerm, error)
	DeleteDealTerm(ctx context.Context, termID string, deleterUserID string) error
}

// FinanceSvcFacade manages finance records.
type FinanceSvcFacade interface {
	RecordSvc[domain.Finance, dto.CreateFinanceRequest, dto.UpdateFinanceRequest]
}

// SaleSvcFacade manages sales.
type SaleSvcFacade interface {
	RecordSvc[domain.Sale, dto.CreateSaleRequest, dto.UpdateSaleRequest]
}

// ProductSvcFacade manages catalog products.
type ProductSvcFacade interface {
	RecordSvc[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
}

// TaskSvcFacade manages tasks.
type TaskSvcFacade interface {
	RecordSvc[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
}

// SystemLogSvcFacade is the audit logger. Append is best-effort: failures are
// logged through the request logger and never fail the caller's operation.
type SystemLogSvcFacade interface {
	Append(ctx context.Context, message string, statusCode int, actorID string)
	FormatAll(ctx context.Context) ([]string, error)
	Paginate(ctx context.Context, page int) (*dto.Page[domain.SystemLog], error)
}

// SettingSvcFacade manages the key-value settings store.
type SettingSvcFacade interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	GetValue(ctx context.Context, key string) (string, error)
	// PaginationSize resolves the pagination_size setting, falling back to the
	// default when the key is missing or not a positive integer.
	PaginationSize(ctx context.Context) int
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) error
}

// DashboardSvcFacade aggregates the dashboard counters.
type DashboardSvcFacade interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummary, error)
}

// UserSvcFacade manages admin users and credential checks.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateUserProfile applies the partial request to the user's own profile.
	UpdateUserProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	// DeactivateUser soft deletes the user; every lookup excludes deleted rows,
	// so outstanding refresh tokens stop resolving immediately.
	DeactivateUser(ctx context.Context, userID string, deleterUserID string) error
	// AuthenticateUser verifies credentials, returning apperrors.ErrUnauthorized
	// on mismatch.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
	// FindOrCreateOAuthUser resolves a user for an external identity, creating
	// one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, email, name string) (*domain.User, error)
	StoreRefreshToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and validates tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	AuthCodeURL(state string) string
	// ExchangeAndVerify trades the authorization code for tokens and validates
	// the returned ID token, yielding the user's email and display name.
	ExchangeAndVerify(ctx context.Context, code string) (email string, name string, err error)
}

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Company     CompanySvcFacade
	Deal        DealSvcFacade
	Finance     FinanceSvcFacade
	Sale        SaleSvcFacade
	Product     ProductSvcFacade
	Task        TaskSvcFacade
	Setting     SettingSvcFacade
	SystemLog   SystemLogSvcFacade
	Dashboard   DashboardSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
