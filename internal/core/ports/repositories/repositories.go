package repositories

import (
	"context"
	"time"

	"github.com/craftscrm/crm_backend/internal/core/domain"
)

// RecordQueries is the read-only projection surface shared by every entity
// repository. None of these methods has side effects.
type RecordQueries[T any] interface {
	// ListRecords returns all records ascending by creation time.
	ListRecords(ctx context.Context) ([]T, error)
	// PaginateRecords returns one page ordered newest first, plus the total
	// record count. The caller resolves the page size; it is never cached here.
	PaginateRecords(ctx context.Context, page, size int) ([]T, int64, error)
	// FindLatestRecords returns the n most recently created records.
	FindLatestRecords(ctx context.Context, n int) ([]T, error)
	CountAll(ctx context.Context) (int64, error)
	CountDeactivated(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// RecordStore is the full persistence surface for one entity table.
type RecordStore[T any] interface {
	RecordQueries[T]
	SaveRecord(ctx context.Context, record T) error
	FindRecordByID(ctx context.Context, id string) (*T, error)
	// UpdateRecord persists the full record. Returns apperrors.ErrNotFound when
	// the row vanished between lookup and write.
	UpdateRecord(ctx context.Context, record T) error
	// SetRecordActive flips the is_active flag without touching other fields.
	SetRecordActive(ctx context.Context, id string, active bool, now time.Time, updatedBy string) error
	DeleteRecord(ctx context.Context, id string) error
	// CountDependents returns the number of child records still referencing id.
	// A record with dependents cannot be deleted.
	CountDependents(ctx context.Context, id string) (int64, error)
}

// CompanyRepository persists companies. Dependents are the company's deals.
type CompanyRepository interface {
	RecordStore[domain.Company]
}

// DealRepository persists deals and their terms. Dependents are deal terms.
type DealRepository interface {
	RecordStore[domain.Deal]
	SaveDealTerm(ctx context.Context, term domain.DealTerm) error
	FindDealTermByID(ctx context.Context, termID string) (*domain.DealTerm, error)
	ListDealTerms(ctx context.Context, dealID string) ([]domain.DealTerm, error)
	DeleteDealTerm(ctx context.Context, termID string) error
}

// FinanceRepository persists finance records.
type FinanceRepository interface {
	RecordStore[domain.Finance]
}

// SaleRepository persists sales.
type SaleRepository interface {
	RecordStore[domain.Sale]
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	RecordStore[domain.Product]
}

// TaskRepository persists tasks.
type TaskRepository interface {
	RecordStore[domain.Task]
}

// SettingReader is the read side of the settings store; commands that only
// need the pagination size depend on this narrow interface.
type SettingReader interface {
	FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error)
}

// SettingRepository persists key-value settings.
type SettingRepository interface {
	SettingReader
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	// UpsertSettings writes every pair in one transaction; either all submitted
	// settings land or none do.
	UpsertSettings(ctx context.Context, settings []domain.Setting) error
}

// SystemLogRepository is the append-only action history. There is deliberately
// no update or delete.
type SystemLogRepository interface {
	AppendLog(ctx context.Context, entry domain.SystemLog) error
	ListLogs(ctx context.Context) ([]domain.SystemLog, error)
	PaginateLogs(ctx context.Context, page, size int) ([]domain.SystemLog, int64, error)
}

// UserRepository persists admin users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	CompanyRepo   CompanyRepository
	DealRepo      DealRepository
	FinanceRepo   FinanceRepository
	SaleRepo      SaleRepository
	ProductRepo   ProductRepository
	TaskRepo      TaskRepository
	SettingRepo   SettingRepository
	SystemLogRepo SystemLogRepository
	UserRepo      UserRepository
}
