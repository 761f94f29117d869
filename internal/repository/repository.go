package repository

import (
	"context"
	"errors"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

// Store-level atomicity outcomes. The multi-step checks behind these run
// inside serializable transactions; the sentinels let services translate the
// outcome without inspecting driver errors.
var (
	ErrLeaseOverlap   = errors.New("overlapping lease exists for unit")
	ErrPaymentCeiling = errors.New("payments would exceed invoice amount")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Company, int64, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Property, int64, error)
	ListIDsByManager(ctx context.Context, managerID string) ([]string, error)
}

type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) (*domain.Unit, error)
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Unit, int64, error)
	HasDuplicate(ctx context.Context, name string, floor int, propertyID, excludeID string) (bool, error)
	HasOccupant(ctx context.Context, unitID string) (bool, error)
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Tenant, int64, error)
}

type LeaseRepository interface {
	// CreateChecked inserts the lease only if no existing lease for the unit
	// overlaps its closed date interval; the check and insert share one
	// serializable transaction. Returns ErrLeaseOverlap on conflict.
	CreateChecked(ctx context.Context, lease *domain.Lease) error
	// UpdateChecked saves the lease; when checkOverlap is set the overlap
	// check runs in the same transaction, excluding the lease's own id.
	UpdateChecked(ctx context.Context, lease *domain.Lease, checkOverlap bool) error
	GetByID(ctx context.Context, id string) (*domain.Lease, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Lease, int64, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Invoice, int64, error)
}

type PaymentRepository interface {
	// CreateChecked inserts the payment only if the invoice's existing
	// payments plus the new amount stay within the invoice amount; the sum
	// and insert share one serializable transaction. Returns
	// ErrPaymentCeiling on breach.
	CreateChecked(ctx context.Context, payment *domain.Payment, invoiceAmount float64) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Payment, int64, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, req *domain.MaintenanceRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.MaintenanceRequest, int64, error)
}

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error)
	List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.ActivityLog, int64, error)
	ListByEntity(ctx context.Context, scope authz.Scope, entity, entityID string) ([]domain.ActivityLog, error)
	ListByUser(ctx context.Context, scope authz.Scope, userID string) ([]domain.ActivityLog, error)
}

type Repository interface {
	User() UserRepository
	Company() CompanyRepository
	Property() PropertyRepository
	Unit() UnitRepository
	Tenant() TenantRepository
	Lease() LeaseRepository
	Invoice() InvoiceRepository
	Payment() PaymentRepository
	Maintenance() MaintenanceRepository
	ActivityLog() ActivityLogRepository
}
