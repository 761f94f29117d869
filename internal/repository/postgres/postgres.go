package postgres

import (
	"github.com/rentdesk/property-management-api/internal/config"
	"github.com/rentdesk/property-management-api/internal/repository"
)

type postgresRepository struct {
	userRepo        repository.UserRepository
	companyRepo     repository.CompanyRepository
	propertyRepo    repository.PropertyRepository
	unitRepo        repository.UnitRepository
	tenantRepo      repository.TenantRepository
	leaseRepo       repository.LeaseRepository
	invoiceRepo     repository.InvoiceRepository
	paymentRepo     repository.PaymentRepository
	maintenanceRepo repository.MaintenanceRepository
	activityRepo    repository.ActivityLogRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	writer, reader := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		userRepo:        NewUserRepository(writer, reader),
		companyRepo:     NewCompanyRepository(writer, reader),
		propertyRepo:    NewPropertyRepository(writer, reader),
		unitRepo:        NewUnitRepository(writer, reader),
		tenantRepo:      NewTenantRepository(writer, reader),
		leaseRepo:       NewLeaseRepository(writer, reader),
		invoiceRepo:     NewInvoiceRepository(writer, reader),
		paymentRepo:     NewPaymentRepository(writer, reader),
		maintenanceRepo: NewMaintenanceRepository(writer, reader),
		activityRepo:    NewActivityLogRepository(writer, reader),
	}
}

func (r *postgresRepository) User() repository.UserRepository               { return r.userRepo }
func (r *postgresRepository) Company() repository.CompanyRepository         { return r.companyRepo }
func (r *postgresRepository) Property() repository.PropertyRepository       { return r.propertyRepo }
func (r *postgresRepository) Unit() repository.UnitRepository               { return r.unitRepo }
func (r *postgresRepository) Tenant() repository.TenantRepository           { return r.tenantRepo }
func (r *postgresRepository) Lease() repository.LeaseRepository             { return r.leaseRepo }
func (r *postgresRepository) Invoice() repository.InvoiceRepository         { return r.invoiceRepo }
func (r *postgresRepository) Payment() repository.PaymentRepository         { return r.paymentRepo }
func (r *postgresRepository) Maintenance() repository.MaintenanceRepository { return r.maintenanceRepo }
func (r *postgresRepository) ActivityLog() repository.ActivityLogRepository { return r.activityRepo }
