package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var tenantSortColumns = map[string]string{
	"created_at": "tenants.created_at",
	"updated_at": "tenants.updated_at",
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.readerDB.WithContext(ctx).
		Preload("User").
		Preload("Unit").
		Preload("Unit.Property").
		First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetByUserID(ctx context.Context, userID string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	return r.writerDB.WithContext(ctx).Save(tenant).Error
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Tenant{}, "id = ?", id).Error
}

func (r *TenantRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Tenant, int64, error) {
	db := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.Tenant{}), scope)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Joins("JOIN users ON users.id = tenants.user_id").
			Where("users.name ILIKE ? OR users.email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tenants []domain.Tenant
	if err := paginate(db, q).Order(orderClause(q, tenantSortColumns)).Preload("User").Preload("Unit").Find(&tenants).Error; err != nil {
		return nil, 0, err
	}
	return tenants, total, nil
}

func (r *TenantRepository) applyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Where("tenants.company_id = ?", scope.CompanyID)
	case scope.PropertyIDs != nil:
		return db.Joins("JOIN units ON units.id = tenants.unit_id").
			Where("units.property_id IN ?", scope.PropertyIDs)
	case scope.ManagerID != "":
		return db.Joins("JOIN units ON units.id = tenants.unit_id").
			Joins("JOIN properties ON properties.id = units.property_id").
			Where("properties.manager_id = ?", scope.ManagerID)
	case scope.TenantID != "":
		return db.Where("tenants.id = ?", scope.TenantID)
	}
	return denyAll(db)
}
