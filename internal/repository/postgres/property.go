package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type PropertyRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPropertyRepository(writerDB, readerDB *gorm.DB) *PropertyRepository {
	return &PropertyRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var propertySortColumns = map[string]string{
	"name":       "properties.name",
	"address":    "properties.address",
	"created_at": "properties.created_at",
	"updated_at": "properties.updated_at",
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var property domain.Property
	if err := r.readerDB.WithContext(ctx).Preload("Manager").Preload("Units").First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	return r.writerDB.WithContext(ctx).Save(property).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Property{}, "id = ?", id).Error
}

func (r *PropertyRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Property, int64, error) {
	db := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.Property{}), scope)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("properties.name ILIKE ? OR properties.address ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []domain.Property
	if err := paginate(db, q).Order(orderClause(q, propertySortColumns)).Preload("Manager").Find(&properties).Error; err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// ListIDsByManager returns the ids of every property managed by the given
// user. Used to stamp property_ids into manager tokens at login.
func (r *PropertyRepository) ListIDsByManager(ctx context.Context, managerID string) ([]string, error) {
	var ids []string
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Property{}).
		Where("manager_id = ?", managerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PropertyRepository) applyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Where("properties.company_id = ?", scope.CompanyID)
	case scope.PropertyIDs != nil:
		return db.Where("properties.id IN ?", scope.PropertyIDs)
	case scope.ManagerID != "":
		return db.Where("properties.manager_id = ?", scope.ManagerID)
	}
	return denyAll(db)
}
