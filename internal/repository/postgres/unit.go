package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type UnitRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUnitRepository(writerDB, readerDB *gorm.DB) *UnitRepository {
	return &UnitRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var unitSortColumns = map[string]string{
	"name":       "units.name",
	"floor":      "units.floor",
	"created_at": "units.created_at",
	"updated_at": "units.updated_at",
}

func (r *UnitRepository) Create(ctx context.Context, unit *domain.Unit) (*domain.Unit, error) {
	if unit.ID == "" {
		unit.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

func (r *UnitRepository) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	var unit domain.Unit
	if err := r.readerDB.WithContext(ctx).Preload("Property").First(&unit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *UnitRepository) Update(ctx context.Context, unit *domain.Unit) error {
	return r.writerDB.WithContext(ctx).Save(unit).Error
}

func (r *UnitRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Unit{}, "id = ?", id).Error
}

func (r *UnitRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Unit, int64, error) {
	db := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.Unit{}), scope)

	if q.Search != "" {
		db = db.Where("units.name ILIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []domain.Unit
	if err := paginate(db, q).Order(orderClause(q, unitSortColumns)).Preload("Property").Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

// HasDuplicate reports whether another unit with the same (name, floor,
// property) triple exists. The unique index remains the final authority; this
// pre-check only produces a friendlier error.
func (r *UnitRepository) HasDuplicate(ctx context.Context, name string, floor int, propertyID, excludeID string) (bool, error) {
	db := r.readerDB.WithContext(ctx).
		Model(&domain.Unit{}).
		Where("name = ? AND floor = ? AND property_id = ?", name, floor, propertyID)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasOccupant reports whether any tenant record is currently assigned to the
// unit.
func (r *UnitRepository) HasOccupant(ctx context.Context, unitID string) (bool, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Tenant{}).
		Where("unit_id = ?", unitID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UnitRepository) applyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Joins("JOIN properties ON properties.id = units.property_id").
			Where("properties.company_id = ?", scope.CompanyID)
	case scope.PropertyIDs != nil:
		return db.Where("units.property_id IN ?", scope.PropertyIDs)
	case scope.ManagerID != "":
		return db.Joins("JOIN properties ON properties.id = units.property_id").
			Where("properties.manager_id = ?", scope.ManagerID)
	}
	return denyAll(db)
}
