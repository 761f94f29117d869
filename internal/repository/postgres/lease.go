package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
)

type LeaseRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewLeaseRepository(writerDB, readerDB *gorm.DB) *LeaseRepository {
	return &LeaseRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var leaseSortColumns = map[string]string{
	"start_date":  "leases.start_date",
	"end_date":    "leases.end_date",
	"rent_amount": "leases.rent_amount",
	"created_at":  "leases.created_at",
	"updated_at":  "leases.updated_at",
}

// overlapConflict reports whether another lease for the unit shares at least
// one day with lease's closed [StartDate, EndDate] interval. The unit's
// leases are loaded inside the caller's transaction and checked through
// domain.Overlaps so the stored intervals and the predicate cannot drift.
func overlapConflict(tx *gorm.DB, lease *domain.Lease, excludeID string) (bool, error) {
	db := tx.Where("unit_id = ?", lease.UnitID)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	var existing []domain.Lease
	if err := db.Find(&existing).Error; err != nil {
		return false, err
	}
	for i := range existing {
		if domain.Overlaps(lease.StartDate, lease.EndDate, existing[i].StartDate, existing[i].EndDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *LeaseRepository) CreateChecked(ctx context.Context, lease *domain.Lease) error {
	if lease.ID == "" {
		lease.ID = uuid.New().String()
	}

	// Overlap check and insert share one serializable transaction so two
	// concurrent creations for the same unit cannot both pass the check.
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conflict, err := overlapConflict(tx, lease, "")
		if err != nil {
			return err
		}
		if conflict {
			return repository.ErrLeaseOverlap
		}
		return tx.Create(lease).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *LeaseRepository) UpdateChecked(ctx context.Context, lease *domain.Lease, checkOverlap bool) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if checkOverlap {
			conflict, err := overlapConflict(tx, lease, lease.ID)
			if err != nil {
				return err
			}
			if conflict {
				return repository.ErrLeaseOverlap
			}
		}
		return tx.Save(lease).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *LeaseRepository) GetByID(ctx context.Context, id string) (*domain.Lease, error) {
	var lease domain.Lease
	err := r.readerDB.WithContext(ctx).
		Preload("Tenant").
		Preload("Unit").
		Preload("Unit.Property").
		First(&lease, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *LeaseRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Lease{}, "id = ?", id).Error
}

func (r *LeaseRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Lease, int64, error) {
	db := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.Lease{}), scope)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leases []domain.Lease
	if err := paginate(db, q).Order(orderClause(q, leaseSortColumns)).Preload("Tenant").Preload("Unit").Find(&leases).Error; err != nil {
		return nil, 0, err
	}
	return leases, total, nil
}

func (r *LeaseRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Lease{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *LeaseRepository) applyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Joins("JOIN units ON units.id = leases.unit_id").
			Joins("JOIN properties ON properties.id = units.property_id").
			Where("properties.company_id = ?", scope.CompanyID)
	case scope.PropertyIDs != nil:
		return db.Joins("JOIN units ON units.id = leases.unit_id").
			Where("units.property_id IN ?", scope.PropertyIDs)
	case scope.ManagerID != "":
		return db.Joins("JOIN units ON units.id = leases.unit_id").
			Joins("JOIN properties ON properties.id = units.property_id").
			Where("properties.manager_id = ?", scope.ManagerID)
	case scope.TenantID != "":
		return db.Where("leases.tenant_id = ?", scope.TenantID)
	}
	return denyAll(db)
}
