package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type ActivityLogRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewActivityLogRepository(writerDB, readerDB *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var activitySortColumns = map[string]string{
	"action":     "action",
	"entity":     "entity",
	"created_at": "created_at",
}

// Create appends an entry. Entries are never updated or deleted afterwards.
func (r *ActivityLogRepository) Create(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ActivityLogRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.ActivityLog, int64, error) {
	db := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.ActivityLog{}), scope)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("action ILIKE ? OR entity ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []domain.ActivityLog
	if err := paginate(db, q).Order(orderClause(q, activitySortColumns)).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *ActivityLogRepository) ListByEntity(ctx context.Context, scope authz.Scope, entity, entityID string) ([]domain.ActivityLog, error) {
	var entries []domain.ActivityLog
	err := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.ActivityLog{}), scope).
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ActivityLogRepository) ListByUser(ctx context.Context, scope authz.Scope, userID string) ([]domain.ActivityLog, error) {
	var entries []domain.ActivityLog
	err := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.ActivityLog{}), scope).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ActivityLogRepository) applyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Where("company_id = ?", scope.CompanyID)
	}
	return denyAll(db)
}
