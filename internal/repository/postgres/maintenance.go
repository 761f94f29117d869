package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type MaintenanceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewMaintenanceRepository(writerDB, readerDB *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var maintenanceSortColumns = map[string]string{
	"title":      "maintenance_requests.title",
	"priority":   "maintenance_requests.priority",
	"status":     "maintenance_requests.status",
	"created_at": "maintenance_requests.created_at",
	"updated_at": "maintenance_requests.updated_at",
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	var req domain.MaintenanceRequest
	if err := r.readerDB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, req *domain.MaintenanceRequest) error {
	return r.writerDB.WithContext(ctx).Save(req).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.MaintenanceRequest{}, "id = ?", id).Error
}

func (r *MaintenanceRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.MaintenanceRequest, int64, error) {
	db := applyPropertyTenantScope(r.readerDB.WithContext(ctx).Model(&domain.MaintenanceRequest{}), scope, "maintenance_requests")

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("maintenance_requests.title ILIKE ? OR maintenance_requests.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []domain.MaintenanceRequest
	if err := paginate(db, q).Order(orderClause(q, maintenanceSortColumns)).Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
