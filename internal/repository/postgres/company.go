package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type CompanyRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCompanyRepository(writerDB, readerDB *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var companySortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var company domain.Company
	if err := r.readerDB.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	var company domain.Company
	if err := r.readerDB.WithContext(ctx).First(&company, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	return r.writerDB.WithContext(ctx).Save(company).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Company{}, "id = ?", id).Error
}

func (r *CompanyRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Company, int64, error) {
	db := r.applyScope(r.readerDB.WithContext(ctx).Model(&domain.Company{}), scope)

	if q.Search != "" {
		db = db.Where("name ILIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []domain.Company
	if err := paginate(db, q).Order(orderClause(q, companySortColumns)).Find(&companies).Error; err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *CompanyRepository) applyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	switch {
	case scope.All:
		return db
	case scope.CompanyID != "":
		return db.Where("id = ?", scope.CompanyID)
	}
	return denyAll(db)
}
