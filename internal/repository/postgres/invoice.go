package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
)

type InvoiceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewInvoiceRepository(writerDB, readerDB *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var invoiceSortColumns = map[string]string{
	"amount":     "invoices.amount",
	"due_date":   "invoices.due_date",
	"created_at": "invoices.created_at",
	"updated_at": "invoices.updated_at",
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.readerDB.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	return r.writerDB.WithContext(ctx).Save(invoice).Error
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id).Error
}

func (r *InvoiceRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Invoice, int64, error) {
	db := applyPropertyTenantScope(r.readerDB.WithContext(ctx).Model(&domain.Invoice{}), scope, "invoices")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []domain.Invoice
	if err := paginate(db, q).Order(orderClause(q, invoiceSortColumns)).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}
