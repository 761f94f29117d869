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

type PaymentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentRepository(writerDB, readerDB *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

var paymentSortColumns = map[string]string{
	"amount":     "payments.amount",
	"paid_at":    "payments.paid_at",
	"created_at": "payments.created_at",
}

func (r *PaymentRepository) CreateChecked(ctx context.Context, payment *domain.Payment, invoiceAmount float64) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	// Sum of existing payments and the insert run in one serializable
	// transaction so concurrent payments against the same invoice serialize
	// their read-then-write of the running total.
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paid sql.NullFloat64
		err := tx.Model(&domain.Payment{}).
			Where("invoice_id = ?", payment.InvoiceID).
			Select("SUM(amount)").
			Scan(&paid).Error
		if err != nil {
			return err
		}
		if domain.ExceedsInvoiceAmount(paid.Float64, payment.Amount, invoiceAmount) {
			return repository.ErrPaymentCeiling
		}
		return tx.Create(payment).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.readerDB.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Payment{}, "id = ?", id).Error
}

func (r *PaymentRepository) List(ctx context.Context, scope authz.Scope, q domain.ListQuery) ([]domain.Payment, int64, error) {
	db := applyPropertyTenantScope(r.readerDB.WithContext(ctx).Model(&domain.Payment{}), scope, "payments")

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []domain.Payment
	if err := paginate(db, q).Order(orderClause(q, paymentSortColumns)).Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
