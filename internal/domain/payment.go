package domain

import (
	"time"
)

// Payment is an amount applied against an invoice. The sum of payments for an
// invoice must never exceed the invoice amount; that check and the insert are
// performed atomically in the repository.
type Payment struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	InvoiceID  string    `gorm:"type:uuid;not null;index" json:"invoice_id"`
	TenantID   string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	PropertyID string    `gorm:"type:uuid;not null;index" json:"property_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Method     string    `gorm:"type:text;not null" json:"method"`
	PaidAt     time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"paid_at"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Invoice    *Invoice  `gorm:"foreignKey:InvoiceID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// ExceedsInvoiceAmount reports whether applying amount on top of alreadyPaid
// would push the invoice's payment total past invoiceAmount. Paying exactly
// up to the invoice amount is allowed.
func ExceedsInvoiceAmount(alreadyPaid, amount, invoiceAmount float64) bool {
	return alreadyPaid+amount > invoiceAmount
}
