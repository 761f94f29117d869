package domain

import (
	"time"
)

type Invoice struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	LeaseID    string    `gorm:"type:uuid;not null;index" json:"lease_id"`
	TenantID   string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	PropertyID string    `gorm:"type:uuid;not null;index" json:"property_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	DueDate    time.Time `gorm:"type:date;not null" json:"due_date"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Lease      *Lease    `gorm:"foreignKey:LeaseID" json:"-"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}
