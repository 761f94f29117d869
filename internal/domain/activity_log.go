package domain

import (
	"time"
)

// ActivityLog is an immutable append-only record of a mutating action.
// Entries are never updated or deleted once written.
type ActivityLog struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	TenantID   *string   `gorm:"type:uuid" json:"tenant_id,omitempty"`
	PropertyID *string   `gorm:"type:uuid" json:"property_id,omitempty"`
	LeaseID    *string   `gorm:"type:uuid" json:"lease_id,omitempty"`
	PaymentID  *string   `gorm:"type:uuid" json:"payment_id,omitempty"`
	CompanyID  *string   `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Action     string    `gorm:"type:text;not null" json:"action"`
	Entity     string    `gorm:"type:text;not null;index:idx_activity_entity" json:"entity"`
	EntityID   string    `gorm:"type:text;index:idx_activity_entity" json:"entity_id"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
