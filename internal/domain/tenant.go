package domain

import (
	"time"
)

// Tenant is an occupancy record linked to a User account. It is distinct from
// a User with role TENANT: the User carries identity and credentials, the
// Tenant carries the rental relationship.
type Tenant struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;unique" json:"user_id"`
	CompanyID string    `gorm:"type:uuid;not null;index" json:"company_id"`
	UnitID    *string   `gorm:"type:uuid" json:"unit_id,omitempty"`
	Phone     string    `gorm:"type:text" json:"phone"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Unit      *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

func (Tenant) TableName() string {
	return "tenants"
}
