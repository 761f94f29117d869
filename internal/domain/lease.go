package domain

import (
	"time"
)

// Lease binds a tenant to a unit for a closed date interval
// [StartDate, EndDate]. For a given unit no two leases may overlap; a lease
// ending on day X conflicts with one starting on day X.
type Lease struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UnitID     string    `gorm:"type:uuid;not null;index" json:"unit_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	RentAmount float64   `gorm:"not null" json:"rent_amount"`
	Deposit    float64   `gorm:"not null;default:0" json:"deposit"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Unit       *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

func (Lease) TableName() string {
	return "leases"
}

// Overlaps reports whether the closed intervals [s1,e1] and [s2,e2] share at
// least one day. Touching endpoints count as overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}
