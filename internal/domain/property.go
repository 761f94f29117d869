package domain

import (
	"time"
)

type Property struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	CompanyID string    `gorm:"type:uuid;not null;index" json:"company_id"`
	ManagerID *string   `gorm:"type:uuid" json:"manager_id,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"-"`
	Manager   *User     `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Units     []Unit    `gorm:"foreignKey:PropertyID" json:"units,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}
