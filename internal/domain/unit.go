package domain

import (
	"time"
)

type Unit struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:text;not null;uniqueIndex:idx_units_name_floor_property" json:"name"`
	Floor      int       `gorm:"not null;uniqueIndex:idx_units_name_floor_property" json:"floor"`
	PropertyID string    `gorm:"type:uuid;not null;uniqueIndex:idx_units_name_floor_property;index" json:"property_id"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}
