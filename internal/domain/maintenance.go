package domain

import (
	"time"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "PENDING"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceRejected   MaintenanceStatus = "REJECTED"
)

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "LOW"
	PriorityMedium MaintenancePriority = "MEDIUM"
	PriorityHigh   MaintenancePriority = "HIGH"
	PriorityUrgent MaintenancePriority = "URGENT"
)

// maintenanceTransitions is the allowed status graph. COMPLETED and REJECTED
// are terminal.
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenancePending:    {MaintenanceInProgress, MaintenanceRejected},
	MaintenanceInProgress: {MaintenanceCompleted, MaintenanceRejected},
}

// CanTransition reports whether a maintenance request may move from one
// status to another. Staying in the current status is always allowed.
func CanTransition(from, to MaintenanceStatus) bool {
	if from == to {
		return true
	}
	for _, next := range maintenanceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidMaintenanceStatus checks if a status value is one of the known states.
func IsValidMaintenanceStatus(s string) bool {
	switch MaintenanceStatus(s) {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted, MaintenanceRejected:
		return true
	}
	return false
}

// IsValidMaintenancePriority checks if a priority value is one of the known levels.
func IsValidMaintenancePriority(p string) bool {
	switch MaintenancePriority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID           string              `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title        string              `gorm:"type:text;not null" json:"title"`
	Description  string              `gorm:"type:text" json:"description"`
	Priority     MaintenancePriority `gorm:"type:text;not null;default:'MEDIUM'" json:"priority"`
	Status       MaintenanceStatus   `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	TenantID     *string             `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	PropertyID   string              `gorm:"type:uuid;not null;index" json:"property_id"`
	UnitID       string              `gorm:"type:uuid;not null" json:"unit_id"`
	CreatedByID  string              `gorm:"type:uuid;not null" json:"created_by_id"`
	AssignedToID *string             `gorm:"type:uuid" json:"assigned_to_id,omitempty"`
	CreatedAt    time.Time           `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant             `gorm:"foreignKey:TenantID" json:"-"`
	Property     *Property           `gorm:"foreignKey:PropertyID" json:"-"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
