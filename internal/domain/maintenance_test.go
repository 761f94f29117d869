package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to MaintenanceStatus
		want     bool
	}{
		{MaintenancePending, MaintenanceInProgress, true},
		{MaintenancePending, MaintenanceRejected, true},
		{MaintenancePending, MaintenanceCompleted, false},
		{MaintenanceInProgress, MaintenanceCompleted, true},
		{MaintenanceInProgress, MaintenanceRejected, true},
		{MaintenanceInProgress, MaintenancePending, false},
		{MaintenanceCompleted, MaintenanceInProgress, false},
		{MaintenanceCompleted, MaintenanceRejected, false},
		{MaintenanceRejected, MaintenancePending, false},
		{MaintenanceRejected, MaintenanceInProgress, false},
		// No-op transitions are always allowed
		{MaintenancePending, MaintenancePending, true},
		{MaintenanceCompleted, MaintenanceCompleted, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestIsValidMaintenanceStatus(t *testing.T) {
	assert.True(t, IsValidMaintenanceStatus("PENDING"))
	assert.True(t, IsValidMaintenanceStatus("IN_PROGRESS"))
	assert.True(t, IsValidMaintenanceStatus("COMPLETED"))
	assert.True(t, IsValidMaintenanceStatus("REJECTED"))
	assert.False(t, IsValidMaintenanceStatus("pending"))
	assert.False(t, IsValidMaintenanceStatus("DONE"))
	assert.False(t, IsValidMaintenanceStatus(""))
}

func TestIsValidMaintenancePriority(t *testing.T) {
	assert.True(t, IsValidMaintenancePriority("LOW"))
	assert.True(t, IsValidMaintenancePriority("URGENT"))
	assert.False(t, IsValidMaintenancePriority("CRITICAL"))
	assert.False(t, IsValidMaintenancePriority(""))
}
