package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallmentAmount(t *testing.T) {
	// 1000 total at 10% over 5 installments: 1000 * 1.10 / 5 = 220.00
	assert.InDelta(t, 220.00, InstallmentAmount(1000, 10, 5), 1e-9)

	// zero interest divides the principal evenly
	assert.InDelta(t, 250.00, InstallmentAmount(1000, 0, 4), 1e-9)

	// results are rounded to two decimal places:
	// 100 * 1.05 / 3 = 35.0000 -> 35.00 | 1000 * 1.0333 / 7 = 147.614... -> 147.61
	assert.InDelta(t, 35.00, InstallmentAmount(100, 5, 3), 1e-9)
	assert.InDelta(t, 147.61, InstallmentAmount(1000, 3.33, 7), 1e-9)
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, ValidMaintenanceStatus(MaintenancePending))
	assert.True(t, ValidMaintenanceStatus(MaintenanceCompleted))
	assert.False(t, ValidMaintenanceStatus("Cancelled"))
	assert.False(t, ValidMaintenanceStatus("pending")) // values are case-sensitive

	assert.True(t, ValidTestDriveStatus(TestDriveScheduled))
	assert.True(t, ValidTestDriveStatus(TestDriveCompleted))
	assert.True(t, ValidTestDriveStatus(TestDriveCancelled))
	assert.False(t, ValidTestDriveStatus("Pending"))
	assert.False(t, ValidTestDriveStatus(""))
}
