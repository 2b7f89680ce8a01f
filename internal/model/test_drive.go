package model

import "time"

// Test drive statuses.  Appointments start Scheduled.
const (
	TestDriveScheduled = "Scheduled"
	TestDriveCompleted = "Completed"
	TestDriveCancelled = "Cancelled"
)

// TestDrive is a scheduled appointment for a customer to drive a
// vehicle accompanied by a salesperson.  Corresponds to a row in
// the `test_drives` table.  Listings are ordered by ScheduledAt
// descending.
//
// Fields:
//  ID            – primary key identifier.
//  CustomerID    – customer reference.
//  VehicleID     – vehicle reference.
//  SalespersonID – accompanying staff member.
//  ScheduledAt   – appointment time.
//  Status        – Scheduled, Completed or Cancelled.
//  Notes         – optional free-form notes (nullable).
type TestDrive struct {
	ID            uint64    `json:"id"`             // test_drives.id
	CustomerID    uint64    `json:"customer_id"`    // test_drives.customer_id
	VehicleID     uint64    `json:"vehicle_id"`     // test_drives.vehicle_id
	SalespersonID uint64    `json:"salesperson_id"` // test_drives.salesperson_id
	ScheduledAt   time.Time `json:"scheduled_at"`   // test_drives.scheduled_at
	Status        string    `json:"status"`         // test_drives.status
	Notes         *string   `json:"notes,omitempty"` // test_drives.notes (nullable)
}

// ValidTestDriveStatus reports whether s is an accepted status value.
func ValidTestDriveStatus(s string) bool {
	switch s {
	case TestDriveScheduled, TestDriveCompleted, TestDriveCancelled:
		return true
	}
	return false
}
