package model

import "time"

// Maintenance record statuses.  Records start Pending and are moved
// to Completed through the status-only update endpoint.
const (
	MaintenancePending   = "Pending"
	MaintenanceCompleted = "Completed"
)

// MaintenanceRecord is a workshop service performed on a vehicle for
// a customer.  Corresponds to a row in the `maintenance_records`
// table.  Listings are ordered by PerformedAt descending.
type MaintenanceRecord struct {
	ID          uint64    `json:"id"`           // maintenance_records.id
	VehicleID   uint64    `json:"vehicle_id"`   // maintenance_records.vehicle_id
	CustomerID  uint64    `json:"customer_id"`  // maintenance_records.customer_id
	ServiceType string    `json:"type"`         // maintenance_records.service_type
	Description string    `json:"description"`  // maintenance_records.description
	Amount      float64   `json:"amount"`       // maintenance_records.amount
	PerformedAt time.Time `json:"performed_at"` // maintenance_records.performed_at
	Status      string    `json:"status"`       // maintenance_records.status
}

// ValidMaintenanceStatus reports whether s is an accepted status value.
func ValidMaintenanceStatus(s string) bool {
	return s == MaintenancePending || s == MaintenanceCompleted
}
