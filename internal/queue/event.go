// Package queue defines message payloads exchanged over the message broker.
package queue

// SaleRecordedEvent is published when a sale is successfully recorded.
// It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type SaleRecordedEvent struct {
	SaleID        uint64 `json:"sale_id"`
	CustomerID    uint64 `json:"customer_id"`
	VehicleID     uint64 `json:"vehicle_id"`
	SalespersonID uint64 `json:"salesperson_id"`
	SoldAt        string `json:"sold_at"`
}
