package model

import "time"

// Sale records the transfer of a vehicle to a customer.  A sale is
// "active" for as long as its row exists; reverting a sale deletes
// the row and restores the vehicle's availability.  Both mutations
// happen inside a single transaction so that a vehicle is never
// observed as available while an active sale references it.
//
// Fields:
//  ID            – primary key identifier.
//  CustomerID    – buyer reference.
//  VehicleID     – vehicle reference.
//  SalespersonID – staff member who closed the sale.
//  SoldAt        – UTC timestamp assigned at recording time.
type Sale struct {
	ID            uint64    `json:"id"`             // sales.id
	CustomerID    uint64    `json:"customer_id"`    // sales.customer_id
	VehicleID     uint64    `json:"vehicle_id"`     // sales.vehicle_id
	SalespersonID uint64    `json:"salesperson_id"` // sales.salesperson_id
	SoldAt        time.Time `json:"sold_at"`        // sales.sold_at
}
