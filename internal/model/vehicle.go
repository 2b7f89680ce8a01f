package model

// Vehicle represents a car in the dealership inventory.  Availability
// is flipped by sale recording and reverting; it must never be set
// directly alongside an active sale.  This struct corresponds to a
// row in the `vehicles` table.
//
// Fields:
//  ID        – primary key identifier.
//  Brand     – manufacturer name (e.g. "Fiat").
//  Model     – commercial model name.
//  Year      – model year.
//  Available – true while no active sale references the vehicle.
type Vehicle struct {
	ID        uint64 `json:"id"`        // vehicles.id
	Brand     string `json:"brand"`     // vehicles.brand
	Model     string `json:"model"`     // vehicles.model
	Year      int    `json:"year"`      // vehicles.year
	Available bool   `json:"available"` // vehicles.available
}
