package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/autolot/dealership-api/internal/model"
)

// MaintenanceRepo encapsulates all database queries related to
// workshop maintenance records.
type MaintenanceRepo struct {
	db *sql.DB
}

// NewMaintenanceRepo constructs a MaintenanceRepo with the provided DB
// handle.
func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

// Create inserts a new maintenance record.  The timestamp is assigned
// here in UTC and the status starts as Pending via the column
// default.  On success the ID, PerformedAt and Status fields are
// populated.
func (r *MaintenanceRepo) Create(ctx context.Context, m *model.MaintenanceRecord) error {
	m.PerformedAt = time.Now().UTC().Truncate(time.Second)
	const q = `INSERT INTO maintenance_records
	           (vehicle_id, customer_id, service_type, description, amount, performed_at)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		m.VehicleID, m.CustomerID, m.ServiceType, m.Description, m.Amount, m.PerformedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	m.Status = model.MaintenancePending
	return nil
}

// MaintenanceDetail is a maintenance record joined with customer and
// vehicle display fields.
type MaintenanceDetail struct {
	model.MaintenanceRecord
	CustomerName string `json:"customer_name"`
	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
}

// ListDetails returns all maintenance records joined with their
// customer and vehicle, newest first (performed_at descending).
// INNER JOIN semantics: records with a dangling reference are
// omitted.
func (r *MaintenanceRepo) ListDetails(ctx context.Context) ([]MaintenanceDetail, error) {
	const q = `SELECT m.id, m.vehicle_id, m.customer_id, m.service_type, m.description,
	                  m.amount, m.performed_at, m.status,
	                  c.name, v.brand, v.model, v.year
	           FROM maintenance_records m
	           JOIN customers c ON c.id = m.customer_id
	           JOIN vehicles v ON v.id = m.vehicle_id
	           ORDER BY m.performed_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MaintenanceDetail, 0)
	for rows.Next() {
		var d MaintenanceDetail
		if err := rows.Scan(
			&d.ID, &d.VehicleID, &d.CustomerID, &d.ServiceType, &d.Description,
			&d.Amount, &d.PerformedAt, &d.Status,
			&d.CustomerName, &d.VehicleBrand, &d.VehicleModel, &d.VehicleYear,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets the status of a maintenance record.  This is the
// only mutable field after creation; the endpoint never patches
// anything else.  Zero affected rows still reports success.
func (r *MaintenanceRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = "UPDATE maintenance_records SET status = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

// Delete removes a maintenance record by id.  Idempotent.
func (r *MaintenanceRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM maintenance_records WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
