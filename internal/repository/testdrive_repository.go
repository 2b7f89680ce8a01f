package repository

import (
	"context"
	"database/sql"

	"github.com/autolot/dealership-api/internal/model"
)

// TestDriveRepo encapsulates all database queries related to test
// drive appointments.
type TestDriveRepo struct {
	db *sql.DB
}

// NewTestDriveRepo constructs a TestDriveRepo with the provided DB
// handle.
func NewTestDriveRepo(db *sql.DB) *TestDriveRepo {
	return &TestDriveRepo{db: db}
}

// Create inserts a new test drive.  The status starts as Scheduled
// via the column default.  Notes are optional and stored as NULL when
// absent.  On success the ID and Status fields are populated.
func (r *TestDriveRepo) Create(ctx context.Context, t *model.TestDrive) error {
	var notes sql.NullString
	if t.Notes != nil && *t.Notes != "" {
		notes = sql.NullString{String: *t.Notes, Valid: true}
	}
	const q = `INSERT INTO test_drives
	           (customer_id, vehicle_id, salesperson_id, scheduled_at, notes)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		t.CustomerID, t.VehicleID, t.SalespersonID, t.ScheduledAt, notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	t.Status = model.TestDriveScheduled
	return nil
}

// TestDriveDetail is a test drive joined with customer, vehicle and
// salesperson display fields.
type TestDriveDetail struct {
	model.TestDrive
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	VehicleBrand    string `json:"vehicle_brand"`
	VehicleModel    string `json:"vehicle_model"`
	VehicleYear     int    `json:"vehicle_year"`
	SalespersonName string `json:"salesperson_name"`
}

// ListDetails returns all test drives joined with their referenced
// entities, newest appointment first (scheduled_at descending).
// INNER JOIN semantics: appointments with a dangling reference are
// omitted.
func (r *TestDriveRepo) ListDetails(ctx context.Context) ([]TestDriveDetail, error) {
	const q = `SELECT t.id, t.customer_id, t.vehicle_id, t.salesperson_id,
	                  t.scheduled_at, t.status, t.notes,
	                  c.name, c.email, v.brand, v.model, v.year, sp.name
	           FROM test_drives t
	           JOIN customers c ON c.id = t.customer_id
	           JOIN vehicles v ON v.id = t.vehicle_id
	           JOIN salespeople sp ON sp.id = t.salesperson_id
	           ORDER BY t.scheduled_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TestDriveDetail, 0)
	for rows.Next() {
		var d TestDriveDetail
		var notes sql.NullString
		if err := rows.Scan(
			&d.ID, &d.CustomerID, &d.VehicleID, &d.SalespersonID,
			&d.ScheduledAt, &d.Status, &notes,
			&d.CustomerName, &d.CustomerEmail, &d.VehicleBrand, &d.VehicleModel,
			&d.VehicleYear, &d.SalespersonName,
		); err != nil {
			return nil, err
		}
		if notes.Valid {
			n := notes.String
			d.Notes = &n
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus sets the status of a test drive.  This is the only
// mutable field after creation.  Zero affected rows still reports
// success.
func (r *TestDriveRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = "UPDATE test_drives SET status = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

// Delete removes a test drive by id.  Idempotent.
func (r *TestDriveRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM test_drives WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
