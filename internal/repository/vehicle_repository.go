package repository

import (
	"context"
	"database/sql"

	"github.com/autolot/dealership-api/internal/model"
)

// VehicleRepo encapsulates all database queries related to vehicles.
// It depends on a sql.DB connection which should be configured
// elsewhere.
type VehicleRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVehicleRepo constructs a VehicleRepo with the provided DB handle.
// This function allows dependency injection of the database in tests
// and at startup.
func NewVehicleRepo(db *sql.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// Create inserts a new vehicle into the database.  New vehicles are
// always available; the column default takes care of the flag.  On
// success the vehicle's ID field is populated with the auto-generated
// value and Available is set to true.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	const q = "INSERT INTO vehicles (brand, model, year) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, v.Brand, v.Model, v.Year)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	v.Available = true
	return nil
}

// ListAll returns every vehicle ordered by id (insertion order).  When
// available is non-nil the result is filtered on the availability flag;
// the sales screen uses this to offer only vehicles without an active
// sale.  An empty result is a valid outcome, not an error.
func (r *VehicleRepo) ListAll(ctx context.Context, available *bool) ([]*model.Vehicle, error) {
	q := "SELECT id, brand, model, year, available FROM vehicles"
	args := []any{}
	if available != nil {
		q += " WHERE available = ?"
		args = append(args, *available)
	}
	q += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Vehicle, 0)
	for rows.Next() {
		v := new(model.Vehicle)
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.Available); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites brand, model, year and availability for the given
// vehicle.  Updating a vehicle that does not exist affects zero rows
// and still reports success, matching the delete semantics.
func (r *VehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	const q = "UPDATE vehicles SET brand = ?, model = ?, year = ?, available = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, v.Brand, v.Model, v.Year, v.Available, v.ID)
	return err
}

// Delete removes a vehicle by id.  Deleting a nonexistent id is not an
// error: the operation is idempotent.  No cascade happens — sales,
// maintenance records and test drives referencing the vehicle keep
// their dangling reference and drop out of join-based listings.
func (r *VehicleRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM vehicles WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
