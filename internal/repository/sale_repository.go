package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/autolot/dealership-api/internal/model"
)

// SaleRepo encapsulates sale persistence together with the two
// compound operations of the system: recording a sale and reverting
// one.  Both touch the vehicles table and the sales table and must be
// applied as one atomic unit, so they run inside an explicit
// transaction owned by the repository.  A crash or failure between
// the two writes can never leave a vehicle marked unavailable without
// a sale, or the other way around.
type SaleRepo struct {
	db *sql.DB
}

// NewSaleRepo constructs a SaleRepo with the provided DB handle.
func NewSaleRepo(db *sql.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

// DB exposes the underlying handle for callers that need to compose
// their own transactions in tests.
func (r *SaleRepo) DB() *sql.DB { return r.db }

// Record marks the vehicle unavailable and inserts the sale row in a
// single transaction.  The sale timestamp is assigned here, in UTC.
// Referenced ids are not checked for existence before writing: a
// dangling reference surfaces later as a missing row in ListDetails.
// On failure the transaction is rolled back and the vehicle keeps its
// previous availability.
func (r *SaleRepo) Record(ctx context.Context, customerID, vehicleID, salespersonID uint64) (s *model.Sale, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		"UPDATE vehicles SET available = 0 WHERE id = ?", vehicleID); err != nil {
		return nil, err
	}

	s = &model.Sale{
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		SalespersonID: salespersonID,
		SoldAt:        time.Now().UTC().Truncate(time.Second),
	}
	var res sql.Result
	res, err = tx.ExecContext(ctx,
		"INSERT INTO sales (customer_id, vehicle_id, salesperson_id, sold_at) VALUES (?, ?, ?, ?)",
		s.CustomerID, s.VehicleID, s.SalespersonID, s.SoldAt)
	if err != nil {
		return nil, err
	}
	var id int64
	id, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	s.ID = uint64(id)
	return s, err
}

// Revert cancels a sale: the vehicle becomes available again and the
// sale row is deleted, both inside one transaction.  Reverting a sale
// that does not exist returns ErrSaleNotFound and leaves every
// vehicle's availability untouched.
func (r *SaleRepo) Revert(ctx context.Context, saleID uint64) (err error) {
	var tx *sql.Tx
	tx, err = r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var vehicleID uint64
	if err = tx.QueryRowContext(ctx,
		"SELECT vehicle_id FROM sales WHERE id = ?", saleID).Scan(&vehicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrSaleNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		"UPDATE vehicles SET available = 1 WHERE id = ?", vehicleID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		"DELETE FROM sales WHERE id = ?", saleID); err != nil {
		return err
	}
	return err
}

// SaleCustomer, SaleVehicle and SaleSalesperson carry the display
// fields of the entities referenced by a sale.
type SaleCustomer struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SaleVehicle struct {
	ID    uint64 `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type SaleSalesperson struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// SaleDetail is one row of the sales listing: the sale joined with
// its customer, vehicle and salesperson.  It is what the client
// renders in the sales table.
type SaleDetail struct {
	ID          uint64          `json:"id"`
	SoldAt      time.Time       `json:"sold_at"`
	Customer    SaleCustomer    `json:"customer"`
	Vehicle     SaleVehicle     `json:"vehicle"`
	Salesperson SaleSalesperson `json:"salesperson"`
}

// ListDetails returns all sales joined with their referenced
// entities, ordered by id.  INNER JOIN semantics apply: a sale whose
// customer, vehicle or salesperson has been deleted is omitted from
// the result rather than reported as an error.
func (r *SaleRepo) ListDetails(ctx context.Context) ([]SaleDetail, error) {
	const q = `SELECT s.id, s.sold_at,
	                  c.id, c.name, c.email,
	                  v.id, v.brand, v.model, v.year,
	                  sp.id, sp.name, sp.department
	           FROM sales s
	           JOIN customers c ON c.id = s.customer_id
	           JOIN vehicles v ON v.id = s.vehicle_id
	           JOIN salespeople sp ON sp.id = s.salesperson_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SaleDetail, 0)
	for rows.Next() {
		var d SaleDetail
		if err := rows.Scan(
			&d.ID, &d.SoldAt,
			&d.Customer.ID, &d.Customer.Name, &d.Customer.Email,
			&d.Vehicle.ID, &d.Vehicle.Brand, &d.Vehicle.Model, &d.Vehicle.Year,
			&d.Salesperson.ID, &d.Salesperson.Name, &d.Salesperson.Department,
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
