package repository

import (
	"context"
	"database/sql"

	"github.com/autolot/dealership-api/internal/model"
)

// FinancingRepo encapsulates all database queries related to financing
// plans.  A plan references a sale but is independently owned: it
// survives the sale being reverted and simply drops out of the joined
// listing.
type FinancingRepo struct {
	db *sql.DB
}

// NewFinancingRepo constructs a FinancingRepo with the provided DB
// handle.
func NewFinancingRepo(db *sql.DB) *FinancingRepo {
	return &FinancingRepo{db: db}
}

// Create inserts a new financing plan.  InstallmentAmount must already
// be derived by the caller; the repository stores whatever it is
// given.  On success the ID field is populated.
func (r *FinancingRepo) Create(ctx context.Context, p *model.FinancingPlan) error {
	const q = `INSERT INTO financing_plans
	           (sale_id, total_amount, installments, installment_amount, interest_rate, bank)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		p.SaleID, p.TotalAmount, p.Installments, p.InstallmentAmount, p.InterestRate, p.Bank)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// FinancingPlanDetail is a financing plan joined through its sale with
// the customer and vehicle display fields.
type FinancingPlanDetail struct {
	model.FinancingPlan
	CustomerName string `json:"customer_name"`
	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model"`
}

// ListDetails returns all financing plans joined through sales with
// customer and vehicle names, ordered by id.  INNER JOIN semantics:
// plans whose sale has been reverted (or whose customer/vehicle is
// gone) are omitted.
func (r *FinancingRepo) ListDetails(ctx context.Context) ([]FinancingPlanDetail, error) {
	const q = `SELECT f.id, f.sale_id, f.total_amount, f.installments,
	                  f.installment_amount, f.interest_rate, f.bank,
	                  c.name, v.brand, v.model
	           FROM financing_plans f
	           JOIN sales s ON s.id = f.sale_id
	           JOIN customers c ON c.id = s.customer_id
	           JOIN vehicles v ON v.id = s.vehicle_id
	           ORDER BY f.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FinancingPlanDetail, 0)
	for rows.Next() {
		var d FinancingPlanDetail
		if err := rows.Scan(
			&d.ID, &d.SaleID, &d.TotalAmount, &d.Installments,
			&d.InstallmentAmount, &d.InterestRate, &d.Bank,
			&d.CustomerName, &d.VehicleBrand, &d.VehicleModel,
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

// Delete removes a financing plan by id.  Idempotent.
func (r *FinancingRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM financing_plans WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
