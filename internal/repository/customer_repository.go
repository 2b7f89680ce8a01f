package repository

import (
	"context"
	"database/sql"

	"github.com/autolot/dealership-api/internal/model"
)

// CustomerRepo encapsulates all database queries related to customers.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the provided DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create inserts a new customer.  The unique index on customers.email
// rejects duplicates; that driver error is mapped to ErrDuplicateEmail
// so handlers can answer with a conflict status.  On success the ID
// field is populated and the customer set is otherwise unchanged on
// failure.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	const q = "INSERT INTO customers (name, email) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// ListAll returns every customer ordered by id.  With withoutActiveSale
// set, customers that currently appear on a sale are excluded; the
// sales screen uses this to offer only customers without an active
// sale.
func (r *CustomerRepo) ListAll(ctx context.Context, withoutActiveSale bool) ([]*model.Customer, error) {
	q := "SELECT id, name, email FROM customers"
	if withoutActiveSale {
		q += " WHERE id NOT IN (SELECT customer_id FROM sales)"
	}
	q += " ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Customer, 0)
	for rows.Next() {
		c := new(model.Customer)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a customer by id.  Idempotent; no cascade.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM customers WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
