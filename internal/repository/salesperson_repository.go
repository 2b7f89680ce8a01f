package repository

import (
	"context"
	"database/sql"

	"github.com/autolot/dealership-api/internal/model"
)

// SalespersonRepo encapsulates all database queries related to sales
// staff.
type SalespersonRepo struct {
	db *sql.DB
}

// NewSalespersonRepo constructs a SalespersonRepo with the provided DB
// handle.
func NewSalespersonRepo(db *sql.DB) *SalespersonRepo {
	return &SalespersonRepo{db: db}
}

// Create inserts a new salesperson.  On success the ID field is
// populated with the auto-generated value.
func (r *SalespersonRepo) Create(ctx context.Context, s *model.Salesperson) error {
	const q = "INSERT INTO salespeople (name, department) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Department)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListAll returns every salesperson ordered by id.
func (r *SalespersonRepo) ListAll(ctx context.Context) ([]*model.Salesperson, error) {
	const q = "SELECT id, name, department FROM salespeople ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Salesperson, 0)
	for rows.Next() {
		s := new(model.Salesperson)
		if err := rows.Scan(&s.ID, &s.Name, &s.Department); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a salesperson by id.  Idempotent; no cascade.
func (r *SalespersonRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM salespeople WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
