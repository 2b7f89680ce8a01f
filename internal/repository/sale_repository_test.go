package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*SaleRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSaleRepo(db), mock
}

// Recording a sale flips the vehicle to unavailable and inserts the
// sale row inside one transaction, in that order.
func TestRecordSale(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicles SET available = 0 WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sales").
		WithArgs(int64(1), int64(3), int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	sale, err := repo.Record(context.Background(), 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), sale.ID)
	assert.Equal(t, uint64(1), sale.CustomerID)
	assert.Equal(t, uint64(3), sale.VehicleID)
	assert.Equal(t, uint64(2), sale.SalespersonID)
	assert.WithinDuration(t, time.Now().UTC(), sale.SoldAt, 5*time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// If the sale insert fails the transaction rolls back, so the
// availability flip from step one never persists and the invariant
// holds.
func TestRecordSaleRollsBackOnInsertFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicles SET available = 0 WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sales").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Record(context.Background(), 1, 3, 2)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reverting a sale restores the vehicle and deletes the sale row in
// one transaction.
func TestRevertSale(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vehicle_id FROM sales WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}).AddRow(3))
	mock.ExpectExec("UPDATE vehicles SET available = 1 WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM sales WHERE id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Revert(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Reverting an unknown sale fails with ErrSaleNotFound and performs
// no writes: no vehicle availability flag changes.
func TestRevertSaleNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vehicle_id FROM sales WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))
	mock.ExpectRollback()

	err := repo.Revert(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSaleNotFound)
	// ExpectationsWereMet confirms no UPDATE or DELETE was attempted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Record then revert on the same vehicle is a round trip: the vehicle
// ends available and the sale row is gone.
func TestRecordThenRevertRoundTrip(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicles SET available = 0 WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sales").
		WithArgs(int64(1), int64(3), int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vehicle_id FROM sales WHERE id").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}).AddRow(3))
	mock.ExpectExec("UPDATE vehicles SET available = 1 WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM sales WHERE id").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sale, err := repo.Record(context.Background(), 1, 3, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Revert(context.Background(), sale.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The listing query inner-joins sales with customers, vehicles and
// salespeople: a sale whose vehicle (or any other reference) has been
// deleted produces no row at all, rather than a partial row or an
// error.  Deleting a referenced vehicle therefore silently shrinks
// this listing, which is the documented join semantics.
func TestListSaleDetails(t *testing.T) {
	repo, mock := newMock(t)

	soldAt := time.Date(2026, 8, 12, 15, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "sold_at",
		"c.id", "c.name", "c.email",
		"v.id", "v.brand", "v.model", "v.year",
		"sp.id", "sp.name", "sp.department",
	}).AddRow(1, soldAt, 4, "Ana Souza", "ana@example.com", 3, "Fiat", "Argo", 2024, 2, "Carlos Lima", "New Cars")

	mock.ExpectQuery("FROM sales s").WillReturnRows(rows)

	out, err := repo.ListDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, uint64(1), out[0].ID)
	assert.Equal(t, "Ana Souza", out[0].Customer.Name)
	assert.Equal(t, "Argo", out[0].Vehicle.Model)
	assert.Equal(t, 2024, out[0].Vehicle.Year)
	assert.Equal(t, "New Cars", out[0].Salesperson.Department)
	assert.Equal(t, soldAt, out[0].SoldAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Zero sales is an empty slice, not nil and not an error, so the
// transport layer serializes it as [].
func TestListSaleDetailsEmpty(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM sales s").WillReturnRows(sqlmock.NewRows([]string{
		"id", "sold_at",
		"c.id", "c.name", "c.email",
		"v.id", "v.brand", "v.model", "v.year",
		"sp.id", "sp.name", "sp.department",
	}))

	out, err := repo.ListDetails(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
