package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autolot/dealership-api/internal/model"
	"github.com/autolot/dealership-api/internal/queue"
	"github.com/autolot/dealership-api/internal/repository"
)

// newTestAPI wires an API against a sqlmock-backed database.
func newTestAPI(t *testing.T) (*API, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	api := NewAPI(
		repository.NewVehicleRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewSalespersonRepo(db),
		repository.NewSaleRepo(db),
		repository.NewFinancingRepo(db),
		repository.NewMaintenanceRepo(db),
		repository.NewTestDriveRepo(db),
	)
	return api, mock
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRecordSaleHandler(t *testing.T) {
	api, mock := newTestAPI(t)

	var published *queue.SaleRecordedEvent
	api.PublishSale = func(ctx context.Context, ev queue.SaleRecordedEvent) error {
		published = &ev
		return nil
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicles SET available = 0 WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sales").
		WithArgs(int64(1), int64(3), int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/sales",
		`{"customer_id":1,"vehicle_id":3,"salesperson_id":2}`)
	require.NoError(t, api.RecordSale(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var sale model.Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
	assert.Equal(t, uint64(7), sale.ID)

	require.NotNil(t, published)
	assert.Equal(t, uint64(7), published.SaleID)
	assert.Equal(t, uint64(3), published.VehicleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A broker failure is logged and ignored: the sale is still created.
func TestRecordSaleHandlerPublishFailureIgnored(t *testing.T) {
	api, mock := newTestAPI(t)
	api.PublishSale = func(ctx context.Context, ev queue.SaleRecordedEvent) error {
		return assert.AnError
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicles SET available = 0 WHERE id").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sales").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/sales",
		`{"customer_id":1,"vehicle_id":3,"salesperson_id":2}`)
	require.NoError(t, api.RecordSale(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSaleHandlerValidation(t *testing.T) {
	api, _ := newTestAPI(t)

	// missing salesperson_id: rejected before any write
	c, rec := newJSONContext(t, http.MethodPost, "/v1/sales",
		`{"customer_id":1,"vehicle_id":3}`)
	require.NoError(t, api.RecordSale(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestRevertSaleHandlerNotFound(t *testing.T) {
	api, mock := newTestAPI(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vehicle_id FROM sales WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodDelete, "/v1/sales/99", "")
	c.SetPath("/v1/sales/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, api.RevertSale(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "sale not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevertSaleHandler(t *testing.T) {
	api, mock := newTestAPI(t)

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

	c, rec := newJSONContext(t, http.MethodDelete, "/v1/sales/7", "")
	c.SetPath("/v1/sales/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, api.RevertSale(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sale cancelled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An empty sales table serializes as an empty JSON array, not null
// and not an error.
func TestListSalesHandlerEmpty(t *testing.T) {
	api, mock := newTestAPI(t)

	mock.ExpectQuery("FROM sales s").WillReturnRows(sqlmock.NewRows([]string{
		"id", "sold_at",
		"c.id", "c.name", "c.email",
		"v.id", "v.brand", "v.model", "v.year",
		"sp.id", "sp.name", "sp.department",
	}))

	c, rec := newJSONContext(t, http.MethodGet, "/v1/sales", "")
	require.NoError(t, api.ListSales(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
