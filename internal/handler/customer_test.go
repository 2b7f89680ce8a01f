package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerHandler(t *testing.T) {
	api, mock := newTestAPI(t)

	mock.ExpectExec("INSERT INTO customers").
		WithArgs("Ana Souza", "ana@example.com").
		WillReturnResult(sqlmock.NewResult(5, 1))

	c, rec := newJSONContext(t, http.MethodPost, "/v1/customers",
		`{"name":"Ana Souza","email":"ana@example.com"}`)
	require.NoError(t, api.CreateCustomer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Duplicate email answers 409 Conflict.
func TestCreateCustomerHandlerDuplicate(t *testing.T) {
	api, mock := newTestAPI(t)

	mock.ExpectExec("INSERT INTO customers").
		WithArgs("Ana Souza", "ana@example.com").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	c, rec := newJSONContext(t, http.MethodPost, "/v1/customers",
		`{"name":"Ana Souza","email":"ana@example.com"}`)
	require.NoError(t, api.CreateCustomer(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Malformed input never reaches storage.
func TestCreateCustomerHandlerValidation(t *testing.T) {
	api, _ := newTestAPI(t)

	for _, body := range []string{
		`{"name":"","email":"ana@example.com"}`,
		`{"name":"Ana","email":""}`,
		`{"name":"Ana","email":"not-an-email"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/v1/customers", body)
		require.NoError(t, api.CreateCustomer(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestDeleteCustomerHandlerIdempotent(t *testing.T) {
	api, mock := newTestAPI(t)

	mock.ExpectExec("DELETE FROM customers WHERE id").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := newJSONContext(t, http.MethodDelete, "/v1/customers/42", "")
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, api.DeleteCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer removed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
