// Package repository contains data access logic separated from HTTP
// handlers.  Each entity has its own repository bound to a *sql.DB
// injected at startup; nothing in this package holds global state.
// Sentinel errors let handlers map failure scenarios to HTTP status
// codes without inspecting driver internals.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateEmail is returned when inserting a customer whose email
// address already exists.  Handlers should translate this into an
// HTTP 409 response.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrSaleNotFound is returned when reverting a sale that does not
// exist.  Handlers should translate this into an HTTP 404 response.
var ErrSaleNotFound = errors.New("sale not found")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (code 1062), which is how the unique constraint on customers.email
// surfaces from the driver.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
