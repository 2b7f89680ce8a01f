package handler // handler defines http handlers

import (
	"context" // context is forwarded to the queue publisher
	"errors"  // errors provides sentinel values used in parseID
	"strconv" // strconv converts path parameters to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/autolot/dealership-api/internal/queue"      // queue holds event payload types
	"github.com/autolot/dealership-api/internal/repository" // repository holds data access layer
)

// API bundles the repositories behind every endpoint group.  All
// methods live in the entity-specific files of this package.  The
// optional PublishSale hook is invoked best-effort after a sale is
// recorded; a nil hook disables publishing (tests, broker-less
// deployments).
type API struct {
	VehicleRepo     *repository.VehicleRepo
	CustomerRepo    *repository.CustomerRepo
	SalespersonRepo *repository.SalespersonRepo
	SaleRepo        *repository.SaleRepo
	FinancingRepo   *repository.FinancingRepo
	MaintenanceRepo *repository.MaintenanceRepo
	TestDriveRepo   *repository.TestDriveRepo

	PublishSale func(ctx context.Context, ev queue.SaleRecordedEvent) error
}

// NewAPI constructs an API and panics if any repository is nil.
func NewAPI(
	vehicles *repository.VehicleRepo,
	customers *repository.CustomerRepo,
	salespeople *repository.SalespersonRepo,
	sales *repository.SaleRepo,
	financing *repository.FinancingRepo,
	maintenance *repository.MaintenanceRepo,
	testDrives *repository.TestDriveRepo,
) *API {
	if vehicles == nil || customers == nil || salespeople == nil || sales == nil ||
		financing == nil || maintenance == nil || testDrives == nil {
		panic("nil repository passed to NewAPI")
	}
	return &API{
		VehicleRepo:     vehicles,
		CustomerRepo:    customers,
		SalespersonRepo: salespeople,
		SaleRepo:        sales,
		FinancingRepo:   financing,
		MaintenanceRepo: maintenance,
		TestDriveRepo:   testDrives,
	}
}

// parseID extracts the numeric :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
