package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/queue"
	"github.com/autolot/dealership-api/internal/repository"
)

// RecordSale handles POST /v1/sales.  The repository applies both
// writes (vehicle availability flip + sale insert) inside one
// transaction; a failure leaves the vehicle untouched.  Referenced
// ids are deliberately not validated for existence beforehand — a
// dangling reference drops out of the joined listing instead.
func (a *API) RecordSale(c echo.Context) error {
	var body struct {
		CustomerID    uint64 `json:"customer_id"`
		VehicleID     uint64 `json:"vehicle_id"`
		SalespersonID uint64 `json:"salesperson_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CustomerID == 0 || body.VehicleID == 0 || body.SalespersonID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_id, vehicle_id and salesperson_id are required"})
	}
	sale, err := a.SaleRepo.Record(c.Request().Context(), body.CustomerID, body.VehicleID, body.SalespersonID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if a.PublishSale != nil {
		// Best effort: a broker outage must not fail the sale.
		ev := queue.SaleRecordedEvent{
			SaleID:        sale.ID,
			CustomerID:    sale.CustomerID,
			VehicleID:     sale.VehicleID,
			SalespersonID: sale.SalespersonID,
			SoldAt:        sale.SoldAt.Format(time.RFC3339),
		}
		if err := a.PublishSale(c.Request().Context(), ev); err != nil {
			c.Logger().Warnf("sale event publish failed: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, sale)
}

// ListSales handles GET /v1/sales.  Each row nests the customer,
// vehicle and salesperson for display.  Sales with a deleted
// reference are omitted (inner join).
func (a *API) ListSales(c echo.Context) error {
	items, err := a.SaleRepo.ListDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// RevertSale handles DELETE /v1/sales/:id.  Unlike the other delete
// endpoints this one is not idempotent: cancelling an unknown sale is
// a 404, because the vehicle to restore cannot be determined.
func (a *API) RevertSale(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.SaleRepo.Revert(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sale not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "sale cancelled"})
}
