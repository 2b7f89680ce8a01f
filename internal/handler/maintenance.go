package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/model"
)

// CreateMaintenanceRecord handles POST /v1/maintenance-records.
// Records start Pending with a server-assigned timestamp.
func (a *API) CreateMaintenanceRecord(c echo.Context) error {
	var body struct {
		VehicleID   uint64  `json:"vehicle_id"`
		CustomerID  uint64  `json:"customer_id"`
		Type        string  `json:"type"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	svcType := strings.TrimSpace(body.Type)
	desc := strings.TrimSpace(body.Description)
	if body.VehicleID == 0 || body.CustomerID == 0 || svcType == "" || desc == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id, customer_id, type and description are required"})
	}
	if body.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must not be negative"})
	}
	m := &model.MaintenanceRecord{
		VehicleID:   body.VehicleID,
		CustomerID:  body.CustomerID,
		ServiceType: svcType,
		Description: desc,
		Amount:      body.Amount,
	}
	if err := a.MaintenanceRepo.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

// ListMaintenanceRecords handles GET /v1/maintenance-records, newest
// first.
func (a *API) ListMaintenanceRecords(c echo.Context) error {
	items, err := a.MaintenanceRepo.ListDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateMaintenanceStatus handles PUT /v1/maintenance-records/:id.
// Only the status field is patchable; everything else is fixed at
// creation.
func (a *API) UpdateMaintenanceStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidMaintenanceStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be Pending or Completed"})
	}
	if err := a.MaintenanceRepo.UpdateStatus(c.Request().Context(), id, body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// DeleteMaintenanceRecord handles DELETE /v1/maintenance-records/:id.
// Idempotent.
func (a *API) DeleteMaintenanceRecord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.MaintenanceRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "maintenance record removed"})
}
