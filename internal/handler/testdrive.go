package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/model"
)

// CreateTestDrive handles POST /v1/test-drives.  Appointments start
// Scheduled; notes are optional.
func (a *API) CreateTestDrive(c echo.Context) error {
	var body struct {
		CustomerID    uint64  `json:"customer_id"`
		VehicleID     uint64  `json:"vehicle_id"`
		SalespersonID uint64  `json:"salesperson_id"`
		ScheduledAt   string  `json:"scheduled_at"`
		Notes         *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CustomerID == 0 || body.VehicleID == 0 || body.SalespersonID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_id, vehicle_id and salesperson_id are required"})
	}
	scheduledAt, err := time.Parse(time.RFC3339, strings.TrimSpace(body.ScheduledAt))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled_at must be an RFC3339 timestamp"})
	}
	t := &model.TestDrive{
		CustomerID:    body.CustomerID,
		VehicleID:     body.VehicleID,
		SalespersonID: body.SalespersonID,
		ScheduledAt:   scheduledAt.UTC(),
		Notes:         body.Notes,
	}
	if err := a.TestDriveRepo.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

// ListTestDrives handles GET /v1/test-drives, newest appointment
// first.
func (a *API) ListTestDrives(c echo.Context) error {
	items, err := a.TestDriveRepo.ListDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateTestDriveStatus handles PUT /v1/test-drives/:id.  Only the
// status field is patchable.
func (a *API) UpdateTestDriveStatus(c echo.Context) error {
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
	if !model.ValidTestDriveStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be Scheduled, Completed or Cancelled"})
	}
	if err := a.TestDriveRepo.UpdateStatus(c.Request().Context(), id, body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// DeleteTestDrive handles DELETE /v1/test-drives/:id.  Idempotent.
func (a *API) DeleteTestDrive(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.TestDriveRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "test drive removed"})
}
