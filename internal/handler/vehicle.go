package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/model"
)

// CreateVehicle handles POST /v1/vehicles.  New vehicles always start
// available; the flag cannot be set at creation time.
func (a *API) CreateVehicle(c echo.Context) error {
	var body struct {
		Brand string `json:"brand"`
		Model string `json:"model"`
		Year  int    `json:"year"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Brand) == "" || strings.TrimSpace(body.Model) == "" || body.Year <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model and year are required"})
	}
	v := &model.Vehicle{
		Brand: strings.TrimSpace(body.Brand),
		Model: strings.TrimSpace(body.Model),
		Year:  body.Year,
	}
	if err := a.VehicleRepo.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, v)
}

// ListVehicles handles GET /v1/vehicles.  The optional
// ?available=true|false query parameter filters on the availability
// flag so the client can populate the sale form with sellable
// vehicles only.
func (a *API) ListVehicles(c echo.Context) error {
	var available *bool
	if raw := c.QueryParam("available"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available filter"})
		}
		available = &b
	}
	items, err := a.VehicleRepo.ListAll(c.Request().Context(), available)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateVehicle handles PUT /v1/vehicles/:id.  All four fields are
// replaced.  Flipping the availability flag here does not touch
// sales; only the sale endpoints maintain the availability invariant.
func (a *API) UpdateVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Brand     string `json:"brand"`
		Model     string `json:"model"`
		Year      int    `json:"year"`
		Available bool   `json:"available"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Brand) == "" || strings.TrimSpace(body.Model) == "" || body.Year <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, model and year are required"})
	}
	v := &model.Vehicle{
		ID:        id,
		Brand:     strings.TrimSpace(body.Brand),
		Model:     strings.TrimSpace(body.Model),
		Year:      body.Year,
		Available: body.Available,
	}
	if err := a.VehicleRepo.Update(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "vehicle updated"})
}

// DeleteVehicle handles DELETE /v1/vehicles/:id.  Idempotent: deleting
// a vehicle that does not exist still reports success.
func (a *API) DeleteVehicle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.VehicleRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "vehicle removed"})
}
