package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/model"
)

// CreateSalesperson handles POST /v1/salespeople.
func (a *API) CreateSalesperson(c echo.Context) error {
	var body struct {
		Name       string `json:"name"`
		Department string `json:"department"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	dept := strings.TrimSpace(body.Department)
	if name == "" || dept == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and department are required"})
	}
	s := &model.Salesperson{Name: name, Department: dept}
	if err := a.SalespersonRepo.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// ListSalespeople handles GET /v1/salespeople.
func (a *API) ListSalespeople(c echo.Context) error {
	items, err := a.SalespersonRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteSalesperson handles DELETE /v1/salespeople/:id.  Idempotent.
func (a *API) DeleteSalesperson(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.SalespersonRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "salesperson removed"})
}
