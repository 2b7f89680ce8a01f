package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/model"
	"github.com/autolot/dealership-api/internal/repository"
)

// CreateCustomer handles POST /v1/customers.  Email uniqueness is
// enforced by the database; a duplicate is reported as a conflict and
// leaves the customer set unchanged.
func (a *API) CreateCustomer(c echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and a valid email are required"})
	}
	cust := &model.Customer{Name: name, Email: email}
	if err := a.CustomerRepo.Create(c.Request().Context(), cust); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cust)
}

// ListCustomers handles GET /v1/customers.  With
// ?without_active_sale=true only customers that do not appear on any
// sale are returned, which is what the sale form needs.
func (a *API) ListCustomers(c echo.Context) error {
	withoutSale := strings.EqualFold(c.QueryParam("without_active_sale"), "true")
	items, err := a.CustomerRepo.ListAll(c.Request().Context(), withoutSale)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteCustomer handles DELETE /v1/customers/:id.  Idempotent, no
// cascade: sales or records referencing the customer keep a dangling
// reference and drop out of joined listings.
func (a *API) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.CustomerRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "customer removed"})
}
