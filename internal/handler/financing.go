package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/autolot/dealership-api/internal/model"
)

// CreateFinancingPlan handles POST /v1/financing-plans.  The
// installment amount is never accepted from the client: it is derived
// from total, rate and installment count and rounded to two decimal
// places here, before the insert.
func (a *API) CreateFinancingPlan(c echo.Context) error {
	var body struct {
		SaleID       uint64  `json:"sale_id"`
		TotalAmount  float64 `json:"total_amount"`
		Installments int     `json:"installments"`
		InterestRate float64 `json:"interest_rate"`
		Bank         string  `json:"bank"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	bank := strings.TrimSpace(body.Bank)
	if body.SaleID == 0 || bank == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sale_id and bank are required"})
	}
	if body.TotalAmount <= 0 || body.Installments <= 0 || body.InterestRate < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "total_amount and installments must be positive, interest_rate non-negative"})
	}
	p := &model.FinancingPlan{
		SaleID:            body.SaleID,
		TotalAmount:       body.TotalAmount,
		Installments:      body.Installments,
		InstallmentAmount: model.InstallmentAmount(body.TotalAmount, body.InterestRate, body.Installments),
		InterestRate:      body.InterestRate,
		Bank:              bank,
	}
	if err := a.FinancingRepo.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

// ListFinancingPlans handles GET /v1/financing-plans.  Plans are
// joined through their sale with customer and vehicle names; plans
// whose sale has been reverted are omitted (inner join).
func (a *API) ListFinancingPlans(c echo.Context) error {
	items, err := a.FinancingRepo.ListDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteFinancingPlan handles DELETE /v1/financing-plans/:id.
// Idempotent.
func (a *API) DeleteFinancingPlan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := a.FinancingRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "financing plan removed"})
}
