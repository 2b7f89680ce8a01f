package model

import "math"

// FinancingPlan describes how a sale is paid off in installments.
// The installment amount is derived, never taken from the client:
// total × (1 + rate/100) / installments, rounded to two decimal
// places at creation time.
//
// Fields:
//  ID                – primary key identifier.
//  SaleID            – sale being financed.
//  TotalAmount       – principal before interest.
//  Installments      – number of monthly installments.
//  InstallmentAmount – derived per-installment amount.
//  InterestRate      – flat interest rate in percent.
//  Bank              – financing bank name.
type FinancingPlan struct {
	ID                uint64  `json:"id"`                 // financing_plans.id
	SaleID            uint64  `json:"sale_id"`            // financing_plans.sale_id
	TotalAmount       float64 `json:"total_amount"`       // financing_plans.total_amount
	Installments      int     `json:"installments"`       // financing_plans.installments
	InstallmentAmount float64 `json:"installment_amount"` // financing_plans.installment_amount
	InterestRate      float64 `json:"interest_rate"`      // financing_plans.interest_rate
	Bank              string  `json:"bank"`               // financing_plans.bank
}

// InstallmentAmount computes the per-installment amount for a plan:
// total × (1 + rate/100) / installments, rounded to 2 decimal places.
// installments must be positive; callers validate before computing.
func InstallmentAmount(total, ratePercent float64, installments int) float64 {
	raw := total * (1 + ratePercent/100) / float64(installments)
	return math.Round(raw*100) / 100
}
