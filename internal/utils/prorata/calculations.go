package prorata

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// equityScale is the precision investments are quoted at. Equity percentages
// are rounded half-up to 2 decimal places; the raw ratio is never stored, so
// repeated reads always agree on the same figure.
const equityScale = 2

var hundred = decimal.NewFromInt(100)

// EquityPercentage computes the linear pro-rata equity slice for an investment:
// (amount / fundingGoal) * equityOffered. Investing the full funding goal yields
// the full offered equity; partial amounts yield a proportional slice.
// This is used in both services and tests to ensure consistent allocation logic.
func EquityPercentage(amount, fundingGoal, equityOffered decimal.Decimal) (decimal.Decimal, error) {
	if fundingGoal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("funding goal must be positive, got %s", fundingGoal.String())
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount.String())
	}
	pct := amount.Div(fundingGoal).Mul(equityOffered)
	return pct.Round(equityScale), nil
}

// Valuation derives the implied company valuation from the funding terms:
// fundingGoal / (equityOffered / 100). Undefined when no equity is offered.
func Valuation(fundingGoal, equityOffered decimal.Decimal) (decimal.Decimal, error) {
	if equityOffered.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("equity offered must be positive, got %s", equityOffered.String())
	}
	return fundingGoal.Div(equityOffered.Div(hundred)), nil
}

// EstimatedValue computes the current value of an equity slice against a valuation.
func EstimatedValue(valuation, equityPercentage decimal.Decimal) decimal.Decimal {
	return valuation.Mul(equityPercentage.Div(hundred)).Round(equityScale)
}
