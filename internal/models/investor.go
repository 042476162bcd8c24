package models

import (
	"github.com/shopspring/decimal"
)

// Investor is the row shape of the investors table.
type Investor struct {
	InvestorID      string          `db:"investor_id"`
	Name            string          `db:"name"`
	InvestmentFocus []string        `db:"investment_focus"`
	MinInvestment   decimal.Decimal `db:"min_investment"`
	MaxInvestment   decimal.Decimal `db:"max_investment"`
	InvestmentIDs   []string        `db:"investment_ids"`
	AuditFields
}
