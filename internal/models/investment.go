package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus mirrors domain.InvestmentStatus for persistence; the
// mapping layer converts between the two by value.
type InvestmentStatus string

// Investment is the row shape of the investments table.
type Investment struct {
	InvestmentID     string           `db:"investment_id"`
	InvestorID       string           `db:"investor_id"`
	BusinessID       string           `db:"business_id"`
	Amount           decimal.Decimal  `db:"amount"`
	EquityPercentage decimal.Decimal  `db:"equity_percentage"`
	Status           InvestmentStatus `db:"status"`
	CompletedAt      *time.Time       `db:"completed_at"` // Nullable
	AuditFields
}
