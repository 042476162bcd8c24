package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus indicates the state of an investment.
// PENDING is the initial state; COMPLETED and CANCELLED are terminal and mutually exclusive.
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "PENDING"
	InvestmentStatusCompleted InvestmentStatus = "COMPLETED"
	InvestmentStatusCancelled InvestmentStatus = "CANCELLED"
)

// IsTerminal reports whether the status permits no further transitions.
func (s InvestmentStatus) IsTerminal() bool {
	return s == InvestmentStatusCompleted || s == InvestmentStatusCancelled
}

// PotentialReturn is the result of a what-if projection for an investment
// amount against a business's funding terms. Never persisted.
type PotentialReturn struct {
	EquityPercentage decimal.Decimal `json:"equityPercentage"`
	Valuation        decimal.Decimal `json:"valuation"`
	EstimatedValue   decimal.Decimal `json:"estimatedValue"`
}

// Investment represents a single funding commitment by an investor against a business.
// It is owned exclusively by the investor who created it; the business references it
// only through its funding total.
type Investment struct {
	InvestmentID     string           `json:"investmentID"` // Primary Key (UUID)
	InvestorID       string           `json:"investorID"`
	BusinessID       string           `json:"businessID"`
	Amount           decimal.Decimal  `json:"amount"`           // > 0
	EquityPercentage decimal.Decimal  `json:"equityPercentage"` // Pro-rata slice, rounded to 2 decimal places
	Status           InvestmentStatus `json:"status"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"` // Set only on completion
	AuditFields
}
