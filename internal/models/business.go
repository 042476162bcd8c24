package models

import (
	"github.com/shopspring/decimal"
)

// Business is the row shape of the businesses table.
// The three investor-ID sets are text[] columns mutated only via atomic array
// operations, never by full-row overwrite.
type Business struct {
	BusinessID          string          `db:"business_id"`
	EntrepreneurID      string          `db:"entrepreneur_id"`
	Name                string          `db:"name"`
	Description         string          `db:"description"`
	Category            string          `db:"category"`
	FundingGoal         decimal.Decimal `db:"funding_goal"`
	FundingRaised       decimal.Decimal `db:"funding_raised"`
	Equity              decimal.Decimal `db:"equity"`
	LikedByInvestors    []string        `db:"liked_by_investors"`
	DislikedByInvestors []string        `db:"disliked_by_investors"`
	InterestedInvestors []string        `db:"interested_investors"`
	IsActive            bool            `db:"is_active"`
	IsApproved          bool            `db:"is_approved"`
	AuditFields
}
