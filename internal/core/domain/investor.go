package domain

import (
	"github.com/shopspring/decimal"
)

// InvestorProfile holds an investor's identity and swipe-batch preferences.
// Investors maintain their own profile; a missing profile just means the
// batch is unfiltered and amounts are unbounded.
type InvestorProfile struct {
	InvestorID string `json:"investorID"` // Matches the identity provider subject
	Name       string `json:"name"`

	// InvestmentFocus is the stored category allow-list used to shape the next
	// swipe batch when no explicit categories are passed.
	InvestmentFocus []string        `json:"investmentFocus"`
	MinInvestment   decimal.Decimal `json:"minInvestment"`
	MaxInvestment   decimal.Decimal `json:"maxInvestment"`

	// InvestmentIDs is the registry of investments created by this investor,
	// appended inside the investment-creation transaction.
	InvestmentIDs []string `json:"investmentIDs"`
	AuditFields
}
