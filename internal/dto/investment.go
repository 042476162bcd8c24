package dto

import (
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to create an investment.
type CreateInvestmentRequest struct {
	BusinessID string          `json:"businessID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID     string                  `json:"investmentID"`
	InvestorID       string                  `json:"investorID"`
	BusinessID       string                  `json:"businessID"`
	Amount           decimal.Decimal         `json:"amount"`
	EquityPercentage decimal.Decimal         `json:"equityPercentage"`
	Status           domain.InvestmentStatus `json:"status"`
	CreatedAt        time.Time               `json:"createdAt"`
	CompletedAt      *time.Time              `json:"completedAt,omitempty"`
}

// ToInvestmentResponse converts a domain.Investment to InvestmentResponse DTO
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:     inv.InvestmentID,
		InvestorID:       inv.InvestorID,
		BusinessID:       inv.BusinessID,
		Amount:           inv.Amount,
		EquityPercentage: inv.EquityPercentage,
		Status:           inv.Status,
		CreatedAt:        inv.CreatedAt,
		CompletedAt:      inv.CompletedAt,
	}
}

// ToInvestmentResponses converts a slice of domain.Investment to response DTOs
func ToInvestmentResponses(investments []domain.Investment) []InvestmentResponse {
	res := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		res[i] = ToInvestmentResponse(&inv)
	}
	return res
}

// ListInvestmentsParams holds parameters for listing an investor's investments.
type ListInvestmentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListInvestmentsResponse is the paginated listing payload.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// PotentialReturnRequest defines the inputs for a what-if projection.
type PotentialReturnRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PotentialReturnResponse is the projection payload.
type PotentialReturnResponse struct {
	EquityPercentage decimal.Decimal `json:"equityPercentage"`
	Valuation        decimal.Decimal `json:"valuation"`
	EstimatedValue   decimal.Decimal `json:"estimatedValue"`
}

// ToPotentialReturnResponse converts a domain.PotentialReturn to its DTO
func ToPotentialReturnResponse(pr *domain.PotentialReturn) PotentialReturnResponse {
	return PotentialReturnResponse{
		EquityPercentage: pr.EquityPercentage,
		Valuation:        pr.Valuation,
		EstimatedValue:   pr.EstimatedValue,
	}
}
