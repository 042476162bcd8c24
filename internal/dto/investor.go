package dto

import (
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertInvestorProfileRequest defines the preference fields an investor may set.
type UpsertInvestorProfileRequest struct {
	Name            string          `json:"name" binding:"required"`
	InvestmentFocus []string        `json:"investmentFocus"`
	MinInvestment   decimal.Decimal `json:"minInvestment"`
	MaxInvestment   decimal.Decimal `json:"maxInvestment"`
}

// InvestorProfileResponse defines the data returned for an investor profile.
type InvestorProfileResponse struct {
	InvestorID      string          `json:"investorID"`
	Name            string          `json:"name"`
	InvestmentFocus []string        `json:"investmentFocus"`
	MinInvestment   decimal.Decimal `json:"minInvestment"`
	MaxInvestment   decimal.Decimal `json:"maxInvestment"`
	InvestmentIDs   []string        `json:"investmentIDs"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToInvestorProfileResponse converts a domain.InvestorProfile to its DTO
func ToInvestorProfileResponse(p *domain.InvestorProfile) InvestorProfileResponse {
	return InvestorProfileResponse{
		InvestorID:      p.InvestorID,
		Name:            p.Name,
		InvestmentFocus: p.InvestmentFocus,
		MinInvestment:   p.MinInvestment,
		MaxInvestment:   p.MaxInvestment,
		InvestmentIDs:   p.InvestmentIDs,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}
