package dto

import (
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBusinessRequest defines the data needed to create a new business listing.
type CreateBusinessRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required"`
	FundingGoal decimal.Decimal `json:"fundingGoal" binding:"required"`
	Equity      decimal.Decimal `json:"equity" binding:"required"`
}

// UpdateBusinessRequest defines the content fields an entrepreneur may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBusinessRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// BusinessResponse defines the data returned for a business listing.
type BusinessResponse struct {
	BusinessID     string          `json:"businessID"`
	EntrepreneurID string          `json:"entrepreneurID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	FundingGoal    decimal.Decimal `json:"fundingGoal"`
	FundingRaised  decimal.Decimal `json:"fundingRaised"`
	Equity         decimal.Decimal `json:"equity"`
	LikeCount      int             `json:"likeCount"`
	IsActive       bool            `json:"isActive"`
	IsApproved     bool            `json:"isApproved"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO.
// The raw investor-ID sets are intentionally not exposed.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:     b.BusinessID,
		EntrepreneurID: b.EntrepreneurID,
		Name:           b.Name,
		Description:    b.Description,
		Category:       b.Category,
		FundingGoal:    b.FundingGoal,
		FundingRaised:  b.FundingRaised,
		Equity:         b.Equity,
		LikeCount:      len(b.LikedByInvestors),
		IsActive:       b.IsActive,
		IsApproved:     b.IsApproved,
		CreatedAt:      b.CreatedAt,
		LastUpdatedAt:  b.LastUpdatedAt,
	}
}

// ToListBusinessResponse converts a slice of domain.Business to response DTOs
func ToListBusinessResponse(businesses []domain.Business) []BusinessResponse {
	res := make([]BusinessResponse, len(businesses))
	for i, b := range businesses {
		res[i] = ToBusinessResponse(&b)
	}
	return res
}
