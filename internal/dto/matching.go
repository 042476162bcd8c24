package dto

import (
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
)

// NextBatchParams holds query parameters for the next swipe batch.
type NextBatchParams struct {
	BatchSize  int      `form:"batchSize,default=10"`
	Categories []string `form:"categories"`
}

// SwipeResponse reports the outcome of a right swipe.
type SwipeResponse struct {
	Outcome domain.SwipeOutcome `json:"outcome"`
}

// MatchResponse is one entry of the derived match view.
type MatchResponse struct {
	BusinessID     string `json:"businessID"`
	BusinessName   string `json:"businessName"`
	EntrepreneurID string `json:"entrepreneurID"`
	InvestorID     string `json:"investorID"`
}

// MarkInterestRequest records entrepreneur-side interest in an investor.
type MarkInterestRequest struct {
	InvestorID string `json:"investorID" binding:"required"`
}

// ToMatchResponse converts a domain.Match to its DTO
func ToMatchResponse(m domain.Match) MatchResponse {
	return MatchResponse{
		BusinessID:     m.BusinessID,
		BusinessName:   m.BusinessName,
		EntrepreneurID: m.EntrepreneurID,
		InvestorID:     m.InvestorID,
	}
}

// ToMatchResponses converts a slice of domain.Match to response DTOs
func ToMatchResponses(matches []domain.Match) []MatchResponse {
	res := make([]MatchResponse, len(matches))
	for i, m := range matches {
		res[i] = ToMatchResponse(m)
	}
	return res
}
