package domain

import (
	"github.com/shopspring/decimal"
)

// Business represents a listing created by an entrepreneur seeking funding.
// This is the primary representation used by services.
type Business struct {
	BusinessID     string          `json:"businessID"`     // Primary Key (UUID)
	EntrepreneurID string          `json:"entrepreneurID"` // Owning entrepreneur
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	FundingGoal    decimal.Decimal `json:"fundingGoal"`   // Must be > 0
	FundingRaised  decimal.Decimal `json:"fundingRaised"` // >= 0; overfunding is tolerated
	Equity         decimal.Decimal `json:"equity"`        // Percentage of the company offered, 0-100

	// LikedByInvestors and DislikedByInvestors are disjoint sets of investor IDs,
	// mutated only through atomic set operations in the repository.
	LikedByInvestors    []string `json:"likedByInvestors"`
	DislikedByInvestors []string `json:"dislikedByInvestors"`

	// InterestedInvestors is the entrepreneur-side interest set; a like from an
	// investor in this set constitutes a mutual match.
	InterestedInvestors []string `json:"interestedInvestors"`

	IsActive   bool `json:"isActive"`   // Soft-deactivation flag; businesses are never hard-deleted
	IsApproved bool `json:"isApproved"` // Moderation flag
	AuditFields
}

// IsLikedBy reports whether the given investor has liked this business.
func (b *Business) IsLikedBy(investorID string) bool {
	return containsID(b.LikedByInvestors, investorID)
}

// IsDislikedBy reports whether the given investor has disliked this business.
func (b *Business) IsDislikedBy(investorID string) bool {
	return containsID(b.DislikedByInvestors, investorID)
}

// HasInterestIn reports whether the owning entrepreneur has marked interest in the investor.
func (b *Business) HasInterestIn(investorID string) bool {
	return containsID(b.InterestedInvestors, investorID)
}

// IsMatchedWith reports whether the business and the investor form a mutual match:
// the investor liked the business and the entrepreneur marked interest in the investor.
func (b *Business) IsMatchedWith(investorID string) bool {
	return b.IsLikedBy(investorID) && b.HasInterestIn(investorID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
