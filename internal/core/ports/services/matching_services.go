package services

import (
	"context"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
)

// MatchingSvcFacade maintains the bipartite like/dislike relation between
// investors and businesses and computes mutual matches.
type MatchingSvcFacade interface {
	// GetNextBusinessBatch returns up to batchSize active, approved businesses the
	// investor has not yet swiped on. An explicit categories argument overrides the
	// investor's stored investment focus; when neither is present no category
	// filter applies. Returns ErrNoMoreBusinesses when the filtered set is empty.
	GetNextBusinessBatch(ctx context.Context, investorID string, batchSize int, categories []string) ([]domain.Business, error)

	// SwipeRight records a like and evaluates match status. Idempotent.
	SwipeRight(ctx context.Context, investorID string, businessID string) (domain.SwipeOutcome, error)

	// SwipeLeft records a dislike, superseding a prior like. Idempotent.
	SwipeLeft(ctx context.Context, investorID string, businessID string) error

	// GetEntrepreneurMatches computes the derived match view across all businesses
	// owned by the entrepreneur.
	GetEntrepreneurMatches(ctx context.Context, entrepreneurID string) ([]domain.Match, error)

	// GetInvestorMatches computes the derived match view across all businesses the
	// investor has liked.
	GetInvestorMatches(ctx context.Context, investorID string) ([]domain.Match, error)

	// MarkInvestorInterest records entrepreneur-side interest in an investor on one
	// of the entrepreneur's businesses. Owner-only.
	MarkInvestorInterest(ctx context.Context, entrepreneurID string, businessID string, investorID string) error
}
