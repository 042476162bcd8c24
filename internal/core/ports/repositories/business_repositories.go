package repositories

import (
	"context"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BusinessReader defines read operations for business listings
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business by its unique identifier.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinessesByEntrepreneur retrieves all businesses owned by the entrepreneur.
	ListBusinessesByEntrepreneur(ctx context.Context, entrepreneurID string) ([]domain.Business, error)

	// ListBusinessesForInvestor retrieves up to limit active, approved businesses the
	// investor has not yet liked or disliked, optionally filtered by category.
	ListBusinessesForInvestor(ctx context.Context, investorID string, categories []string, limit int) ([]domain.Business, error)

	// ListBusinessesLikedBy retrieves all businesses whose like set contains the investor.
	ListBusinessesLikedBy(ctx context.Context, investorID string) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business listings
type BusinessWriter interface {
	// SaveBusiness persists a new business.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// UpdateBusiness updates an existing business's content fields.
	UpdateBusiness(ctx context.Context, business domain.Business) error

	// DeactivateBusiness marks a business as inactive. Businesses are never hard-deleted.
	DeactivateBusiness(ctx context.Context, businessID string, userID string, now time.Time) error
}

// BusinessSwipeSupport defines the atomic set mutations backing swipes.
// Each operation is a single guarded statement so concurrent swipes on the
// same business never clobber each other's updates.
type BusinessSwipeSupport interface {
	// AddLike adds the investor to the like set if absent, removing a prior dislike.
	AddLike(ctx context.Context, businessID string, investorID string, now time.Time) error

	// AddDislike adds the investor to the dislike set if absent, removing a prior like.
	AddDislike(ctx context.Context, businessID string, investorID string, now time.Time) error

	// AddInterestedInvestor records entrepreneur-side interest in the investor.
	AddInterestedInvestor(ctx context.Context, businessID string, investorID string, now time.Time) error
}

// BusinessTransactionSupport defines operations used inside investment transactions
type BusinessTransactionSupport interface {
	// FindBusinessByIDForUpdate selects a business and locks it for update within a transaction.
	FindBusinessByIDForUpdate(ctx context.Context, tx pgx.Tx, businessID string) (*domain.Business, error)

	// IncrementFundingRaisedInTx applies a funding increment within the given transaction.
	IncrementFundingRaisedInTx(ctx context.Context, tx pgx.Tx, businessID string, amount decimal.Decimal, userID string, now time.Time) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
	BusinessSwipeSupport
	BusinessTransactionSupport
}

// BusinessRepositoryWithTx extends BusinessRepositoryFacade with transaction capabilities
type BusinessRepositoryWithTx interface {
	BusinessRepositoryFacade
	TransactionManager
}
