package services

import (
	"context"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
	"github.com/shopspring/decimal"
)

// InvestmentSvcFacade creates investments with pro-rata equity allocation,
// applies them atomically against business funding totals, and manages
// PENDING -> {COMPLETED, CANCELLED} transitions.
type InvestmentSvcFacade interface {
	// CreateInvestment validates the amount, computes the equity slice, and within a
	// single store transaction increments the business's funding total, persists the
	// PENDING investment, and registers it against the investor. Notifications are
	// dispatched post-commit, best-effort.
	CreateInvestment(ctx context.Context, investorID string, businessID string, amount decimal.Decimal) (*domain.Investment, error)

	// CancelInvestment transitions PENDING -> CANCELLED. Only the owning investor
	// may cancel. The funding increment applied at creation is not reversed.
	CancelInvestment(ctx context.Context, investmentID string, callerID string) error

	// CompleteInvestment transitions PENDING -> COMPLETED and stamps completedAt.
	CompleteInvestment(ctx context.Context, investmentID string) (*domain.Investment, error)

	// GetInvestmentByID retrieves an investment; only the owning investor may read it.
	GetInvestmentByID(ctx context.Context, investmentID string, callerID string) (*domain.Investment, error)

	// ListInvestorInvestments retrieves a token-paginated list of the caller's investments.
	ListInvestorInvestments(ctx context.Context, investorID string, params dto.ListInvestmentsParams) (*dto.ListInvestmentsResponse, error)

	// CalculatePotentialReturn projects the equity slice and estimated value for an
	// amount against a business's funding terms. Pure, no I/O. Fails when the
	// business offers no equity.
	CalculatePotentialReturn(amount decimal.Decimal, business domain.Business) (*domain.PotentialReturn, error)
}
