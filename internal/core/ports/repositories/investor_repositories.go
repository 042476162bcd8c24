package repositories

import (
	"context"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvestorRepository defines persistence operations for investor profiles.
type InvestorRepository interface {
	// FindInvestorByID retrieves an investor profile by its unique identifier.
	FindInvestorByID(ctx context.Context, investorID string) (*domain.InvestorProfile, error)

	// SaveInvestor upserts an investor profile. The investment registry is
	// preserved on update.
	SaveInvestor(ctx context.Context, investor domain.InvestorProfile) error

	// AppendInvestmentInTx registers an investment ID against the investor's
	// profile within the given transaction. Creates a stub profile when the
	// investor never filled one in; the append must land with the investment.
	AppendInvestmentInTx(ctx context.Context, tx pgx.Tx, investorID string, investmentID string, now time.Time) error
}
