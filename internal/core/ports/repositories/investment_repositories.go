package repositories

import (
	"context"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvestmentReader defines read operations for investments
type InvestmentReader interface {
	// FindInvestmentByID retrieves a specific investment by its unique identifier.
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)

	// ListInvestmentsByInvestor retrieves a token-paginated list of the investor's investments.
	ListInvestmentsByInvestor(ctx context.Context, investorID string, limit int, nextToken *string) ([]domain.Investment, *string, error)
}

// InvestmentWriter defines write operations for investments
type InvestmentWriter interface {
	// SaveInvestmentInTx inserts a new investment record within the given transaction.
	SaveInvestmentInTx(ctx context.Context, tx pgx.Tx, investment domain.Investment) error

	// UpdateInvestmentStatus transitions an investment's status. completedAt is set
	// only for the PENDING -> COMPLETED transition.
	UpdateInvestmentStatus(ctx context.Context, investmentID string, status domain.InvestmentStatus, completedAt *time.Time, userID string, now time.Time) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}

// InvestmentRepositoryWithTx extends InvestmentRepositoryFacade with transaction capabilities
type InvestmentRepositoryWithTx interface {
	InvestmentRepositoryFacade
	TransactionManager
}
