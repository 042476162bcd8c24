package pgsql

import (
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	businessRepo := newPgxBusinessRepository(dbPool)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	investorRepo := newPgxInvestorRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BusinessRepo:   businessRepo,
		InvestmentRepo: investmentRepo,
		InvestorRepo:   investorRepo,
	}
}
