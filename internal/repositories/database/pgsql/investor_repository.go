package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	"github.com/SeedSwipe/seed_swipe_app/internal/models"
	"github.com/SeedSwipe/seed_swipe_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvestorRepository struct {
	BaseRepository
}

func newPgxInvestorRepository(pool *pgxpool.Pool) portsrepo.InvestorRepository {
	return &PgxInvestorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestorRepository = (*PgxInvestorRepository)(nil)

// FindInvestorByID retrieves an investor profile by its ID.
func (r *PgxInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.InvestorProfile, error) {
	query := `
		SELECT investor_id, name, investment_focus, min_investment, max_investment,
		       investment_ids,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM investors
		WHERE investor_id = $1;
	`
	var m models.Investor
	err := r.Pool.QueryRow(ctx, query, investorID).Scan(
		&m.InvestorID,
		&m.Name,
		&m.InvestmentFocus,
		&m.MinInvestment,
		&m.MaxInvestment,
		&m.InvestmentIDs,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find investor "+investorID, err)
	}

	d := mapping.ToDomainInvestor(m)
	return &d, nil
}

// SaveInvestor inserts or updates an investor profile. The investment registry
// is never touched on update; only the creation transaction appends to it.
func (r *PgxInvestorRepository) SaveInvestor(ctx context.Context, investor domain.InvestorProfile) error {
	m := mapping.ToModelInvestor(investor)

	query := `
		INSERT INTO investors (
			investor_id, name, investment_focus, min_investment, max_investment,
			investment_ids,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (investor_id) DO UPDATE SET
			name = EXCLUDED.name,
			investment_focus = EXCLUDED.investment_focus,
			min_investment = EXCLUDED.min_investment,
			max_investment = EXCLUDED.max_investment,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestorID,
		m.Name,
		m.InvestmentFocus,
		m.MinInvestment,
		m.MaxInvestment,
		m.InvestmentIDs,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save investor "+m.InvestorID, err)
	}
	return nil
}

// AppendInvestmentInTx registers an investment ID against the investor within
// the transaction that created it. An investor who never filled in a profile
// gets a stub row so the registry entry still commits with the investment.
func (r *PgxInvestorRepository) AppendInvestmentInTx(ctx context.Context, tx pgx.Tx, investorID string, investmentID string, now time.Time) error {
	query := `
		INSERT INTO investors (
			investor_id, name, investment_focus, min_investment, max_investment,
			investment_ids,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, '', '{}', 0, 0, ARRAY[$2], $3, $1, $3, $1)
		ON CONFLICT (investor_id) DO UPDATE SET
			investment_ids = array_append(investors.investment_ids, $2),
			last_updated_at = $3, last_updated_by = $1
		WHERE NOT ($2 = ANY(investors.investment_ids));
	`
	_, err := tx.Exec(ctx, query, investorID, investmentID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append investment to investor "+investorID, err)
	}
	return nil
}
