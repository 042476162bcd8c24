package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	"github.com/SeedSwipe/seed_swipe_app/internal/models"
	"github.com/SeedSwipe/seed_swipe_app/internal/utils/mapping"
	"github.com/SeedSwipe/seed_swipe_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const investmentColumns = `
	investment_id, investor_id, business_id, amount, equity_percentage,
	status, completed_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investment transactions.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryWithTx {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryWithTx = (*PgxInvestmentRepository)(nil)

func scanInvestment(row rowScanner) (*models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.InvestorID,
		&m.BusinessID,
		&m.Amount,
		&m.EquityPercentage,
		&m.Status,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveInvestmentInTx inserts a new investment within the given transaction so it
// commits or rolls back together with the funding increment.
func (r *PgxInvestmentRepository) SaveInvestmentInTx(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)

	query := `
		INSERT INTO investments (
			investment_id, investor_id, business_id, amount, equity_percentage,
			status, completed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.InvestmentID,
		m.InvestorID,
		m.BusinessID,
		m.Amount,
		m.EquityPercentage,
		m.Status,
		m.CompletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert investment "+m.InvestmentID, err)
	}
	return nil
}

// FindInvestmentByID retrieves an investment by its ID.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE investment_id = $1;`

	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find investment "+investmentID, err)
	}

	d := mapping.ToDomainInvestment(*m)
	return &d, nil
}

// UpdateInvestmentStatus moves an investment out of PENDING. The status guard in
// the WHERE clause makes the transition atomic: a concurrent cancel and complete
// cannot both win.
func (r *PgxInvestmentRepository) UpdateInvestmentStatus(ctx context.Context, investmentID string, status domain.InvestmentStatus, completedAt *time.Time, userID string, now time.Time) error {
	query := `
		UPDATE investments
		SET status = $2, completed_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE investment_id = $1 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, investmentID, string(status), completedAt, now, userID, string(domain.InvestmentStatusPending))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of investment "+investmentID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the investment does not exist or it already left PENDING.
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM investments WHERE investment_id = $1);`, investmentID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check investment existence "+investmentID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

// ListInvestmentsByInvestor retrieves a page of the investor's investments,
// newest first, using keyset pagination on (created_at, investment_id).
func (r *PgxInvestmentRepository) ListInvestmentsByInvestor(ctx context.Context, investorID string, limit int, nextToken *string) ([]domain.Investment, *string, error) {
	args := []any{investorID}
	query := `SELECT ` + investmentColumns + `
		FROM investments
		WHERE investor_id = $1`

	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (created_at, investment_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC, investment_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query investments", err)
	}
	defer rows.Close()

	var modelInvestments []models.Investment
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan investment row", err)
		}
		modelInvestments = append(modelInvestments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating investment rows", err)
	}

	var newNextToken *string
	if len(modelInvestments) > limit {
		modelInvestments = modelInvestments[:limit]
		last := modelInvestments[limit-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.InvestmentID)
		newNextToken = &token
	}

	investments := make([]domain.Investment, 0, len(modelInvestments))
	for _, m := range modelInvestments {
		investments = append(investments, mapping.ToDomainInvestment(m))
	}
	return investments, newNextToken, nil
}
