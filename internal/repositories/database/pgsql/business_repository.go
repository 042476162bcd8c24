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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const businessColumns = `
	business_id, entrepreneur_id, name, description, category,
	funding_goal, funding_raised, equity,
	liked_by_investors, disliked_by_investors, interested_investors,
	is_active, is_approved,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for business listings.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryWithTx {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryWithTx
var _ portsrepo.BusinessRepositoryWithTx = (*PgxBusinessRepository)(nil)

// rowScanner covers pgx.Row and pgx.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (*models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.EntrepreneurID,
		&m.Name,
		&m.Description,
		&m.Category,
		&m.FundingGoal,
		&m.FundingRaised,
		&m.Equity,
		&m.LikedByInvestors,
		&m.DislikedByInvestors,
		&m.InterestedInvestors,
		&m.IsActive,
		&m.IsApproved,
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

// SaveBusiness inserts a new business listing.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)

	query := `
		INSERT INTO businesses (
			business_id, entrepreneur_id, name, description, category,
			funding_goal, funding_raised, equity,
			liked_by_investors, disliked_by_investors, interested_investors,
			is_active, is_approved,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BusinessID,
		m.EntrepreneurID,
		m.Name,
		m.Description,
		m.Category,
		m.FundingGoal,
		m.FundingRaised,
		m.Equity,
		m.LikedByInvestors,
		m.DislikedByInvestors,
		m.InterestedInvestors,
		m.IsActive,
		m.IsApproved,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert business "+m.BusinessID, err)
	}
	return nil
}

// FindBusinessByID retrieves a business by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1;`

	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find business "+businessID, err)
	}

	d := mapping.ToDomainBusiness(*m)
	return &d, nil
}

// ListBusinessesByEntrepreneur retrieves all businesses owned by the entrepreneur.
func (r *PgxBusinessRepository) ListBusinessesByEntrepreneur(ctx context.Context, entrepreneurID string) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + `
		FROM businesses
		WHERE entrepreneur_id = $1
		ORDER BY created_at DESC;`

	return r.queryBusinesses(ctx, query, entrepreneurID)
}

// ListBusinessesLikedBy retrieves all businesses whose like set contains the investor.
func (r *PgxBusinessRepository) ListBusinessesLikedBy(ctx context.Context, investorID string) ([]domain.Business, error) {
	query := `SELECT ` + businessColumns + `
		FROM businesses
		WHERE $1 = ANY(liked_by_investors)
		ORDER BY created_at DESC;`

	return r.queryBusinesses(ctx, query, investorID)
}

// ListBusinessesForInvestor retrieves up to limit active, approved businesses the
// investor has not yet liked or disliked, excluding the investor's own listings.
// An empty categories slice means no category filter.
func (r *PgxBusinessRepository) ListBusinessesForInvestor(ctx context.Context, investorID string, categories []string, limit int) ([]domain.Business, error) {
	if categories == nil {
		categories = []string{}
	}
	query := `SELECT ` + businessColumns + `
		FROM businesses
		WHERE is_active
		  AND is_approved
		  AND entrepreneur_id <> $1
		  AND NOT ($1 = ANY(liked_by_investors))
		  AND NOT ($1 = ANY(disliked_by_investors))
		  AND (cardinality($2::text[]) = 0 OR category = ANY($2::text[]))
		ORDER BY created_at DESC
		LIMIT $3;`

	return r.queryBusinesses(ctx, query, investorID, categories, limit)
}

func (r *PgxBusinessRepository) queryBusinesses(ctx context.Context, query string, args ...any) ([]domain.Business, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query businesses", err)
	}
	defer rows.Close()

	var modelBusinesses []models.Business
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan business row", err)
		}
		modelBusinesses = append(modelBusinesses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating business rows", err)
	}

	return mapping.ToDomainBusinessSlice(modelBusinesses), nil
}

// UpdateBusiness updates content fields only. The investor-ID sets and funding
// totals are never written here; they have their own atomic operations.
func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)

	query := `
		UPDATE businesses
		SET name = $2, description = $3, category = $4, is_approved = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE business_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BusinessID,
		m.Name,
		m.Description,
		m.Category,
		m.IsApproved,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update business "+m.BusinessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateBusiness marks a business as inactive.
func (r *PgxBusinessRepository) DeactivateBusiness(ctx context.Context, businessID string, userID string, now time.Time) error {
	query := `
		UPDATE businesses
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE business_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, businessID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate business "+businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddLike adds the investor to the like set and clears any prior dislike, as a
// single guarded statement. Re-liking an already-liked business affects zero
// rows and is treated as a successful no-op. The liked/disliked sets stay
// disjoint because each operation removes the investor from the opposite set.
func (r *PgxBusinessRepository) AddLike(ctx context.Context, businessID string, investorID string, now time.Time) error {
	query := `
		UPDATE businesses
		SET liked_by_investors = array_append(liked_by_investors, $2),
		    disliked_by_investors = array_remove(disliked_by_investors, $2),
		    last_updated_at = $3, last_updated_by = $2
		WHERE business_id = $1
		  AND NOT ($2 = ANY(liked_by_investors));
	`
	return r.execSetMutation(ctx, query, businessID, investorID, now, "like")
}

// AddDislike adds the investor to the dislike set and clears any prior like.
// Idempotent in the same way as AddLike.
func (r *PgxBusinessRepository) AddDislike(ctx context.Context, businessID string, investorID string, now time.Time) error {
	query := `
		UPDATE businesses
		SET disliked_by_investors = array_append(disliked_by_investors, $2),
		    liked_by_investors = array_remove(liked_by_investors, $2),
		    last_updated_at = $3, last_updated_by = $2
		WHERE business_id = $1
		  AND NOT ($2 = ANY(disliked_by_investors));
	`
	return r.execSetMutation(ctx, query, businessID, investorID, now, "dislike")
}

// AddInterestedInvestor records entrepreneur-side interest in the investor.
func (r *PgxBusinessRepository) AddInterestedInvestor(ctx context.Context, businessID string, investorID string, now time.Time) error {
	query := `
		UPDATE businesses
		SET interested_investors = array_append(interested_investors, $2),
		    last_updated_at = $3, last_updated_by = $2
		WHERE business_id = $1
		  AND NOT ($2 = ANY(interested_investors));
	`
	return r.execSetMutation(ctx, query, businessID, investorID, now, "interest")
}

// execSetMutation runs a guarded array update. Zero affected rows is either an
// idempotent no-op or a missing business; a cheap existence check tells them apart.
func (r *PgxBusinessRepository) execSetMutation(ctx context.Context, query string, businessID string, investorID string, now time.Time, op string) error {
	tag, err := r.Pool.Exec(ctx, query, businessID, investorID, now)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to record %s on business %s", op, businessID), err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM businesses WHERE business_id = $1);`, businessID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check business existence "+businessID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBusinessByIDForUpdate selects a business and locks it for update within a transaction.
func (r *PgxBusinessRepository) FindBusinessByIDForUpdate(ctx context.Context, tx pgx.Tx, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1 FOR UPDATE;`

	m, err := scanBusiness(tx.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock business "+businessID, err)
	}

	d := mapping.ToDomainBusiness(*m)
	return &d, nil
}

// IncrementFundingRaisedInTx applies a funding increment within the given transaction.
// The increment targets the stored column so concurrent transactions serialize
// through the row lock rather than overwriting each other's totals.
func (r *PgxBusinessRepository) IncrementFundingRaisedInTx(ctx context.Context, tx pgx.Tx, businessID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE businesses
		SET funding_raised = funding_raised + $2,
		    last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1;
	`
	tag, err := tx.Exec(ctx, query, businessID, amount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to increment funding for business "+businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
