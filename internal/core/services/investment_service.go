package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
	"github.com/SeedSwipe/seed_swipe_app/internal/middleware"
	"github.com/SeedSwipe/seed_swipe_app/internal/platform/metrics"
	"github.com/SeedSwipe/seed_swipe_app/internal/utils/prorata"
)

var (
	ErrInvalidAmount     = errors.New("investment amount must be positive")
	ErrNoEquityOffered   = errors.New("business offers no equity")
	ErrAlreadyFinalized  = errors.New("investment has already been completed or cancelled")
	ErrBusinessNotOpen   = errors.New("business is not open for investment")
	ErrAmountOutOfBounds = errors.New("amount is outside the investor's configured bounds")
	ErrSelfInvestment    = errors.New("entrepreneurs cannot invest in their own business")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// investmentService creates investments with pro-rata equity allocation and
// manages their lifecycle. Funding increments and investment inserts share one
// store transaction; a row lock on the business serializes concurrent creates.
type investmentService struct {
	investmentRepo portsrepo.InvestmentRepositoryWithTx
	businessRepo   portsrepo.BusinessRepositoryWithTx
	investorRepo   portsrepo.InvestorRepository
	notifier       portssvc.Notifier
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(investmentRepo portsrepo.InvestmentRepositoryWithTx, businessRepo portsrepo.BusinessRepositoryWithTx, investorRepo portsrepo.InvestorRepository, notifier portssvc.Notifier) portssvc.InvestmentSvcFacade {
	return &investmentService{
		investmentRepo: investmentRepo,
		businessRepo:   businessRepo,
		investorRepo:   investorRepo,
		notifier:       notifier,
	}
}

// Ensure investmentService implements the portssvc.InvestmentSvcFacade interface
var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

// CreateInvestment validates the amount, computes the pro-rata equity slice, and
// atomically increments the business's funding total while persisting the
// PENDING investment. The business row is locked for the duration of the
// transaction so two concurrent investments always see each other's increments.
func (s *investmentService) CreateInvestment(ctx context.Context, investorID string, businessID string, amount decimal.Decimal) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	// Advisory bounds from the investor's profile; absent profile means no bounds.
	profile, err := s.investorRepo.FindInvestorByID(ctx, investorID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		if profile.MinInvestment.IsPositive() && amount.LessThan(profile.MinInvestment) {
			return nil, fmt.Errorf("%w: below minimum %s", ErrAmountOutOfBounds, profile.MinInvestment.String())
		}
		if profile.MaxInvestment.IsPositive() && amount.GreaterThan(profile.MaxInvestment) {
			return nil, fmt.Errorf("%w: above maximum %s", ErrAmountOutOfBounds, profile.MaxInvestment.String())
		}
	}

	tx, err := s.businessRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.businessRepo.Rollback(ctx, tx) }()

	business, err := s.businessRepo.FindBusinessByIDForUpdate(ctx, tx, businessID)
	if err != nil {
		return nil, err
	}
	if !business.IsActive || !business.IsApproved {
		return nil, ErrBusinessNotOpen
	}
	if business.EntrepreneurID == investorID {
		return nil, ErrSelfInvestment
	}
	if !business.Equity.IsPositive() {
		return nil, ErrNoEquityOffered
	}

	equityPct, err := prorata.EquityPercentage(amount, business.FundingGoal, business.Equity)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	// Snapshot under the row lock; used post-commit to decide whether this
	// investment crossed the funding goal.
	raisedBefore := business.FundingRaised

	now := time.Now().UTC()
	investment := domain.Investment{
		InvestmentID:     uuid.NewString(),
		InvestorID:       investorID,
		BusinessID:       businessID,
		Amount:           amount,
		EquityPercentage: equityPct,
		Status:           domain.InvestmentStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     investorID,
			LastUpdatedAt: now,
			LastUpdatedBy: investorID,
		},
	}

	if err := s.businessRepo.IncrementFundingRaisedInTx(ctx, tx, businessID, amount, investorID, now); err != nil {
		return nil, err
	}
	if err := s.investmentRepo.SaveInvestmentInTx(ctx, tx, investment); err != nil {
		return nil, err
	}
	if err := s.investorRepo.AppendInvestmentInTx(ctx, tx, investorID, investment.InvestmentID, now); err != nil {
		return nil, err
	}

	if err := s.businessRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit investment transaction", slog.String("error", err.Error()), slog.String("business_id", businessID))
		return nil, err
	}

	logger.Info("Investment created",
		slog.String("investment_id", investment.InvestmentID),
		slog.String("business_id", businessID),
		slog.String("investor_id", investorID),
		slog.String("amount", amount.String()),
		slog.String("equity_percentage", equityPct.String()))

	metrics.InvestmentsCreated.Inc()
	metrics.InvestmentAmount.Observe(amount.InexactFloat64())

	s.dispatchInvestmentNotifications(ctx, business, investment, raisedBefore)

	return &investment, nil
}

// CancelInvestment transitions PENDING -> CANCELLED. Only the owning investor
// may cancel. The funding increment applied at creation is intentionally left
// in place; reconciliation happens out of band.
func (s *investmentService) CancelInvestment(ctx context.Context, investmentID string, callerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	investment, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return err
	}
	if investment.InvestorID != callerID {
		logger.Warn("Cancel attempted by non-owner", slog.String("investment_id", investmentID), slog.String("caller_id", callerID))
		return apperrors.ErrForbidden
	}
	if investment.Status.IsTerminal() {
		return ErrAlreadyFinalized
	}

	now := time.Now().UTC()
	if err := s.investmentRepo.UpdateInvestmentStatus(ctx, investmentID, domain.InvestmentStatusCancelled, nil, callerID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost the race against a concurrent complete or cancel.
			return ErrAlreadyFinalized
		}
		return err
	}

	logger.Info("Investment cancelled", slog.String("investment_id", investmentID))
	return nil
}

// CompleteInvestment transitions PENDING -> COMPLETED and stamps completedAt.
// Completion is driven by the payment settlement callback, which authenticates
// separately, so there is no per-investor ownership check here.
func (s *investmentService) CompleteInvestment(ctx context.Context, investmentID string) (*domain.Investment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	investment, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if investment.Status.IsTerminal() {
		return nil, ErrAlreadyFinalized
	}

	now := time.Now().UTC()
	completedAt := now
	if err := s.investmentRepo.UpdateInvestmentStatus(ctx, investmentID, domain.InvestmentStatusCompleted, &completedAt, investment.InvestorID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, ErrAlreadyFinalized
		}
		return nil, err
	}

	investment.Status = domain.InvestmentStatusCompleted
	investment.CompletedAt = &completedAt
	investment.LastUpdatedAt = now

	logger.Info("Investment completed", slog.String("investment_id", investmentID))
	return investment, nil
}

// GetInvestmentByID retrieves an investment. Only the owning investor may read it.
func (s *investmentService) GetInvestmentByID(ctx context.Context, investmentID string, callerID string) (*domain.Investment, error) {
	investment, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if investment.InvestorID != callerID {
		return nil, apperrors.ErrForbidden
	}
	return investment, nil
}

// ListInvestorInvestments retrieves a token-paginated list of the caller's investments.
func (s *investmentService) ListInvestorInvestments(ctx context.Context, investorID string, params dto.ListInvestmentsParams) (*dto.ListInvestmentsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	investments, nextToken, err := s.investmentRepo.ListInvestmentsByInvestor(ctx, investorID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListInvestmentsResponse{
		Investments: dto.ToInvestmentResponses(investments),
		NextToken:   nextToken,
	}, nil
}

// CalculatePotentialReturn projects the equity slice and estimated value for an
// amount against a business's funding terms. Pure, no I/O.
func (s *investmentService) CalculatePotentialReturn(amount decimal.Decimal, business domain.Business) (*domain.PotentialReturn, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if !business.Equity.IsPositive() {
		return nil, ErrNoEquityOffered
	}

	equityPct, err := prorata.EquityPercentage(amount, business.FundingGoal, business.Equity)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	valuation, err := prorata.Valuation(business.FundingGoal, business.Equity)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	return &domain.PotentialReturn{
		EquityPercentage: equityPct,
		Valuation:        valuation,
		EstimatedValue:   prorata.EstimatedValue(valuation, equityPct),
	}, nil
}

// dispatchInvestmentNotifications pushes the new-investment event to the
// entrepreneur and, when this investment crossed the funding goal, a single
// goal-reached event. Best-effort, post-commit.
func (s *investmentService) dispatchInvestmentNotifications(ctx context.Context, business *domain.Business, investment domain.Investment, raisedBefore decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	notifications := []domain.Notification{{
		ID:          uuid.NewString(),
		Type:        domain.NotificationNewInvestment,
		RecipientID: business.EntrepreneurID,
		Payload: map[string]string{
			"businessID":   business.BusinessID,
			"businessName": business.Name,
			"investmentID": investment.InvestmentID,
			"amount":       investment.Amount.String(),
		},
	}}

	// The lock held during the transaction guarantees exactly one investment
	// observes the crossing.
	raisedAfter := raisedBefore.Add(investment.Amount)
	if raisedBefore.LessThan(business.FundingGoal) && raisedAfter.GreaterThanOrEqual(business.FundingGoal) {
		metrics.FundingGoalsReached.Inc()
		notifications = append(notifications, domain.Notification{
			ID:          uuid.NewString(),
			Type:        domain.NotificationFundingGoalReached,
			RecipientID: business.EntrepreneurID,
			Payload: map[string]string{
				"businessID":   business.BusinessID,
				"businessName": business.Name,
				"fundingGoal":  business.FundingGoal.String(),
			},
		})
	}

	for _, n := range notifications {
		if err := s.notifier.Dispatch(ctx, n); err != nil {
			logger.Warn("Failed to dispatch investment notification", slog.String("error", err.Error()), slog.String("type", string(n.Type)))
		}
	}
}
