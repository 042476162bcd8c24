package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
	"github.com/SeedSwipe/seed_swipe_app/internal/middleware"
)

var (
	ErrNegativeInvestmentBound = errors.New("investment bounds must not be negative")
	ErrInvertedBounds          = errors.New("minimum investment exceeds maximum investment")
)

// investorService manages investor preference profiles.
type investorService struct {
	investorRepo portsrepo.InvestorRepository
}

// NewInvestorService creates a new InvestorService.
func NewInvestorService(investorRepo portsrepo.InvestorRepository) portssvc.InvestorSvcFacade {
	return &investorService{investorRepo: investorRepo}
}

// UpsertInvestorProfile creates or replaces the caller's preference profile.
// A zero bound means unbounded on that side.
func (s *investorService) UpsertInvestorProfile(ctx context.Context, investorID string, req dto.UpsertInvestorProfileRequest) (*domain.InvestorProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.MinInvestment.IsNegative() || req.MaxInvestment.IsNegative() {
		return nil, ErrNegativeInvestmentBound
	}
	if req.MinInvestment.IsPositive() && req.MaxInvestment.IsPositive() && req.MinInvestment.GreaterThan(req.MaxInvestment) {
		return nil, ErrInvertedBounds
	}

	focus := req.InvestmentFocus
	if focus == nil {
		focus = []string{}
	}

	now := time.Now().UTC()
	profile := domain.InvestorProfile{
		InvestorID:      investorID,
		Name:            req.Name,
		InvestmentFocus: focus,
		MinInvestment:   req.MinInvestment,
		MaxInvestment:   req.MaxInvestment,
		InvestmentIDs:   []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     investorID,
			LastUpdatedAt: now,
			LastUpdatedBy: investorID,
		},
	}

	if err := s.investorRepo.SaveInvestor(ctx, profile); err != nil {
		logger.Error("Failed to save investor profile", slog.String("error", err.Error()), slog.String("investor_id", investorID))
		return nil, err
	}

	// Re-read so the response carries the preserved investment registry and
	// original creation audit fields on update.
	saved, err := s.investorRepo.FindInvestorByID(ctx, investorID)
	if err != nil {
		logger.Error("Failed to reload investor profile", slog.String("error", err.Error()), slog.String("investor_id", investorID))
		return nil, err
	}

	logger.Info("Investor profile saved", slog.String("investor_id", investorID))
	return saved, nil
}

// GetInvestorProfile retrieves the caller's profile.
func (s *investorService) GetInvestorProfile(ctx context.Context, investorID string) (*domain.InvestorProfile, error) {
	profile, err := s.investorRepo.FindInvestorByID(ctx, investorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		middleware.GetLoggerFromCtx(ctx).Error("Failed to find investor profile", slog.String("error", err.Error()), slog.String("investor_id", investorID))
		return nil, err
	}
	return profile, nil
}
