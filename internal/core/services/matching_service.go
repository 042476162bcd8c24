package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/middleware"
	"github.com/SeedSwipe/seed_swipe_app/internal/platform/metrics"
)

var (
	ErrNoMoreBusinesses = errors.New("no more businesses to swipe on")
	ErrBusinessInactive = errors.New("business is not active")
)

const defaultBatchSize = 10

// matchingService maintains the like/dislike relation between investors and
// businesses and computes mutual matches. Matches are always derived from the
// persisted sets, never stored.
type matchingService struct {
	businessRepo portsrepo.BusinessRepositoryWithTx
	investorRepo portsrepo.InvestorRepository
	notifier     portssvc.Notifier
}

// NewMatchingService creates a new MatchingService.
func NewMatchingService(businessRepo portsrepo.BusinessRepositoryWithTx, investorRepo portsrepo.InvestorRepository, notifier portssvc.Notifier) portssvc.MatchingSvcFacade {
	return &matchingService{
		businessRepo: businessRepo,
		investorRepo: investorRepo,
		notifier:     notifier,
	}
}

// Ensure matchingService implements the portssvc.MatchingSvcFacade interface
var _ portssvc.MatchingSvcFacade = (*matchingService)(nil)

// GetNextBusinessBatch returns the next businesses for the investor to swipe on.
// Explicit categories win over the investor's stored investment focus; an
// investor without a profile gets an unfiltered deck.
func (s *matchingService) GetNextBusinessBatch(ctx context.Context, investorID string, batchSize int, categories []string) ([]domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	if len(categories) == 0 {
		profile, err := s.investorRepo.FindInvestorByID(ctx, investorID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load investor profile for batch", slog.String("error", err.Error()), slog.String("investor_id", investorID))
			return nil, err
		}
		if profile != nil {
			categories = profile.InvestmentFocus
		}
	}

	businesses, err := s.businessRepo.ListBusinessesForInvestor(ctx, investorID, categories, batchSize)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, ErrNoMoreBusinesses
	}
	return businesses, nil
}

// SwipeRight records a like for the investor on the business and reports whether
// the like completed a mutual match. Re-liking is an idempotent no-op; a like
// after a dislike supersedes the dislike.
func (s *matchingService) SwipeRight(ctx context.Context, investorID string, businessID string) (domain.SwipeOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return "", err
	}
	if !business.IsActive {
		return "", ErrBusinessInactive
	}
	if business.EntrepreneurID == investorID {
		return "", apperrors.ErrForbidden
	}

	alreadyLiked := business.IsLikedBy(investorID)

	now := time.Now().UTC()
	if err := s.businessRepo.AddLike(ctx, businessID, investorID, now); err != nil {
		logger.Error("Failed to record like", slog.String("error", err.Error()), slog.String("business_id", businessID), slog.String("investor_id", investorID))
		return "", err
	}

	metrics.SwipesRecorded.WithLabelValues("right").Inc()

	outcome := domain.SwipeLiked
	if business.HasInterestIn(investorID) {
		outcome = domain.SwipeMatched
		// Notify both sides only when this swipe created the match; replays stay silent.
		if !alreadyLiked {
			s.dispatchMatchNotifications(ctx, business, investorID)
		}
	}

	logger.Info("Swipe right recorded",
		slog.String("business_id", businessID),
		slog.String("investor_id", investorID),
		slog.String("outcome", string(outcome)))
	return outcome, nil
}

// SwipeLeft records a dislike, superseding a prior like. Idempotent.
func (s *matchingService) SwipeLeft(ctx context.Context, investorID string, businessID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return err
	}
	if !business.IsActive {
		return ErrBusinessInactive
	}
	if business.EntrepreneurID == investorID {
		return apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.businessRepo.AddDislike(ctx, businessID, investorID, now); err != nil {
		logger.Error("Failed to record dislike", slog.String("error", err.Error()), slog.String("business_id", businessID), slog.String("investor_id", investorID))
		return err
	}

	metrics.SwipesRecorded.WithLabelValues("left").Inc()
	return nil
}

// MarkInvestorInterest records entrepreneur-side interest in an investor for one
// of the entrepreneur's businesses. If the investor already liked the business,
// this completes a match and both sides are notified.
func (s *matchingService) MarkInvestorInterest(ctx context.Context, entrepreneurID string, businessID string, investorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business.EntrepreneurID != entrepreneurID {
		logger.Warn("Interest mark attempted by non-owner", slog.String("business_id", businessID), slog.String("user_id", entrepreneurID))
		return apperrors.ErrForbidden
	}

	alreadyInterested := business.HasInterestIn(investorID)

	now := time.Now().UTC()
	if err := s.businessRepo.AddInterestedInvestor(ctx, businessID, investorID, now); err != nil {
		logger.Error("Failed to record interest", slog.String("error", err.Error()), slog.String("business_id", businessID), slog.String("investor_id", investorID))
		return err
	}

	if !alreadyInterested && business.IsLikedBy(investorID) {
		s.dispatchMatchNotifications(ctx, business, investorID)
	}
	return nil
}

// GetEntrepreneurMatches computes the derived match view across all businesses
// owned by the entrepreneur.
func (s *matchingService) GetEntrepreneurMatches(ctx context.Context, entrepreneurID string) ([]domain.Match, error) {
	businesses, err := s.businessRepo.ListBusinessesByEntrepreneur(ctx, entrepreneurID)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0)
	for _, b := range businesses {
		for _, investorID := range b.LikedByInvestors {
			if b.HasInterestIn(investorID) {
				matches = append(matches, domain.Match{
					BusinessID:     b.BusinessID,
					BusinessName:   b.Name,
					EntrepreneurID: b.EntrepreneurID,
					InvestorID:     investorID,
				})
			}
		}
	}
	return matches, nil
}

// GetInvestorMatches computes the derived match view across all businesses the
// investor has liked.
func (s *matchingService) GetInvestorMatches(ctx context.Context, investorID string) ([]domain.Match, error) {
	businesses, err := s.businessRepo.ListBusinessesLikedBy(ctx, investorID)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0)
	for _, b := range businesses {
		if b.HasInterestIn(investorID) {
			matches = append(matches, domain.Match{
				BusinessID:     b.BusinessID,
				BusinessName:   b.Name,
				EntrepreneurID: b.EntrepreneurID,
				InvestorID:     investorID,
			})
		}
	}
	return matches, nil
}

// dispatchMatchNotifications sends a new-match notification to both parties.
// Best-effort: failures are logged and never surfaced to the caller.
func (s *matchingService) dispatchMatchNotifications(ctx context.Context, business *domain.Business, investorID string) {
	metrics.MatchesCreated.Inc()
	if s.notifier == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	payload := map[string]string{
		"businessID":   business.BusinessID,
		"businessName": business.Name,
		"investorID":   investorID,
	}
	for _, recipientID := range []string{business.EntrepreneurID, investorID} {
		n := domain.Notification{
			ID:          uuid.NewString(),
			Type:        domain.NotificationNewMatch,
			RecipientID: recipientID,
			Payload:     payload,
		}
		if err := s.notifier.Dispatch(ctx, n); err != nil {
			logger.Warn("Failed to dispatch match notification", slog.String("error", err.Error()), slog.String("recipient_id", recipientID))
		}
	}
}
