package services

import (
	"context"
	"errors"
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
)

var (
	ErrFundingGoalNotPositive = errors.New("funding goal must be positive")
	ErrEquityOutOfRange       = errors.New("equity must be between 0 and 100")
)

var maxEquity = decimal.NewFromInt(100)

// businessService provides CRUD for business listings.
type businessService struct {
	businessRepo portsrepo.BusinessRepositoryWithTx
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryWithTx) portssvc.BusinessSvcFacade {
	return &businessService{businessRepo: businessRepo}
}

// Ensure businessService implements the portssvc.BusinessSvcFacade interface
var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// CreateBusiness creates a new listing owned by the entrepreneur. New listings
// start unapproved and enter the swipe deck only after moderation flips the flag.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, entrepreneurID string) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FundingGoal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrFundingGoalNotPositive
	}
	if req.Equity.IsNegative() || req.Equity.GreaterThan(maxEquity) {
		return nil, ErrEquityOutOfRange
	}

	now := time.Now().UTC()
	business := domain.Business{
		BusinessID:          uuid.NewString(),
		EntrepreneurID:      entrepreneurID,
		Name:                req.Name,
		Description:         req.Description,
		Category:            req.Category,
		FundingGoal:         req.FundingGoal,
		FundingRaised:       decimal.Zero,
		Equity:              req.Equity,
		LikedByInvestors:    []string{},
		DislikedByInvestors: []string{},
		InterestedInvestors: []string{},
		IsActive:            true,
		IsApproved:          false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     entrepreneurID,
			LastUpdatedAt: now,
			LastUpdatedBy: entrepreneurID,
		},
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		logger.Error("Failed to save business", slog.String("error", err.Error()), slog.String("entrepreneur_id", entrepreneurID))
		return nil, err
	}

	logger.Info("Business created", slog.String("business_id", business.BusinessID), slog.String("entrepreneur_id", entrepreneurID))
	return &business, nil
}

// GetBusinessByID retrieves a specific business by its unique identifier.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	return s.businessRepo.FindBusinessByID(ctx, businessID)
}

// ListEntrepreneurBusinesses retrieves all businesses owned by the entrepreneur.
func (s *businessService) ListEntrepreneurBusinesses(ctx context.Context, entrepreneurID string) ([]domain.Business, error) {
	return s.businessRepo.ListBusinessesByEntrepreneur(ctx, entrepreneurID)
}

// UpdateBusiness updates content fields. Only the owning entrepreneur may update;
// funding terms are immutable once the listing exists so prior investments keep
// the terms they were priced at.
func (s *businessService) UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest, userID string) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business.EntrepreneurID != userID {
		logger.Warn("Update attempted by non-owner", slog.String("business_id", businessID), slog.String("user_id", userID))
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Category != nil {
		business.Category = *req.Category
	}

	now := time.Now().UTC()
	business.LastUpdatedAt = now
	business.LastUpdatedBy = userID

	if err := s.businessRepo.UpdateBusiness(ctx, *business); err != nil {
		logger.Error("Failed to update business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		return nil, err
	}

	return business, nil
}

// DeactivateBusiness soft-deactivates a listing. Only the owning entrepreneur
// may deactivate; the listing and its swipe history remain queryable.
func (s *businessService) DeactivateBusiness(ctx context.Context, businessID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business.EntrepreneurID != userID {
		return apperrors.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.businessRepo.DeactivateBusiness(ctx, businessID, userID, now); err != nil {
		logger.Error("Failed to deactivate business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		return err
	}

	logger.Info("Business deactivated", slog.String("business_id", businessID))
	return nil
}
