package services

import (
	"context"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
)

// InvestorSvcFacade manages investor preference profiles. The stored focus
// list shapes the swipe batch and the min/max bounds gate investment amounts.
type InvestorSvcFacade interface {
	// UpsertInvestorProfile creates or replaces the caller's preference profile.
	// The investment registry is preserved across updates.
	UpsertInvestorProfile(ctx context.Context, investorID string, req dto.UpsertInvestorProfileRequest) (*domain.InvestorProfile, error)

	// GetInvestorProfile retrieves the caller's profile.
	GetInvestorProfile(ctx context.Context, investorID string) (*domain.InvestorProfile, error)
}
