package services

import (
	"context"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
)

// BusinessReaderSvc defines read operations for business listings
type BusinessReaderSvc interface {
	// GetBusinessByID retrieves a specific business by its unique identifier.
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListEntrepreneurBusinesses retrieves all businesses owned by the entrepreneur.
	ListEntrepreneurBusinesses(ctx context.Context, entrepreneurID string) ([]domain.Business, error)
}

// BusinessWriterSvc defines write operations for business listings
type BusinessWriterSvc interface {
	// CreateBusiness persists a new business listing for the entrepreneur.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, entrepreneurID string) (*domain.Business, error)

	// UpdateBusiness updates content fields; only the owning entrepreneur may update.
	UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest, userID string) (*domain.Business, error)

	// DeactivateBusiness soft-deactivates a listing; only the owning entrepreneur may deactivate.
	DeactivateBusiness(ctx context.Context, businessID string, userID string) error
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
}
