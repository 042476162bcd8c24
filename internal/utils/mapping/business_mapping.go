package mapping

import (
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:          d.BusinessID,
		EntrepreneurID:      d.EntrepreneurID,
		Name:                d.Name,
		Description:         d.Description,
		Category:            d.Category,
		FundingGoal:         d.FundingGoal,
		FundingRaised:       d.FundingRaised,
		Equity:              d.Equity,
		LikedByInvestors:    d.LikedByInvestors,
		DislikedByInvestors: d.DislikedByInvestors,
		InterestedInvestors: d.InterestedInvestors,
		IsActive:            d.IsActive,
		IsApproved:          d.IsApproved,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:          m.BusinessID,
		EntrepreneurID:      m.EntrepreneurID,
		Name:                m.Name,
		Description:         m.Description,
		Category:            m.Category,
		FundingGoal:         m.FundingGoal,
		FundingRaised:       m.FundingRaised,
		Equity:              m.Equity,
		LikedByInvestors:    m.LikedByInvestors,
		DislikedByInvestors: m.DislikedByInvestors,
		InterestedInvestors: m.InterestedInvestors,
		IsActive:            m.IsActive,
		IsApproved:          m.IsApproved,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBusinessSlice converts a slice of model Businesses to domain Businesses
func ToDomainBusinessSlice(ms []models.Business) []domain.Business {
	ds := make([]domain.Business, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBusiness(m)
	}
	return ds
}
