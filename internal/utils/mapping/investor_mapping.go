package mapping

import (
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/models"
)

// ToModelInvestor converts a domain InvestorProfile to a model Investor
func ToModelInvestor(d domain.InvestorProfile) models.Investor {
	return models.Investor{
		InvestorID:      d.InvestorID,
		Name:            d.Name,
		InvestmentFocus: d.InvestmentFocus,
		MinInvestment:   d.MinInvestment,
		MaxInvestment:   d.MaxInvestment,
		InvestmentIDs:   d.InvestmentIDs,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestor converts a model Investor to a domain InvestorProfile
func ToDomainInvestor(m models.Investor) domain.InvestorProfile {
	return domain.InvestorProfile{
		InvestorID:      m.InvestorID,
		Name:            m.Name,
		InvestmentFocus: m.InvestmentFocus,
		MinInvestment:   m.MinInvestment,
		MaxInvestment:   m.MaxInvestment,
		InvestmentIDs:   m.InvestmentIDs,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
