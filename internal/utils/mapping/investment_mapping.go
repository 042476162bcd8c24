package mapping

import (
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:     d.InvestmentID,
		InvestorID:       d.InvestorID,
		BusinessID:       d.BusinessID,
		Amount:           d.Amount,
		EquityPercentage: d.EquityPercentage,
		Status:           models.InvestmentStatus(d.Status),
		CompletedAt:      d.CompletedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:     m.InvestmentID,
		InvestorID:       m.InvestorID,
		BusinessID:       m.BusinessID,
		Amount:           m.Amount,
		EquityPercentage: m.EquityPercentage,
		Status:           domain.InvestmentStatus(m.Status),
		CompletedAt:      m.CompletedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestmentSlice converts a slice of model Investments to domain Investments
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}
