package services

import (
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Business = NewBusinessService(repos.BusinessRepo)
	container.Matching = NewMatchingService(repos.BusinessRepo, repos.InvestorRepo, notifier)
	container.Investment = NewInvestmentService(repos.InvestmentRepo, repos.BusinessRepo, repos.InvestorRepo, notifier)
	container.Investor = NewInvestorService(repos.InvestorRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BusinessSvcFacade   = (*businessService)(nil)
	_ portssvc.MatchingSvcFacade   = (*matchingService)(nil)
	_ portssvc.InvestmentSvcFacade = (*investmentService)(nil)
	_ portssvc.InvestorSvcFacade   = (*investorService)(nil)
)
