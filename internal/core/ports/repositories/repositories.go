package repositories

// RepositoryProvider aggregates all repositories for dependency injection.
type RepositoryProvider struct {
	BusinessRepo   BusinessRepositoryWithTx
	InvestmentRepo InvestmentRepositoryWithTx
	InvestorRepo   InvestorRepository
}
