package services_test

import (
	"context"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portsrepo "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/repositories"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

// Ensure MockBusinessRepository implements portsrepo.BusinessRepositoryWithTx
var _ portsrepo.BusinessRepositoryWithTx = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinessesByEntrepreneur(ctx context.Context, entrepreneurID string) ([]domain.Business, error) {
	args := m.Called(ctx, entrepreneurID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinessesForInvestor(ctx context.Context, investorID string, categories []string, limit int) ([]domain.Business, error) {
	args := m.Called(ctx, investorID, categories, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinessesLikedBy(ctx context.Context, investorID string) ([]domain.Business, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) DeactivateBusiness(ctx context.Context, businessID string, userID string, now time.Time) error {
	args := m.Called(ctx, businessID, userID, now)
	return args.Error(0)
}

func (m *MockBusinessRepository) AddLike(ctx context.Context, businessID string, investorID string, now time.Time) error {
	args := m.Called(ctx, businessID, investorID, now)
	return args.Error(0)
}

func (m *MockBusinessRepository) AddDislike(ctx context.Context, businessID string, investorID string, now time.Time) error {
	args := m.Called(ctx, businessID, investorID, now)
	return args.Error(0)
}

func (m *MockBusinessRepository) AddInterestedInvestor(ctx context.Context, businessID string, investorID string, now time.Time) error {
	args := m.Called(ctx, businessID, investorID, now)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindBusinessByIDForUpdate(ctx context.Context, tx pgx.Tx, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, tx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) IncrementFundingRaisedInTx(ctx context.Context, tx pgx.Tx, businessID string, amount decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, businessID, amount, userID, now)
	return args.Error(0)
}

func (m *MockBusinessRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockBusinessRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBusinessRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

// Ensure MockInvestmentRepository implements portsrepo.InvestmentRepositoryWithTx
var _ portsrepo.InvestmentRepositoryWithTx = (*MockInvestmentRepository)(nil)

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestmentsByInvestor(ctx context.Context, investorID string, limit int, nextToken *string) ([]domain.Investment, *string, error) {
	args := m.Called(ctx, investorID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Investment), returnedNextToken, args.Error(2)
}

func (m *MockInvestmentRepository) SaveInvestmentInTx(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	args := m.Called(ctx, tx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestmentStatus(ctx context.Context, investmentID string, status domain.InvestmentStatus, completedAt *time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, investmentID, status, completedAt, userID, now)
	return args.Error(0)
}

func (m *MockInvestmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockInvestmentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvestmentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock InvestorRepository ---
type MockInvestorRepository struct {
	mock.Mock
}

// Ensure MockInvestorRepository implements portsrepo.InvestorRepository
var _ portsrepo.InvestorRepository = (*MockInvestorRepository)(nil)

func (m *MockInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.InvestorProfile, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestorProfile), args.Error(1)
}

func (m *MockInvestorRepository) SaveInvestor(ctx context.Context, investor domain.InvestorProfile) error {
	args := m.Called(ctx, investor)
	return args.Error(0)
}

func (m *MockInvestorRepository) AppendInvestmentInTx(ctx context.Context, tx pgx.Tx, investorID string, investmentID string, now time.Time) error {
	args := m.Called(ctx, tx, investorID, investmentID, now)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) Dispatch(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
