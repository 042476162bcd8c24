package services_test

import (
	"context"
	"testing"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvestorServiceTestSuite struct {
	suite.Suite
	mockInvestorRepo *MockInvestorRepository
	service          portssvc.InvestorSvcFacade
	investorID       string
}

func (suite *InvestorServiceTestSuite) SetupTest() {
	suite.mockInvestorRepo = new(MockInvestorRepository)
	suite.service = services.NewInvestorService(suite.mockInvestorRepo)
	suite.investorID = uuid.NewString()
}

func (suite *InvestorServiceTestSuite) TestUpsertInvestorProfile_Success() {
	ctx := context.Background()
	req := dto.UpsertInvestorProfileRequest{
		Name:            "Avery",
		InvestmentFocus: []string{"food", "education"},
		MinInvestment:   decimal.NewFromInt(50),
		MaxInvestment:   decimal.NewFromInt(500),
	}

	stored := &domain.InvestorProfile{
		InvestorID:      suite.investorID,
		Name:            "Avery",
		InvestmentFocus: []string{"food", "education"},
		MinInvestment:   decimal.NewFromInt(50),
		MaxInvestment:   decimal.NewFromInt(500),
		InvestmentIDs:   []string{"inv-1", "inv-2"},
	}

	suite.mockInvestorRepo.On("SaveInvestor", ctx, mock.MatchedBy(func(p domain.InvestorProfile) bool {
		return p.InvestorID == suite.investorID && p.Name == "Avery"
	})).Return(nil).Once()
	suite.mockInvestorRepo.On("FindInvestorByID", ctx, suite.investorID).Return(stored, nil).Once()

	profile, err := suite.service.UpsertInvestorProfile(ctx, suite.investorID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal([]string{"inv-1", "inv-2"}, profile.InvestmentIDs, "registry must survive the upsert")
	suite.mockInvestorRepo.AssertExpectations(suite.T())
}

func (suite *InvestorServiceTestSuite) TestUpsertInvestorProfile_NilFocusBecomesEmpty() {
	ctx := context.Background()
	req := dto.UpsertInvestorProfileRequest{Name: "Avery"}

	suite.mockInvestorRepo.On("SaveInvestor", ctx, mock.MatchedBy(func(p domain.InvestorProfile) bool {
		return p.InvestmentFocus != nil && len(p.InvestmentFocus) == 0
	})).Return(nil).Once()
	suite.mockInvestorRepo.On("FindInvestorByID", ctx, suite.investorID).Return(&domain.InvestorProfile{InvestorID: suite.investorID}, nil).Once()

	_, err := suite.service.UpsertInvestorProfile(ctx, suite.investorID, req)

	suite.Require().NoError(err)
	suite.mockInvestorRepo.AssertExpectations(suite.T())
}

func (suite *InvestorServiceTestSuite) TestUpsertInvestorProfile_InvertedBounds() {
	ctx := context.Background()
	req := dto.UpsertInvestorProfileRequest{
		Name:          "Avery",
		MinInvestment: decimal.NewFromInt(500),
		MaxInvestment: decimal.NewFromInt(50),
	}

	_, err := suite.service.UpsertInvestorProfile(ctx, suite.investorID, req)

	suite.Require().ErrorIs(err, services.ErrInvertedBounds)
	suite.mockInvestorRepo.AssertNotCalled(suite.T(), "SaveInvestor", mock.Anything, mock.Anything)
}

func (suite *InvestorServiceTestSuite) TestUpsertInvestorProfile_NegativeBound() {
	ctx := context.Background()
	req := dto.UpsertInvestorProfileRequest{
		Name:          "Avery",
		MinInvestment: decimal.NewFromInt(-1),
	}

	_, err := suite.service.UpsertInvestorProfile(ctx, suite.investorID, req)

	suite.Require().ErrorIs(err, services.ErrNegativeInvestmentBound)
}

func (suite *InvestorServiceTestSuite) TestGetInvestorProfile_NotFound() {
	ctx := context.Background()

	suite.mockInvestorRepo.On("FindInvestorByID", ctx, suite.investorID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetInvestorProfile(ctx, suite.investorID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvestorRepo.AssertExpectations(suite.T())
}

func TestInvestorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestorServiceTestSuite))
}
