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

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.BusinessSvcFacade
	entrepreneurID   string
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo)
	suite.entrepreneurID = uuid.NewString()
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_Success() {
	ctx := context.Background()
	req := dto.CreateBusinessRequest{
		Name:        "Tutoring Collective",
		Description: "Peer tutoring for exam prep",
		Category:    "education",
		FundingGoal: decimal.NewFromInt(5000),
		Equity:      decimal.NewFromInt(10),
	}

	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()

	business, err := suite.service.CreateBusiness(ctx, req, suite.entrepreneurID)

	suite.Require().NoError(err)
	suite.Require().NotNil(business)
	suite.NotEmpty(business.BusinessID)
	suite.Equal(suite.entrepreneurID, business.EntrepreneurID)
	suite.True(business.FundingRaised.IsZero())
	suite.True(business.IsActive)
	suite.False(business.IsApproved, "new listings must await moderation")
	suite.Empty(business.LikedByInvestors)
	suite.Equal(suite.entrepreneurID, business.CreatedBy)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_InvalidFundingGoal() {
	ctx := context.Background()
	req := dto.CreateBusinessRequest{
		Name:        "Tutoring Collective",
		Category:    "education",
		FundingGoal: decimal.Zero,
		Equity:      decimal.NewFromInt(10),
	}

	_, err := suite.service.CreateBusiness(ctx, req, suite.entrepreneurID)

	suite.Require().ErrorIs(err, services.ErrFundingGoalNotPositive)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveBusiness", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_EquityOutOfRange() {
	ctx := context.Background()
	req := dto.CreateBusinessRequest{
		Name:        "Tutoring Collective",
		Category:    "education",
		FundingGoal: decimal.NewFromInt(5000),
		Equity:      decimal.NewFromInt(101),
	}

	_, err := suite.service.CreateBusiness(ctx, req, suite.entrepreneurID)

	suite.Require().ErrorIs(err, services.ErrEquityOutOfRange)
}

func (suite *BusinessServiceTestSuite) TestUpdateBusiness_OwnerOnly() {
	ctx := context.Background()
	business := domain.Business{
		BusinessID:     uuid.NewString(),
		EntrepreneurID: suite.entrepreneurID,
		Name:           "Old Name",
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, business.BusinessID).Return(&business, nil).Once()

	newName := "New Name"
	_, err := suite.service.UpdateBusiness(ctx, business.BusinessID, dto.UpdateBusinessRequest{Name: &newName}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "UpdateBusiness", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestUpdateBusiness_PartialFields() {
	ctx := context.Background()
	business := domain.Business{
		BusinessID:     uuid.NewString(),
		EntrepreneurID: suite.entrepreneurID,
		Name:           "Old Name",
		Description:    "Old description",
		Category:       "food",
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, business.BusinessID).Return(&business, nil).Once()
	suite.mockBusinessRepo.On("UpdateBusiness", ctx, mock.AnythingOfType("domain.Business")).Return(nil).Once()

	newName := "New Name"
	updated, err := suite.service.UpdateBusiness(ctx, business.BusinessID, dto.UpdateBusinessRequest{Name: &newName}, suite.entrepreneurID)

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.Equal("Old description", updated.Description, "unset fields stay untouched")
	suite.Equal("food", updated.Category)
}

func (suite *BusinessServiceTestSuite) TestDeactivateBusiness_OwnerOnly() {
	ctx := context.Background()
	business := domain.Business{
		BusinessID:     uuid.NewString(),
		EntrepreneurID: suite.entrepreneurID,
		IsActive:       true,
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, business.BusinessID).Return(&business, nil).Once()

	err := suite.service.DeactivateBusiness(ctx, business.BusinessID, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "DeactivateBusiness", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestDeactivateBusiness_Success() {
	ctx := context.Background()
	business := domain.Business{
		BusinessID:     uuid.NewString(),
		EntrepreneurID: suite.entrepreneurID,
		IsActive:       true,
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, business.BusinessID).Return(&business, nil).Once()
	suite.mockBusinessRepo.On("DeactivateBusiness", ctx, business.BusinessID, suite.entrepreneurID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateBusiness(ctx, business.BusinessID, suite.entrepreneurID)

	suite.Require().NoError(err)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
