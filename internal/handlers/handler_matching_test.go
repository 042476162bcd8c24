package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
	"github.com/SeedSwipe/seed_swipe_app/internal/handlers"
	"github.com/SeedSwipe/seed_swipe_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MatchingService ---
type MockMatchingService struct {
	mock.Mock
}

func (m *MockMatchingService) GetNextBusinessBatch(ctx context.Context, investorID string, batchSize int, categories []string) ([]domain.Business, error) {
	args := m.Called(ctx, investorID, batchSize, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockMatchingService) SwipeRight(ctx context.Context, investorID string, businessID string) (domain.SwipeOutcome, error) {
	args := m.Called(ctx, investorID, businessID)
	return args.Get(0).(domain.SwipeOutcome), args.Error(1)
}

func (m *MockMatchingService) SwipeLeft(ctx context.Context, investorID string, businessID string) error {
	args := m.Called(ctx, investorID, businessID)
	return args.Error(0)
}

func (m *MockMatchingService) GetEntrepreneurMatches(ctx context.Context, entrepreneurID string) ([]domain.Match, error) {
	args := m.Called(ctx, entrepreneurID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

func (m *MockMatchingService) GetInvestorMatches(ctx context.Context, investorID string) ([]domain.Match, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

func (m *MockMatchingService) MarkInvestorInterest(ctx context.Context, entrepreneurID string, businessID string, investorID string) error {
	args := m.Called(ctx, entrepreneurID, businessID, investorID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.MatchingSvcFacade = (*MockMatchingService)(nil)

// --- Test Suite ---
type MatchingHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockMatchingService *MockMatchingService
	jwtSecret           string
}

func (suite *MatchingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ssa-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MatchingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockMatchingService = new(MockMatchingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMatchingRoutes(v1, suite.mockMatchingService)
}

func (suite *MatchingHandlerTestSuite) authedRequest(method, url, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MatchingHandlerTestSuite) TestGetNextBatch_Success() {
	investorID := uuid.NewString()
	businesses := []domain.Business{{
		BusinessID:     uuid.NewString(),
		EntrepreneurID: uuid.NewString(),
		Name:           "Lemonade Stand Franchise",
		Category:       "food",
		FundingGoal:    decimal.NewFromInt(35000),
		Equity:         decimal.NewFromInt(15),
		IsActive:       true,
		IsApproved:     true,
	}}

	suite.mockMatchingService.On("GetNextBusinessBatch",
		mock.AnythingOfType("*context.valueCtx"),
		investorID,
		3,
		[]string{"food"},
	).Return(businesses, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/matching/next?batchSize=3&categories=food", investorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.BusinessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(businesses[0].BusinessID, resp[0].BusinessID)
	suite.mockMatchingService.AssertExpectations(suite.T())
}

func (suite *MatchingHandlerTestSuite) TestGetNextBatch_Exhausted() {
	investorID := uuid.NewString()

	suite.mockMatchingService.On("GetNextBusinessBatch",
		mock.AnythingOfType("*context.valueCtx"),
		investorID,
		10,
		[]string(nil),
	).Return(nil, services.ErrNoMoreBusinesses).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/matching/next", investorID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MatchingHandlerTestSuite) TestSwipeRight_Match() {
	investorID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockMatchingService.On("SwipeRight",
		mock.AnythingOfType("*context.valueCtx"),
		investorID,
		businessID,
	).Return(domain.SwipeMatched, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/matching/"+businessID+"/like", investorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SwipeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.SwipeMatched, resp.Outcome)
}

func (suite *MatchingHandlerTestSuite) TestSwipeLeft_Inactive() {
	investorID := uuid.NewString()
	businessID := uuid.NewString()

	suite.mockMatchingService.On("SwipeLeft",
		mock.AnythingOfType("*context.valueCtx"),
		investorID,
		businessID,
	).Return(services.ErrBusinessInactive).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/matching/"+businessID+"/dislike", investorID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *MatchingHandlerTestSuite) TestGetInvestorMatches() {
	investorID := uuid.NewString()
	matches := []domain.Match{{
		BusinessID:     uuid.NewString(),
		BusinessName:   "Lemonade Stand Franchise",
		EntrepreneurID: uuid.NewString(),
		InvestorID:     investorID,
	}}

	suite.mockMatchingService.On("GetInvestorMatches",
		mock.AnythingOfType("*context.valueCtx"),
		investorID,
	).Return(matches, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/matching/matches/investor", investorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.MatchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(matches[0].BusinessID, resp[0].BusinessID)
}

// --- Run Test Suite ---
func TestMatchingHandler(t *testing.T) {
	suite.Run(t, new(MatchingHandlerTestSuite))
}
