package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SeedSwipe/seed_swipe_app/internal/apperrors"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/core/services"
	"github.com/SeedSwipe/seed_swipe_app/internal/dto"
	"github.com/SeedSwipe/seed_swipe_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// matchingHandler handles HTTP requests for the swipe deck and matches.
type matchingHandler struct {
	matchingService portssvc.MatchingSvcFacade
}

// newMatchingHandler creates a new matchingHandler.
func newMatchingHandler(ms portssvc.MatchingSvcFacade) *matchingHandler {
	return &matchingHandler{matchingService: ms}
}

// RegisterMatchingRoutes registers routes related to swiping and matching.
func RegisterMatchingRoutes(rg *gin.RouterGroup, matchingService portssvc.MatchingSvcFacade) {
	h := newMatchingHandler(matchingService)

	matching := rg.Group("/matching")
	{
		matching.GET("/next", h.getNextBatch)
		matching.POST("/:businessID/like", h.swipeRight)
		matching.POST("/:businessID/dislike", h.swipeLeft)
		matching.GET("/matches/investor", h.getInvestorMatches)
		matching.GET("/matches/entrepreneur", h.getEntrepreneurMatches)
	}
}

// getNextBatch godoc
// @Summary Get the next batch of businesses to swipe on
// @Description Returns up to batchSize active, approved businesses the investor has not yet swiped on. Explicit categories override the investor's stored investment focus.
// @Tags matching
// @Produce  json
// @Param   batchSize query int false "Batch size" default(10)
// @Param   categories query []string false "Category filter" collectionFormat(multi)
// @Success 200 {array} dto.BusinessResponse
// @Failure 404 {object} map[string]string "No more businesses to swipe on"
// @Security BearerAuth
// @Router /matching/next [get]
func (h *matchingHandler) getNextBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.NextBatchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	businesses, err := h.matchingService.GetNextBusinessBatch(c.Request.Context(), investorID, params.BatchSize, params.Categories)
	if err != nil {
		if errors.Is(err, services.ErrNoMoreBusinesses) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No more businesses to swipe on"})
		} else {
			logger.Error("Failed to get next batch", slog.String("error", err.Error()), slog.String("investor_id", investorID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get next batch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessResponse(businesses))
}

// swipeRight godoc
// @Summary Like a business
// @Description Records a like on the business for the authenticated investor and reports whether it completed a mutual match. Idempotent.
// @Tags matching
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Success 200 {object} dto.SwipeResponse
// @Failure 403 {object} map[string]string "Cannot swipe on your own business"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 409 {object} map[string]string "Business is not active"
// @Security BearerAuth
// @Router /matching/{businessID}/like [post]
func (h *matchingHandler) swipeRight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	outcome, err := h.matchingService.SwipeRight(c.Request.Context(), investorID, businessID)
	if err != nil {
		h.writeSwipeError(c, logger, err, businessID)
		return
	}

	c.JSON(http.StatusOK, dto.SwipeResponse{Outcome: outcome})
}

// swipeLeft godoc
// @Summary Dislike a business
// @Description Records a dislike on the business for the authenticated investor, superseding any prior like. Idempotent.
// @Tags matching
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 409 {object} map[string]string "Business is not active"
// @Security BearerAuth
// @Router /matching/{businessID}/dislike [post]
func (h *matchingHandler) swipeLeft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.matchingService.SwipeLeft(c.Request.Context(), investorID, businessID); err != nil {
		h.writeSwipeError(c, logger, err, businessID)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *matchingHandler) writeSwipeError(c *gin.Context, logger *slog.Logger, err error, businessID string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot swipe on your own business"})
	case errors.Is(err, services.ErrBusinessInactive):
		c.JSON(http.StatusConflict, gin.H{"error": "Business is not active"})
	default:
		logger.Error("Failed to record swipe", slog.String("error", err.Error()), slog.String("business_id", businessID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record swipe"})
	}
}

// getInvestorMatches godoc
// @Summary List the caller's matches as an investor
// @Description Returns the mutual matches across all businesses the authenticated investor has liked
// @Tags matching
// @Produce  json
// @Success 200 {array} dto.MatchResponse
// @Security BearerAuth
// @Router /matching/matches/investor [get]
func (h *matchingHandler) getInvestorMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	matches, err := h.matchingService.GetInvestorMatches(c.Request.Context(), investorID)
	if err != nil {
		logger.Error("Failed to get investor matches", slog.String("error", err.Error()), slog.String("investor_id", investorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get matches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponses(matches))
}

// getEntrepreneurMatches godoc
// @Summary List the caller's matches as an entrepreneur
// @Description Returns the mutual matches across all businesses owned by the authenticated entrepreneur
// @Tags matching
// @Produce  json
// @Success 200 {array} dto.MatchResponse
// @Security BearerAuth
// @Router /matching/matches/entrepreneur [get]
func (h *matchingHandler) getEntrepreneurMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entrepreneurID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	matches, err := h.matchingService.GetEntrepreneurMatches(c.Request.Context(), entrepreneurID)
	if err != nil {
		logger.Error("Failed to get entrepreneur matches", slog.String("error", err.Error()), slog.String("entrepreneur_id", entrepreneurID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get matches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponses(matches))
}
