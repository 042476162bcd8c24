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

// businessHandler handles HTTP requests related to business listings.
type businessHandler struct {
	businessService   portssvc.BusinessSvcFacade
	matchingService   portssvc.MatchingSvcFacade
	investmentService portssvc.InvestmentSvcFacade
}

// newBusinessHandler creates a new businessHandler.
func newBusinessHandler(bs portssvc.BusinessSvcFacade, ms portssvc.MatchingSvcFacade, is portssvc.InvestmentSvcFacade) *businessHandler {
	return &businessHandler{
		businessService:   bs,
		matchingService:   ms,
		investmentService: is,
	}
}

// registerBusinessRoutes registers routes related to business listings.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade, matchingService portssvc.MatchingSvcFacade, investmentService portssvc.InvestmentSvcFacade) {
	h := newBusinessHandler(businessService, matchingService, investmentService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listMyBusinesses)
		businesses.GET("/:businessID", h.getBusiness)
		businesses.PUT("/:businessID", h.updateBusiness)
		businesses.DELETE("/:businessID", h.deactivateBusiness)
		businesses.POST("/:businessID/interest", h.markInvestorInterest)
		businesses.POST("/:businessID/potential-return", h.calculatePotentialReturn)
	}
}

// createBusiness godoc
// @Summary Create a new business listing
// @Description Creates a business listing owned by the authenticated entrepreneur. New listings await moderation before entering the swipe deck.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entrepreneurID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, entrepreneurID)
	if err != nil {
		if errors.Is(err, services.ErrFundingGoalNotPositive) || errors.Is(err, services.ErrEquityOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create business", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// listMyBusinesses godoc
// @Summary List the caller's business listings
// @Description Retrieves all businesses owned by the authenticated entrepreneur
// @Tags businesses
// @Produce  json
// @Success 200 {array} dto.BusinessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /businesses [get]
func (h *businessHandler) listMyBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entrepreneurID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	businesses, err := h.businessService.ListEntrepreneurBusinesses(c.Request.Context(), entrepreneurID)
	if err != nil {
		logger.Error("Failed to list businesses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} map[string]string "Business not found"
// @Security BearerAuth
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else {
			logger.Error("Failed to get business", slog.String("error", err.Error()), slog.String("business_id", businessID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve business"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// updateBusiness godoc
// @Summary Update a business listing
// @Description Updates content fields of a listing. Owner-only; funding terms are immutable.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Param   business body dto.UpdateBusinessRequest true "Fields to update"
// @Success 200 {object} dto.BusinessResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Security BearerAuth
// @Router /businesses/{businessID} [put]
func (h *businessHandler) updateBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), businessID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner may update this business"})
		default:
			logger.Error("Failed to update business", slog.String("error", err.Error()), slog.String("business_id", businessID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// deactivateBusiness godoc
// @Summary Deactivate a business listing
// @Description Soft-deactivates a listing; it disappears from the swipe deck but remains queryable. Owner-only.
// @Tags businesses
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Security BearerAuth
// @Router /businesses/{businessID} [delete]
func (h *businessHandler) deactivateBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.businessService.DeactivateBusiness(c.Request.Context(), businessID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner may deactivate this business"})
		default:
			logger.Error("Failed to deactivate business", slog.String("error", err.Error()), slog.String("business_id", businessID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate business"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// markInvestorInterest godoc
// @Summary Mark interest in an investor
// @Description Records entrepreneur-side interest in an investor for this business. If the investor already liked the business, this completes a match. Owner-only.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Param   interest body dto.MarkInterestRequest true "Investor to mark interest in"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Business not found"
// @Security BearerAuth
// @Router /businesses/{businessID}/interest [post]
func (h *businessHandler) markInvestorInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.MarkInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entrepreneurID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.matchingService.MarkInvestorInterest(c.Request.Context(), entrepreneurID, businessID, req.InvestorID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner may mark interest"})
		default:
			logger.Error("Failed to mark interest", slog.String("error", err.Error()), slog.String("business_id", businessID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark interest"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// calculatePotentialReturn godoc
// @Summary Project the return for an investment amount
// @Description Computes the pro-rata equity slice, implied valuation, and estimated value for a hypothetical amount against this business's funding terms. No investment is created.
// @Tags businesses
// @Accept  json
// @Produce  json
// @Param   businessID path string true "Business ID"
// @Param   projection body dto.PotentialReturnRequest true "Amount to project"
// @Success 200 {object} dto.PotentialReturnResponse
// @Failure 400 {object} map[string]string "Invalid amount or no equity offered"
// @Failure 404 {object} map[string]string "Business not found"
// @Security BearerAuth
// @Router /businesses/{businessID}/potential-return [post]
func (h *businessHandler) calculatePotentialReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.PotentialReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		} else {
			logger.Error("Failed to get business for projection", slog.String("error", err.Error()), slog.String("business_id", businessID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve business"})
		}
		return
	}

	pr, err := h.investmentService.CalculatePotentialReturn(req.Amount, *business)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrNoEquityOffered) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate potential return", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate potential return"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPotentialReturnResponse(pr))
}
