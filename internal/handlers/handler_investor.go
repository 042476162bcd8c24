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

// investorHandler handles HTTP requests for investor preference profiles.
type investorHandler struct {
	investorService portssvc.InvestorSvcFacade
}

func newInvestorHandler(is portssvc.InvestorSvcFacade) *investorHandler {
	return &investorHandler{investorService: is}
}

// registerInvestorRoutes registers the profile routes.
func registerInvestorRoutes(rg *gin.RouterGroup, investorService portssvc.InvestorSvcFacade) {
	h := newInvestorHandler(investorService)

	investors := rg.Group("/investors")
	{
		investors.PUT("/me", h.upsertMyProfile)
		investors.GET("/me", h.getMyProfile)
	}
}

// upsertMyProfile godoc
// @Summary Create or replace the caller's investor profile
// @Description Sets the investor's name, category focus, and investment amount bounds. The investment registry is preserved across updates.
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpsertInvestorProfileRequest true "Profile fields"
// @Success 200 {object} dto.InvestorProfileResponse
// @Failure 400 {object} map[string]string "Invalid profile fields"
// @Security BearerAuth
// @Router /investors/me [put]
func (h *investorHandler) upsertMyProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpsertInvestorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	profile, err := h.investorService.UpsertInvestorProfile(c.Request.Context(), investorID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativeInvestmentBound), errors.Is(err, services.ErrInvertedBounds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to upsert investor profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestorProfileResponse(profile))
}

// getMyProfile godoc
// @Summary Get the caller's investor profile
// @Tags investors
// @Produce  json
// @Success 200 {object} dto.InvestorProfileResponse
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /investors/me [get]
func (h *investorHandler) getMyProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.investorService.GetInvestorProfile(c.Request.Context(), investorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error("Failed to get investor profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestorProfileResponse(profile))
}
