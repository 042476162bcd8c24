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

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// newInvestmentHandler creates a new investmentHandler.
func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// RegisterInvestmentRoutes registers routes related to investments.
func RegisterInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listMyInvestments)
		investments.GET("/:investmentID", h.getInvestment)
		investments.POST("/:investmentID/cancel", h.cancelInvestment)
		investments.POST("/:investmentID/complete", h.completeInvestment)
	}
}

// createInvestment godoc
// @Summary Create an investment
// @Description Creates a PENDING investment with a pro-rata equity slice. The business's funding total is incremented atomically with the investment insert.
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid amount or terms"
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 409 {object} map[string]string "Business is not open for investment"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), investorID, req.BusinessID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount),
			errors.Is(err, services.ErrNoEquityOffered),
			errors.Is(err, services.ErrAmountOutOfBounds),
			errors.Is(err, services.ErrSelfInvestment),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, services.ErrBusinessNotOpen):
			c.JSON(http.StatusConflict, gin.H{"error": "Business is not open for investment"})
		default:
			logger.Error("Failed to create investment", slog.String("error", err.Error()), slog.String("business_id", req.BusinessID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create investment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// listMyInvestments godoc
// @Summary List the caller's investments
// @Description Returns a token-paginated list of the authenticated investor's investments, newest first
// @Tags investments
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listMyInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInvestmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	investorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.investmentService.ListInvestorInvestments(c.Request.Context(), investorID, params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list investments", slog.String("error", err.Error()), slog.String("investor_id", investorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list investments"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Description Retrieves an investment. Only the owning investor may read it.
// @Tags investments
// @Produce  json
// @Param   investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Investment not found"
// @Security BearerAuth
// @Router /investments/{investmentID} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), investmentID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owning investor may view this investment"})
		default:
			logger.Error("Failed to get investment", slog.String("error", err.Error()), slog.String("investment_id", investmentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve investment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// cancelInvestment godoc
// @Summary Cancel a pending investment
// @Description Transitions a PENDING investment to CANCELLED. Only the owning investor may cancel; completed or cancelled investments cannot be cancelled again.
// @Tags investments
// @Produce  json
// @Param   investmentID path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 409 {object} map[string]string "Investment already finalized"
// @Security BearerAuth
// @Router /investments/{investmentID}/cancel [post]
func (h *investmentHandler) cancelInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.investmentService.CancelInvestment(c.Request.Context(), investmentID, callerID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owning investor may cancel"})
		case errors.Is(err, services.ErrAlreadyFinalized):
			c.JSON(http.StatusConflict, gin.H{"error": "Investment has already been completed or cancelled"})
		default:
			logger.Error("Failed to cancel investment", slog.String("error", err.Error()), slog.String("investment_id", investmentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel investment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// completeInvestment godoc
// @Summary Complete a pending investment
// @Description Transitions a PENDING investment to COMPLETED and stamps the completion time. Driven by the payment settlement callback.
// @Tags investments
// @Produce  json
// @Param   investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 409 {object} map[string]string "Investment already finalized"
// @Security BearerAuth
// @Router /investments/{investmentID}/complete [post]
func (h *investmentHandler) completeInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	investment, err := h.investmentService.CompleteInvestment(c.Request.Context(), investmentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		case errors.Is(err, services.ErrAlreadyFinalized):
			c.JSON(http.StatusConflict, gin.H{"error": "Investment has already been completed or cancelled"})
		default:
			logger.Error("Failed to complete investment", slog.String("error", err.Error()), slog.String("investment_id", investmentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete investment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}
