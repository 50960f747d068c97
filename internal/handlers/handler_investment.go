package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/dto"
	"github.com/SscSPs/investment_admin_core/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// investmentHandler handles HTTP requests related to investment decisions.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(svc portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: svc}
}

// registerInvestmentRoutes registers routes related to investments.
func registerInvestmentRoutes(rg *gin.RouterGroup, svc portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(svc)

	investments := rg.Group("/investments")
	{
		investments.GET("/:investmentID", h.getInvestment)
		investments.GET("/:investmentID/transactions", h.listInvestmentTransactions)
		investments.POST("/:investmentID/approve", h.approveInvestment)
		investments.POST("/:investmentID/reject", h.rejectInvestment)
	}
}

// respondError writes err with the status it maps to. Server-side failures are
// logged at error level and answered with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.Int("status", status))
		message := http.StatusText(status)
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			message = appErr.Message
		}
		c.JSON(status, ErrorResponse{Error: message})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// approveInvestment godoc
// @Summary Approve a pending investment
// @Description Debits the investor's wallet, credits the project and activates the investment in one atomic step. Approving an already active investment is a no-op.
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 200 {object} dto.DecisionResult
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Investment or wallet not found"
// @Failure 409 {object} ErrorResponse "Investment is not pending, or concurrent modification"
// @Failure 422 {object} ErrorResponse "Business rule violated"
// @Failure 500 {object} ErrorResponse "Failed to approve investment"
// @Security BearerAuth
// @Router /investments/{investmentID}/approve [post]
func (h *investmentHandler) approveInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("investment_id", investmentID))
	logger.Info("Received request to approve investment")

	result, err := h.investmentService.ApproveInvestment(c.Request.Context(), investmentID, actor)
	if err != nil {
		respondError(c, logger, "Failed to approve investment", err)
		return
	}

	logger.Info("Investment approval handled", slog.Bool("already_processed", result.AlreadyProcessed))
	c.JSON(http.StatusOK, result)
}

// rejectInvestment godoc
// @Summary Reject a pending investment
// @Description Cancels a pending investment and records the reason. No money moves. Rejecting an already cancelled investment is a no-op.
// @Tags investments
// @Accept json
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Param rejection body dto.RejectInvestmentRequest true "Rejection reason"
// @Success 200 {object} dto.DecisionResult
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Failure 409 {object} ErrorResponse "Investment is not pending, or concurrent modification"
// @Failure 500 {object} ErrorResponse "Failed to reject investment"
// @Security BearerAuth
// @Router /investments/{investmentID}/reject [post]
func (h *investmentHandler) rejectInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	var req dto.RejectInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RejectInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("investment_id", investmentID))
	logger.Info("Received request to reject investment")

	result, err := h.investmentService.RejectInvestment(c.Request.Context(), investmentID, req.Reason, actor)
	if err != nil {
		respondError(c, logger, "Failed to reject investment", err)
		return
	}

	logger.Info("Investment rejection handled", slog.Bool("already_processed", result.AlreadyProcessed))
	c.JSON(http.StatusOK, result)
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve investment"
// @Security BearerAuth
// @Router /investments/{investmentID} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("investmentID")))

	investment, err := h.investmentService.GetInvestment(c.Request.Context(), c.Param("investmentID"))
	if err != nil {
		respondError(c, logger, "Failed to get investment", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// listInvestmentTransactions godoc
// @Summary List the history records of an investment
// @Description Newest first, paginated with an opaque nextToken.
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Param limit query int false "Page size (1-100, default 20)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Investment not found"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /investments/{investmentID}/transactions [get]
func (h *investmentHandler) listInvestmentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", c.Param("investmentID")))

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInvestmentTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.investmentService.ListInvestmentTransactions(c.Request.Context(), c.Param("investmentID"), params)
	if err != nil {
		respondError(c, logger, "Failed to list investment transactions", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
