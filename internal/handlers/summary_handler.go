package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger/internal/budget"
	"ledger/internal/services"
)

// SummaryHandler serves the derived views: budget status and insights.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// BudgetStatusRequest carries the client's bucket configuration. An empty
// list selects the default buckets.
type BudgetStatusRequest struct {
	Buckets []budget.Bucket `json:"buckets"`
}

// BudgetStatusResponse lists one status per requested bucket, in order.
type BudgetStatusResponse struct {
	Buckets []budget.Status `json:"buckets"`
}

// BudgetStatus handles budget aggregation
// @Summary     Budget status
// @Description Compare the user's expenses against per-category limits
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body     BudgetStatusRequest false "Bucket limits"
// @Success     200     {object} BudgetStatusResponse "Status per bucket"
// @Failure     400     {object} ErrorResponse "Invalid bucket configuration"
// @Failure     401     {object} ErrorResponse "Missing token"
// @Failure     403     {object} ErrorResponse "Invalid or expired token"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /budgets/status [post]
func (h *SummaryHandler) BudgetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// An empty body, with or without a Content-Length, selects the defaults.
	var req BudgetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, bindingError(err))
		return
	}

	statuses, err := h.summaryService.BudgetStatus(c.Request.Context(), userID, req.Buckets)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetStatusResponse{Buckets: statuses})
}

// GetInsight handles insight generation
// @Summary     Financial insight
// @Description Classify the user's all-time income and expenses into a short assessment
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} insight.Result "Insight"
// @Failure     401 {object} ErrorResponse "Missing token"
// @Failure     403 {object} ErrorResponse "Invalid or expired token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *SummaryHandler) GetInsight(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.summaryService.Insight(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
