package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ledger/internal/budget"
	apperrors "ledger/internal/errors"
	"ledger/internal/metrics"
	"ledger/internal/models"
	"ledger/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	summaryService     services.SummaryServicer
	auditService       services.AuditServicer
	metrics            *metrics.Registry
	now                func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler. m may be nil.
func NewTransactionHandler(transactionService services.TransactionServicer, summaryService services.SummaryServicer, auditService services.AuditServicer, m *metrics.Registry) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		summaryService:     summaryService,
		auditService:       auditService,
		metrics:            m,
		now:                time.Now,
	}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"max=500" example:"Groceries"`
	Amount      float64                `json:"amount" binding:"required,gt=0" example:"1250.50"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type" example:"expense"`
	Category    *string                `json:"category" binding:"omitempty,category_name" example:"food"`
	Date        *string                `json:"date" example:"2024-03-01"`
}

// ListTransactions returns the caller's transactions
// @Summary     List transactions
// @Description List the authenticated user's transactions, most recent first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.Transaction "Transactions"
// @Failure     401 {object} ErrorResponse "Missing token"
// @Failure     403 {object} ErrorResponse "Invalid or expired token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. The date defaults to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Stored transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Missing token"
// @Failure     403 {object} ErrorResponse "Invalid or expired token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	input := services.NewTransaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
	}
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		input.Date = &parsed
	}

	transaction, err := h.transactionService.AddTransaction(c.Request.Context(), userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.metrics.ObserveTransactionCreated(string(transaction.Type))
	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": transaction.Type, "amount": transaction.Amount})

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction deletes one of the caller's transactions
// @Summary     Delete a transaction
// @Description Delete a transaction owned by the authenticated user. Another user's transaction is reported as not found.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Missing token"
// @Failure     403 {object} ErrorResponse "Invalid or expired token"
// @Failure     404 {object} ErrorResponse "Not found or not authorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID := c.Param("id")
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.metrics.ObserveTransactionDeleted()
	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Deleted"})
}

// GetHistory returns the caller's transactions for one month or year
// @Summary     Transaction history
// @Description Filter transactions by month (0-11, or "all") and year, with totals
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       month query    string false "Month 0-11 or all (default all)"
// @Param       year  query    int    false "Year (default current year)"
// @Success     200   {object} budget.HistoryResult "History"
// @Failure     400   {object} ErrorResponse "Invalid period"
// @Failure     401   {object} ErrorResponse "Missing token"
// @Failure     403   {object} ErrorResponse "Invalid or expired token"
// @Failure     500   {object} ErrorResponse "Server error"
// @Router      /transactions/history [get]
func (h *TransactionHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year := c.DefaultQuery("year", strconv.Itoa(h.now().UTC().Year()))
	period, err := budget.ParsePeriod(c.DefaultQuery("month", "all"), year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.summaryService.History(c.Request.Context(), userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
