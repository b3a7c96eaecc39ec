package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ledger/internal/budget"
	apperrors "ledger/internal/errors"
	"ledger/internal/insight"
	"ledger/internal/models"
	"ledger/internal/services"
)

// --- mock services ---

type mockTransactionService struct {
	listTransactionsFn         func(ctx context.Context, userID string) ([]models.Transaction, error)
	listTransactionsInPeriodFn func(ctx context.Context, userID string, period budget.Period) ([]models.Transaction, error)
	addTransactionFn           func(ctx context.Context, userID string, input services.NewTransaction) (*models.Transaction, error)
	deleteTransactionFn        func(ctx context.Context, userID, transactionID string) error
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(ctx, userID)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactionsInPeriod(ctx context.Context, userID string, period budget.Period) ([]models.Transaction, error) {
	if m.listTransactionsInPeriodFn != nil {
		return m.listTransactionsInPeriodFn(ctx, userID, period)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) AddTransaction(ctx context.Context, userID string, input services.NewTransaction) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ctx, userID, input)
	}
	return &models.Transaction{UserID: userID, Amount: input.Amount, Type: input.Type}, nil
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockSummaryService struct {
	budgetStatusFn func(ctx context.Context, userID string, buckets []budget.Bucket) ([]budget.Status, error)
	historyFn      func(ctx context.Context, userID string, period budget.Period) (*budget.HistoryResult, error)
	insightFn      func(ctx context.Context, userID string) (*insight.Result, error)
}

func (m *mockSummaryService) BudgetStatus(ctx context.Context, userID string, buckets []budget.Bucket) ([]budget.Status, error) {
	if m.budgetStatusFn != nil {
		return m.budgetStatusFn(ctx, userID, buckets)
	}
	return []budget.Status{}, nil
}

func (m *mockSummaryService) History(ctx context.Context, userID string, period budget.Period) (*budget.HistoryResult, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID, period)
	}
	return &budget.HistoryResult{Period: period, Transactions: []models.Transaction{}}, nil
}

func (m *mockSummaryService) Insight(ctx context.Context, userID string) (*insight.Result, error) {
	if m.insightFn != nil {
		return m.insightFn(ctx, userID)
	}
	return &insight.Result{}, nil
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/transactions", handler.ListTransactions)
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions/history", handler.GetHistory)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func newTransactionHandler(txSvc *mockTransactionService, summarySvc *mockSummaryService) *TransactionHandler {
	if summarySvc == nil {
		summarySvc = &mockSummaryService{}
	}
	return NewTransactionHandler(txSvc, summarySvc, &mockAuditService{}, nil)
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("returns the caller's transactions", func(t *testing.T) {
		var gotUser string
		txSvc := &mockTransactionService{
			listTransactionsFn: func(_ context.Context, userID string) ([]models.Transaction, error) {
				gotUser = userID
				return []models.Transaction{
					{Base: models.Base{ID: "a"}, UserID: userID, Amount: 10, Type: models.TransactionTypeIncome},
					{Base: models.Base{ID: "b"}, UserID: userID, Amount: 5, Type: models.TransactionTypeExpense},
				}, nil
			},
		}
		r := setupTransactionRouter(newTransactionHandler(txSvc, nil))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotUser != testUserID {
			t.Errorf("service called for %q, want %q", gotUser, testUserID)
		}
		var txs []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &txs); err != nil {
			t.Fatalf("expected JSON array: %v", err)
		}
		if len(txs) != 2 || txs[0]["id"] != "a" {
			t.Errorf("unexpected list: %v", txs)
		}
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		r := setupTransactionRouter(newTransactionHandler(&mockTransactionService{}, nil))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
			t.Errorf("expected 200 [], got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 401 without identity", func(t *testing.T) {
		handler := newTransactionHandler(&mockTransactionService{}, nil)
		r := gin.New()
		r.GET("/transactions", handler.ListTransactions)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHENTICATED")
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 200 with the stored transaction", func(t *testing.T) {
		var got services.NewTransaction
		txSvc := &mockTransactionService{
			addTransactionFn: func(_ context.Context, userID string, input services.NewTransaction) (*models.Transaction, error) {
				got = input
				return &models.Transaction{
					Base:        models.Base{ID: "tx-1"},
					UserID:      userID,
					Description: input.Description,
					Amount:      input.Amount,
					Type:        input.Type,
					Category:    input.Category,
					Date:        *input.Date,
				}, nil
			},
		}
		r := setupTransactionRouter(newTransactionHandler(txSvc, nil))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Lunch","amount":12.5,"type":"expense","category":"food","date":"2024-03-05"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"] != "tx-1" || result["category"] != "food" || result["amount"] != 12.5 {
			t.Errorf("unexpected body: %v", result)
		}
		if got.Date == nil || !got.Date.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected parsed date, got %v", got.Date)
		}
	})

	t.Run("date is optional", func(t *testing.T) {
		var got services.NewTransaction
		txSvc := &mockTransactionService{
			addTransactionFn: func(_ context.Context, _ string, input services.NewTransaction) (*models.Transaction, error) {
				got = input
				return &models.Transaction{Type: input.Type}, nil
			},
		}
		r := setupTransactionRouter(newTransactionHandler(txSvc, nil))

		rec := doRequest(r, "POST", "/transactions", `{"amount":100,"type":"income"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Date != nil || got.Category != nil {
			t.Errorf("expected no date or category, got %+v", got)
		}
	})

	tests := []struct {
		name string
		body string
		code string
	}{
		{"zero amount", `{"amount":0,"type":"expense"}`, "INVALID_AMOUNT"},
		{"negative amount", `{"amount":-3,"type":"expense"}`, "INVALID_AMOUNT"},
		{"unknown type", `{"amount":3,"type":"transfer"}`, "INVALID_TRANSACTION_TYPE"},
		{"missing type", `{"amount":3}`, "INVALID_TRANSACTION_TYPE"},
		{"amount as text", `{"amount":"3","type":"expense"}`, "INVALID_INPUT"},
		{"bad date", `{"amount":3,"type":"expense","date":"yesterday"}`, "INVALID_INPUT"},
		{"multiline category", `{"amount":3,"type":"expense","category":"a\nb"}`, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			called := false
			txSvc := &mockTransactionService{
				addTransactionFn: func(context.Context, string, services.NewTransaction) (*models.Transaction, error) {
					called = true
					return &models.Transaction{}, nil
				},
			}
			r := setupTransactionRouter(newTransactionHandler(txSvc, nil))

			rec := doRequest(r, "POST", "/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), tt.code)
			if called {
				t.Error("service must not be called for invalid input")
			}
		})
	}
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 Deleted", func(t *testing.T) {
		var gotUser, gotID string
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(_ context.Context, userID, id string) error {
				gotUser, gotID = userID, id
				return nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockSummaryService{}, audit, nil))

		rec := doRequest(r, "DELETE", "/transactions/tx-9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["message"] != "Deleted" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
		if gotUser != testUserID || gotID != "tx-9" {
			t.Errorf("service called with (%q, %q)", gotUser, gotID)
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceID != "tx-9" {
			t.Errorf("expected DELETE audit entry, got %v", audit.entries)
		}
	})

	t.Run("returns 404 for foreign or missing transaction", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(context.Context, string, string) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(newTransactionHandler(txSvc, nil))

		rec := doRequest(r, "DELETE", "/transactions/someone-elses", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_GetHistory(t *testing.T) {
	t.Run("parses month and year", func(t *testing.T) {
		var got budget.Period
		summarySvc := &mockSummaryService{
			historyFn: func(_ context.Context, _ string, period budget.Period) (*budget.HistoryResult, error) {
				got = period
				return &budget.HistoryResult{Period: period, Transactions: []models.Transaction{}, TotalExpense: 40, Count: 1}, nil
			},
		}
		r := setupTransactionRouter(newTransactionHandler(&mockTransactionService{}, summarySvc))

		rec := doRequest(r, "GET", "/transactions/history?month=1&year=2024", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got != (budget.Period{Month: 1, Year: 2024}) {
			t.Errorf("unexpected period %+v", got)
		}
		if parseJSON(t, rec)["total_expense"] != 40.0 {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("defaults to all months of the current year", func(t *testing.T) {
		var got budget.Period
		summarySvc := &mockSummaryService{
			historyFn: func(_ context.Context, _ string, period budget.Period) (*budget.HistoryResult, error) {
				got = period
				return &budget.HistoryResult{Period: period, Transactions: []models.Transaction{}}, nil
			},
		}
		handler := newTransactionHandler(&mockTransactionService{}, summarySvc)
		handler.now = func() time.Time { return time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC) }
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions/history", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != (budget.Period{Month: budget.AllMonths, Year: 2025}) {
			t.Errorf("unexpected period %+v", got)
		}
	})

	t.Run("returns 400 on bad month", func(t *testing.T) {
		r := setupTransactionRouter(newTransactionHandler(&mockTransactionService{}, nil))

		rec := doRequest(r, "GET", "/transactions/history?month=12&year=2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})
}
