package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ledger/internal/budget"
	apperrors "ledger/internal/errors"
	"ledger/internal/insight"
)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/budgets/status", handler.BudgetStatus)
	auth.GET("/insights", handler.GetInsight)
	return r
}

func TestSummaryHandler_BudgetStatus(t *testing.T) {
	t.Run("passes buckets through in order", func(t *testing.T) {
		var got []budget.Bucket
		svc := &mockSummaryService{
			budgetStatusFn: func(_ context.Context, _ string, buckets []budget.Bucket) ([]budget.Status, error) {
				got = buckets
				return []budget.Status{
					{Category: "rent", Limit: 1000, Spent: 1000, Percentage: 100, Band: budget.BandCritical},
					{Category: "food", Limit: 200, Spent: 20, Remaining: 180, Percentage: 10, Band: budget.BandNominal},
				}, nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(svc))

		rec := doRequest(r, "POST", "/budgets/status",
			`{"buckets":[{"category":"rent","limit":1000},{"category":"food","limit":200}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 2 || got[0].Category != "rent" || got[1].Limit != 200 {
			t.Errorf("unexpected buckets passed to service: %+v", got)
		}
		buckets, ok := parseJSON(t, rec)["buckets"].([]interface{})
		if !ok || len(buckets) != 2 {
			t.Fatalf("expected 2 bucket statuses, got %s", rec.Body.String())
		}
		first := buckets[0].(map[string]interface{})
		if first["band"] != "critical" || first["over_limit"] != false {
			t.Errorf("unexpected first status: %v", first)
		}
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		called := false
		svc := &mockSummaryService{
			budgetStatusFn: func(_ context.Context, _ string, buckets []budget.Bucket) ([]budget.Status, error) {
				called = true
				if len(buckets) != 0 {
					t.Errorf("expected no buckets, got %+v", buckets)
				}
				return []budget.Status{}, nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(svc))

		rec := doRequest(r, "POST", "/budgets/status", "")

		if rec.Code != http.StatusOK || !called {
			t.Fatalf("expected 200 and a service call, got %d", rec.Code)
		}
	})

	t.Run("empty chunked body uses defaults", func(t *testing.T) {
		called := false
		svc := &mockSummaryService{
			budgetStatusFn: func(_ context.Context, _ string, buckets []budget.Bucket) ([]budget.Status, error) {
				called = true
				if len(buckets) != 0 {
					t.Errorf("expected no buckets, got %+v", buckets)
				}
				return []budget.Status{}, nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(svc))

		req := httptest.NewRequest("POST", "/budgets/status", strings.NewReader(""))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK || !called {
			t.Fatalf("expected 200 and a service call, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid limit", func(t *testing.T) {
		svc := &mockSummaryService{
			budgetStatusFn: func(context.Context, string, []budget.Bucket) ([]budget.Status, error) {
				return nil, apperrors.ErrInvalidBudgetLimit
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(svc))

		rec := doRequest(r, "POST", "/budgets/status", `{"buckets":[{"category":"food","limit":-1}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_BUDGET_LIMIT")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}))

		rec := doRequest(r, "POST", "/budgets/status", `{"buckets":{}}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSummaryHandler_GetInsight(t *testing.T) {
	svc := &mockSummaryService{
		insightFn: func(context.Context, string) (*insight.Result, error) {
			return &insight.Result{
				Title:        "Deficit",
				Message:      "You overspent by 2000.",
				Severity:     insight.SeverityCritical,
				TotalIncome:  3000,
				TotalExpense: 5000,
				Overage:      2000,
			}, nil
		},
	}
	r := setupSummaryRouter(NewSummaryHandler(svc))

	rec := doRequest(r, "GET", "/insights", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["title"] != "Deficit" || result["severity"] != "critical" {
		t.Errorf("unexpected body: %v", result)
	}
}
