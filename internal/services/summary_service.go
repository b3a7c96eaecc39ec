package services

import (
	"context"

	"ledger/internal/budget"
	"ledger/internal/insight"
)

// summaryService runs the pure aggregators over a user's transactions.
// It reads only through the transaction store, so ownership scoping
// carries over to every derived view.
type summaryService struct {
	transactions TransactionServicer
	generator    *insight.Generator
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(transactions TransactionServicer, generator *insight.Generator) SummaryServicer {
	if generator == nil {
		generator = insight.NewGenerator(insight.DefaultPolicy())
	}
	return &summaryService{transactions: transactions, generator: generator}
}

// BudgetStatus validates buckets and aggregates the user's expenses against them.
// An empty bucket list means the default buckets.
func (s *summaryService) BudgetStatus(ctx context.Context, userID string, buckets []budget.Bucket) ([]budget.Status, error) {
	if len(buckets) == 0 {
		buckets = budget.DefaultBuckets()
	}
	valid, err := budget.NewBuckets(buckets)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactions.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return budget.Aggregate(txs, valid), nil
}

// History returns the user's transactions and totals for one period.
func (s *summaryService) History(ctx context.Context, userID string, period budget.Period) (*budget.HistoryResult, error) {
	txs, err := s.transactions.ListTransactionsInPeriod(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	result := budget.History(txs, period)
	return &result, nil
}

// Insight classifies the user's all-time income and expense totals.
func (s *summaryService) Insight(ctx context.Context, userID string) (*insight.Result, error) {
	txs, err := s.transactions.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := s.generator.Generate(txs)
	return &result, nil
}
