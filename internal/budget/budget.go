// Package budget compares a user's expenses against per-category spending
// limits and filters transactions by calendar period.
//
// Everything here is a pure function of its inputs. Callers load the
// transactions; this package never touches the store.
package budget

import (
	"fmt"
	"math"
	"strings"

	apperrors "ledger/internal/errors"
	"ledger/internal/models"
)

// Band is the severity of a bucket's spending relative to its limit.
type Band string

const (
	BandNominal  Band = "nominal"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// Band thresholds in percent of the limit.
const (
	warningThreshold  = 50
	criticalThreshold = 90
)

// Bucket is a spending limit for one category.
type Bucket struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// Status is the aggregated state of one bucket.
type Status struct {
	Category   string  `json:"category"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Band       Band    `json:"band"`
	OverLimit  bool    `json:"over_limit"`
}

// DefaultBuckets returns the limits used when a client has not configured any.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Category: "food", Limit: 5000},
		{Category: "transport", Limit: 3000},
		{Category: "fun", Limit: 2000},
	}
}

// NewBuckets validates a bucket configuration. Limits must be at least one
// cent and fit a stored amount, and each category may appear only once.
// Limits are rounded to cents.
func NewBuckets(buckets []Bucket) ([]Bucket, error) {
	seen := make(map[string]bool, len(buckets))
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		category := strings.TrimSpace(b.Category)
		if category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bucket category is required")
		}
		if seen[category] {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("duplicate bucket %q", category))
		}
		if math.IsNaN(b.Limit) || math.IsInf(b.Limit, 0) || b.Limit <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidBudgetLimit, fmt.Sprintf("limit for %q must be positive", category))
		}
		cents := models.ToCents(b.Limit)
		if cents <= 0 || cents > models.MaxAmountCents {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidBudgetLimit, fmt.Sprintf("limit for %q is out of range", category))
		}
		seen[category] = true
		out = append(out, Bucket{Category: category, Limit: models.FromCents(cents)})
	}
	return out, nil
}

// Aggregate computes one Status per bucket, in bucket order. Only expenses
// whose category equals the bucket category count; uncategorized expenses
// never match. Buckets are expected to have passed NewBuckets.
func Aggregate(transactions []models.Transaction, buckets []Bucket) []Status {
	spent := make(map[string]int64, len(buckets))
	for i := range transactions {
		tx := &transactions[i]
		if tx.Type != models.TransactionTypeExpense || tx.Category == nil {
			continue
		}
		spent[*tx.Category] += models.ToCents(tx.Amount)
	}

	statuses := make([]Status, 0, len(buckets))
	for _, b := range buckets {
		statuses = append(statuses, evaluate(b, spent[b.Category]))
	}
	return statuses
}

func evaluate(b Bucket, spentCents int64) Status {
	limitCents := models.ToCents(b.Limit)
	return Status{
		Category:   b.Category,
		Limit:      b.Limit,
		Spent:      models.FromCents(spentCents),
		Remaining:  models.FromCents(limitCents - spentCents),
		Percentage: math.Min(float64(spentCents*100)/float64(limitCents), 100),
		Band:       classifyCents(spentCents, limitCents),
		OverLimit:  spentCents > limitCents,
	}
}

// Classify bands spent against a positive limit. Amounts are compared in
// cents, so spending exactly 50% or 90% of the limit reaches the higher band.
func Classify(spent, limit float64) Band {
	return classifyCents(models.ToCents(spent), models.ToCents(limit))
}

func classifyCents(spent, limit int64) Band {
	switch {
	case spent*100 < warningThreshold*limit:
		return BandNominal
	case spent*100 < criticalThreshold*limit:
		return BandWarning
	default:
		return BandCritical
	}
}
