package budget

import (
	"strconv"
	"strings"
	"time"

	apperrors "ledger/internal/errors"
	"ledger/internal/models"
)

// AllMonths selects every month of the period's year.
const AllMonths = -1

// Period selects transactions by calendar month and year, evaluated in UTC.
// Month is zero-indexed (0 = January) or AllMonths.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ParsePeriod parses the query form of a period: month is "all" or 0..11,
// year is a four-digit year.
func ParsePeriod(month, year string) (Period, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 1970 || y > 9999 {
		return Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "year must be a four-digit number")
	}

	month = strings.TrimSpace(month)
	if month == "" || strings.EqualFold(month, "all") {
		return Period{Month: AllMonths, Year: y}, nil
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 0 || m > 11 {
		return Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "month must be \"all\" or 0-11")
	}
	return Period{Month: m, Year: y}, nil
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	t = t.UTC()
	if t.Year() != p.Year {
		return false
	}
	return p.Month == AllMonths || int(t.Month())-1 == p.Month
}

// Range returns the half-open interval [start, end) covered by the period.
func (p Period) Range() (start, end time.Time) {
	if p.Month == AllMonths {
		start = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start = time.Date(p.Year, time.Month(p.Month+1), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// HistoryResult is the filtered view of one period.
type HistoryResult struct {
	Period       Period               `json:"period"`
	Transactions []models.Transaction `json:"transactions"`
	TotalExpense float64              `json:"total_expense"`
	TotalIncome  float64              `json:"total_income"`
	Count        int                  `json:"count"`
}

// History keeps the transactions inside p, preserving input order, and
// totals them by type. No matches is an empty result, not an error.
func History(transactions []models.Transaction, p Period) HistoryResult {
	result := HistoryResult{Period: p, Transactions: []models.Transaction{}}

	var expense, income int64
	for _, tx := range transactions {
		if !p.Contains(tx.Date) {
			continue
		}
		result.Transactions = append(result.Transactions, tx)
		switch tx.Type {
		case models.TransactionTypeExpense:
			expense += models.ToCents(tx.Amount)
		case models.TransactionTypeIncome:
			income += models.ToCents(tx.Amount)
		}
	}

	result.TotalExpense = models.FromCents(expense)
	result.TotalIncome = models.FromCents(income)
	result.Count = len(result.Transactions)
	return result
}
