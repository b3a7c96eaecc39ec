// Package insight turns a user's income and expense totals into a short
// financial-health message. The rules are a fixed decision table evaluated
// top to bottom; the first matching rule wins.
package insight

import (
	"fmt"

	"ledger/internal/models"
)

// Severity grades an insight for display.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityNominal  Severity = "nominal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Savings rate thresholds in percent of income.
const (
	lowSavingsRate    = 20
	wealthBuilderRate = 50
)

// Result is the classification of a pair of totals.
type Result struct {
	Title         string   `json:"title"`
	Message       string   `json:"message"`
	Severity      Severity `json:"severity"`
	TotalIncome   float64  `json:"total_income"`
	TotalExpense  float64  `json:"total_expense"`
	SavingsRate   float64  `json:"savings_rate"`
	Overage       float64  `json:"overage,omitempty"`
	Discretionary float64  `json:"discretionary,omitempty"`
}

// Generator classifies totals. Policy may be nil, in which case no
// discretionary hint is produced.
type Generator struct {
	Policy DiscretionaryPolicy
}

// NewGenerator returns a Generator using the given policy.
func NewGenerator(policy DiscretionaryPolicy) *Generator {
	return &Generator{Policy: policy}
}

// Totals sums a transaction list by type.
func Totals(transactions []models.Transaction) (income, expense float64) {
	var in, out int64
	for i := range transactions {
		switch transactions[i].Type {
		case models.TransactionTypeIncome:
			in += models.ToCents(transactions[i].Amount)
		case models.TransactionTypeExpense:
			out += models.ToCents(transactions[i].Amount)
		}
	}
	return models.FromCents(in), models.FromCents(out)
}

// Generate computes totals from transactions and classifies them.
func (g *Generator) Generate(transactions []models.Transaction) Result {
	income, expense := Totals(transactions)
	return g.Classify(income, expense, transactions)
}

// Classify applies the decision table to income and expense. transactions
// is consulted only by the discretionary policy for the low-savings hint.
func (g *Generator) Classify(income, expense float64, transactions []models.Transaction) Result {
	r := Result{TotalIncome: income, TotalExpense: expense}

	// Rules are decided in cents so that exact thresholds are not lost to
	// float rounding.
	in, out := models.ToCents(income), models.ToCents(expense)

	switch {
	case in == 0 && out == 0:
		r.Title, r.Severity = "Awaiting Data", SeverityInfo
		r.Message = "Start adding entries."
		return r
	case in == 0:
		r.Title, r.Severity = "Critical Alert", SeverityCritical
		r.Message = "Expenses with no income!"
		return r
	case out > in:
		r.Title, r.Severity = "Deficit", SeverityCritical
		r.Overage = models.FromCents(out - in)
		r.Message = fmt.Sprintf("You overspent by %s.", formatAmount(r.Overage))
		return r
	}

	saved := (in - out) * 100
	r.SavingsRate = float64(saved) / float64(in)

	switch {
	case saved < lowSavingsRate*in:
		r.Title, r.Severity = "Low Savings", SeverityWarning
		r.Message = fmt.Sprintf("You are saving %.0f%% of your income. Aim for at least %d%%.", r.SavingsRate, lowSavingsRate)
		if g.Policy != nil {
			if spent := g.discretionary(transactions); spent > 0 {
				r.Discretionary = spent
				r.Message += fmt.Sprintf(" %s went to discretionary spending.", formatAmount(spent))
			}
		}
	case saved < wealthBuilderRate*in:
		r.Title, r.Severity = "Healthy", SeverityNominal
		r.Message = fmt.Sprintf("Finances are stable. You are saving %.0f%% of your income.", r.SavingsRate)
	default:
		r.Title, r.Severity = "Wealth Builder", SeverityNominal
		r.Message = fmt.Sprintf("Excellent! You are saving %.0f%% of your income.", r.SavingsRate)
	}
	return r
}

func (g *Generator) discretionary(transactions []models.Transaction) float64 {
	var cents int64
	for i := range transactions {
		tx := &transactions[i]
		if tx.Type == models.TransactionTypeExpense && g.Policy.IsDiscretionary(tx) {
			cents += models.ToCents(tx.Amount)
		}
	}
	return models.FromCents(cents)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
