package services

import (
	"context"
	"time"

	"ledger/internal/budget"
	"ledger/internal/insight"
	"ledger/internal/models"
)

// UserServicer is the credential store.
type UserServicer interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Verify(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// NewTransaction holds the caller-supplied fields of a transaction.
// Category and Date are optional.
type NewTransaction struct {
	Description string
	Amount      float64
	Type        models.TransactionType
	Category    *string
	Date        *time.Time
}

// TransactionServicer is the per-user transaction store. Every method is
// scoped to userID; rows owned by other users are never read or written.
type TransactionServicer interface {
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	ListTransactionsInPeriod(ctx context.Context, userID string, period budget.Period) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, userID string, input NewTransaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// SummaryServicer produces the derived views over a user's transactions.
type SummaryServicer interface {
	BudgetStatus(ctx context.Context, userID string, buckets []budget.Bucket) ([]budget.Status, error)
	History(ctx context.Context, userID string, period budget.Period) (*budget.HistoryResult, error)
	Insight(ctx context.Context, userID string) (*insight.Result, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
