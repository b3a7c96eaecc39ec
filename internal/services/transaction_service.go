package services

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"ledger/internal/budget"
	apperrors "ledger/internal/errors"
	"ledger/internal/models"
	"ledger/internal/uuid"
)

const maxDescriptionLength = 500

// transactionService handles transaction-related business logic.
type transactionService struct {
	db      *gorm.DB
	timeout time.Duration
	now     func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, timeout time.Duration) TransactionServicer {
	return &transactionService{db: db, timeout: timeout, now: time.Now}
}

// ListTransactions returns the user's transactions, most recent first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	transactions := []models.Transaction{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, storeError(err)
	}
	return transactions, nil
}

// ListTransactionsInPeriod returns the user's transactions dated inside period.
func (s *transactionService) ListTransactionsInPeriod(ctx context.Context, userID string, period budget.Period) ([]models.Transaction, error) {
	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	start, end := period.Range()
	transactions := []models.Transaction{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, storeError(err)
	}
	return transactions, nil
}

// AddTransaction validates input and stores it as a new transaction owned by userID.
func (s *transactionService) AddTransaction(ctx context.Context, userID string, input NewTransaction) (*models.Transaction, error) {
	if err := validateNewTransaction(input); err != nil {
		return nil, err
	}

	date := s.now()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Description: strings.TrimSpace(input.Description),
		Amount:      models.FromCents(models.ToCents(input.Amount)),
		Type:        input.Type,
		Category:    normalizeCategory(input.Category),
		Date:        date.UTC(),
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return nil, storeError(err)
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction if it belongs to userID. A
// missing id and another user's id produce the same error.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if !uuid.IsValid(transactionID) {
		return apperrors.ErrTransactionNotFound
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func validateNewTransaction(input NewTransaction) error {
	if !input.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || models.ToCents(input.Amount) <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if models.ToCents(input.Amount) > models.MaxAmountCents {
		return apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be at most 999999999999.99")
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionLength {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 500 characters")
	}
	return nil
}

func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	c := strings.TrimSpace(*category)
	if c == "" {
		return nil
	}
	return &c
}
