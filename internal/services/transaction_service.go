package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/models"
	"github.com/pukassein/pukatracker/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and inserts a new income or expense
// transaction. Validation failures never reach the store.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	case models.TransactionTypeExchange:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransactionType, "exchange transactions are created through the exchange workflow")
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !input.Category.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if input.Type == models.TransactionTypeExpense {
		if input.PaymentMethod == nil || !input.PaymentMethod.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expenses require a payment method")
		}
	} else if input.PaymentMethod != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment method is only valid for expenses")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	amount := input.Amount
	category := input.Category
	transaction := &models.Transaction{
		Type:          input.Type,
		Date:          date,
		Amount:        &amount,
		Description:   input.Description,
		Category:      &category,
		PaymentMethod: input.PaymentMethod,
		OwedBy:        input.OwedBy,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// ListTransactions retrieves a paginated, filtered list of transactions,
// newest first.
func (s *transactionService) ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.OwedBy != nil {
		q = q.Where("owed_by = ?", *f.OwedBy)
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction by ID.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AllTransactions loads the full transaction history, newest first. The
// derived reports fold over this list in memory.
func (s *transactionService) AllTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
