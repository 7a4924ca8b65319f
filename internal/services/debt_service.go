package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/models"
)

// debtService tracks expenses paid on behalf of third parties and settles
// them into a single income transaction.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// GetDebt lists the transactions owed by the given tag and their total.
func (s *debtService) GetDebt(tag string) (*DebtSummary, error) {
	transactions, total, err := s.owedTransactions(tag)
	if err != nil {
		return nil, err
	}
	return &DebtSummary{Tag: tag, Total: total, Transactions: transactions}, nil
}

// SettleDebt deletes every transaction owed by the tag and records a single
// income transaction for the summed amount. The two writes are not atomic:
// if the income insert fails after the deletes succeeded, the debt history
// is gone with no compensating income, which is reported as a consistency
// warning.
func (s *debtService) SettleDebt(tag string) (*models.Transaction, error) {
	transactions, total, err := s.owedTransactions(tag)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 || total <= 0 {
		return nil, apperrors.ErrNoDebtToSettle
	}

	// Step 1: clear the owed transactions. Failure here aborts cleanly.
	if err := s.db.Where("owed_by = ?", tag).Delete(&models.Transaction{}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Step 2: record the settlement as income. The deletes above are
	// already durable and are not rolled back if this fails.
	amount := total
	category := models.CategoryIncome
	settlement := &models.Transaction{
		Type:        models.TransactionTypeIncome,
		Date:        time.Now(),
		Amount:      &amount,
		Description: fmt.Sprintf("%s settled their debt", tag),
		Category:    &category,
	}
	if err := s.db.Create(settlement).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSettlementNotRecorded, err)
	}

	return settlement, nil
}

func (s *debtService) owedTransactions(tag string) ([]models.Transaction, float64, error) {
	if tag == "" {
		return nil, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "owed-by tag is required")
	}

	var transactions []models.Transaction
	if err := s.db.Where("owed_by = ?", tag).Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total float64
	for _, t := range transactions {
		total += t.AmountValue()
	}
	return transactions, total, nil
}
