package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/models"
)

// balanceService handles the dual-currency account balances and the
// currency exchange workflow.
type balanceService struct {
	db *gorm.DB
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(db *gorm.DB) BalanceServicer {
	return &balanceService{db: db}
}

// GetBalances fetches the singleton balances row, seeding a zero row if
// none exists yet.
func (s *balanceService) GetBalances() (*models.AccountBalances, error) {
	var balances models.AccountBalances
	err := s.db.First(&balances).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(&balances).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &balances, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &balances, nil
}

// UpdateBalances overwrites both balances with user-supplied values.
// Negative values are rejected locally; the store is never called.
func (s *balanceService) UpdateBalances(pyg, brl float64) (*models.AccountBalances, error) {
	if pyg < 0 || brl < 0 {
		return nil, apperrors.ErrNegativeBalance
	}

	balances, err := s.GetBalances()
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(balances).Updates(map[string]interface{}{"pyg": pyg, "brl": brl}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	balances.Pyg = pyg
	balances.Brl = brl
	return balances, nil
}

// Exchange sells PYG for BRL. The balance update and the exchange
// transaction are two separate writes with no surrounding transaction: if
// the balance update fails nothing has happened, but if the transaction
// insert fails the balances have already been committed. That second
// failure is reported as a consistency warning rather than rolled back.
func (s *balanceService) Exchange(pygSold, brlReceived float64) (*ExchangeResult, error) {
	if pygSold <= 0 || brlReceived <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "exchange amounts must be greater than zero")
	}

	balances, err := s.GetBalances()
	if err != nil {
		return nil, err
	}
	if pygSold > balances.Pyg {
		return nil, apperrors.ErrInsufficientBalance
	}

	newPyg := balances.Pyg - pygSold
	newBrl := balances.Brl + brlReceived

	// Step 1: commit the balance change. Failure here aborts cleanly.
	if err := s.db.Model(balances).Updates(map[string]interface{}{"pyg": newPyg, "brl": newBrl}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	balances.Pyg = newPyg
	balances.Brl = newBrl

	// Step 2: record the exchange. The balance change above is already
	// durable and is not rolled back if this fails.
	sold := pygSold
	received := brlReceived
	transaction := &models.Transaction{
		Type:        models.TransactionTypeExchange,
		Date:        time.Now(),
		PygSold:     &sold,
		BrlReceived: &received,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExchangeNotRecorded, err)
	}

	return &ExchangeResult{Balances: balances, Transaction: transaction}, nil
}
