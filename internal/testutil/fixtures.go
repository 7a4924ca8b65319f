package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pukassein/pukatracker/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense creates an expense transaction with the given category,
// payment method, and amount, dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, category models.Category, method models.PaymentMethod, amount float64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:          models.TransactionTypeExpense,
		Date:          time.Now(),
		Amount:        &amount,
		Description:   fmt.Sprintf("Test Expense %d", nextID()),
		Category:      &category,
		PaymentMethod: &method,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestIncome creates an income transaction with the given amount, dated now.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount float64) *models.Transaction {
	t.Helper()

	category := models.CategoryIncome
	tx := &models.Transaction{
		Type:        models.TransactionTypeIncome,
		Date:        time.Now(),
		Amount:      &amount,
		Description: fmt.Sprintf("Test Income %d", nextID()),
		Category:    &category,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return tx
}

// CreateTestOwedExpense creates a cash expense tagged as owed by the given
// third party.
func CreateTestOwedExpense(t *testing.T, db *gorm.DB, owedBy string, amount float64) *models.Transaction {
	t.Helper()

	category := models.CategoryOther
	method := models.PaymentMethodCash
	tx := &models.Transaction{
		Type:          models.TransactionTypeExpense,
		Date:          time.Now(),
		Amount:        &amount,
		Description:   fmt.Sprintf("Test Owed Expense %d", nextID()),
		Category:      &category,
		PaymentMethod: &method,
		OwedBy:        owedBy,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test owed expense: %v", err)
	}
	return tx
}

// CreateTestRecurringPayment creates a monthly cash bill with the given
// amount, starting at the given date.
func CreateTestRecurringPayment(t *testing.T, db *gorm.DB, amount float64, startDate time.Time) *models.RecurringPayment {
	t.Helper()

	payment := &models.RecurringPayment{
		Name:          fmt.Sprintf("Test Bill %d", nextID()),
		Amount:        amount,
		Category:      models.CategoryBills,
		PaymentMethod: models.PaymentMethodCash,
		BillingCycle:  models.BillingCycleMonthly,
		StartDate:     startDate,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test recurring payment: %v", err)
	}
	return payment
}

// CreateTestBalances creates the singleton balances row with the given values.
func CreateTestBalances(t *testing.T, db *gorm.DB, pyg, brl float64) *models.AccountBalances {
	t.Helper()

	balances := &models.AccountBalances{Pyg: pyg, Brl: brl}
	if err := db.Create(balances).Error; err != nil {
		t.Fatalf("failed to create test balances: %v", err)
	}
	return balances
}
