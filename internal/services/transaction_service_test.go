package services

import (
	"testing"
	"time"

	"github.com/pukassein/pukatracker/internal/models"
	"github.com/pukassein/pukatracker/internal/pagination"
	"github.com/pukassein/pukatracker/internal/testutil"
)

func cashMethod() *models.PaymentMethod {
	m := models.PaymentMethodCash
	return &m
}

func TestCreateTransaction(t *testing.T) {
	t.Run("income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(TransactionInput{
			Type:        models.TransactionTypeIncome,
			Amount:      5000,
			Description: "Salary",
			Category:    models.CategoryIncome,
		})
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.AmountValue() != 5000 {
			t.Errorf("expected amount 5000, got %v", tx.AmountValue())
		}
		if tx.Date.IsZero() {
			t.Error("expected date to default to now")
		}
	})

	t.Run("expense_with_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(TransactionInput{
			Type:          models.TransactionTypeExpense,
			Amount:        300,
			Category:      models.CategoryFood,
			PaymentMethod: cashMethod(),
		})
		testutil.AssertNoError(t, err)
		if !tx.PaidBy(models.PaymentMethodCash) {
			t.Error("expected a cash expense")
		}
	})

	t.Run("expense_without_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeExpense,
			Amount:   300,
			Category: models.CategoryFood,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("income_with_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type:          models.TransactionTypeIncome,
			Amount:        300,
			Category:      models.CategoryIncome,
			PaymentMethod: cashMethod(),
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeIncome,
			Amount:   0,
			Category: models.CategoryIncome,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeIncome,
			Amount:   -100,
			Category: models.CategoryIncome,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeIncome,
			Amount:   100,
			Category: models.Category("Groceries"),
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("exchange_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeExchange,
			Amount:   100,
			Category: models.CategoryOther,
		})
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		old := testutil.CreateTestIncome(t, db, 100)
		db.Model(old).Update("date", time.Now().AddDate(0, 0, -7))
		recent := testutil.CreateTestIncome(t, db, 200)

		result, err := svc.ListTransactions(pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 transactions, got %d", result.TotalItems)
		}
		if result.Data[0].ID != recent.ID {
			t.Error("expected the newest transaction first")
		}
	})

	t.Run("filter_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestIncome(t, db, 100)
		testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 50)

		incomeType := models.TransactionTypeIncome
		result, err := svc.ListTransactions(pagination.PageRequest{}, TransactionFilter{Type: &incomeType})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 income transaction, got %d", result.TotalItems)
		}
		if result.Data[0].Type != models.TransactionTypeIncome {
			t.Errorf("expected income, got %s", result.Data[0].Type)
		}
	})

	t.Run("filter_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 50)
		testutil.CreateTestExpense(t, db, models.CategoryTransport, models.PaymentMethodCash, 20)

		food := models.CategoryFood
		result, err := svc.ListTransactions(pagination.PageRequest{}, TransactionFilter{Category: &food})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 food transaction, got %d", result.TotalItems)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestIncome(t, db, 100)
		}

		result, err := svc.ListTransactions(pagination.PageRequest{Page: 2, PageSize: 2}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected 5 total, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", result.TotalPages)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
	})
}

func TestGetTransactionByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestIncome(t, db, 100)

		tx, err := svc.GetTransactionByID(created.ID)
		testutil.AssertNoError(t, err)
		if tx.ID != created.ID {
			t.Errorf("expected ID %s, got %s", created.ID, tx.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.GetTransactionByID("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestIncome(t, db, 100)

		testutil.AssertNoError(t, svc.DeleteTransaction(created.ID))

		_, err := svc.GetTransactionByID(created.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		err := svc.DeleteTransaction("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
