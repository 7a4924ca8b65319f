package services

import (
	"testing"
	"time"

	"github.com/pukassein/pukatracker/internal/models"
	"github.com/pukassein/pukatracker/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	txSvc := NewTransactionService(db)
	svc := NewReportService(txSvc)

	now := time.Now()
	testutil.CreateTestIncome(t, db, 1000)
	testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 200)
	testutil.CreateTestExpense(t, db, models.CategoryShopping, models.PaymentMethodCredit, 300)

	summary, err := svc.GetSummary(now)
	testutil.AssertNoError(t, err)

	if summary.MonthlyIncome != 1000 {
		t.Errorf("expected monthly income 1000, got %v", summary.MonthlyIncome)
	}
	if summary.MonthlyExpenses != 500 {
		t.Errorf("expected monthly expenses 500, got %v", summary.MonthlyExpenses)
	}
	if summary.CashBalance != 800 {
		t.Errorf("expected cash balance 800, got %v", summary.CashBalance)
	}
	if summary.CreditCardDebt != 300 {
		t.Errorf("expected credit card debt 300, got %v", summary.CreditCardDebt)
	}
}

func TestGetSummaryEmptyStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(NewTransactionService(db))

	summary, err := svc.GetSummary(time.Now())
	testutil.AssertNoError(t, err)

	if summary.MonthlyIncome != 0 || summary.MonthlyExpenses != 0 || summary.CashBalance != 0 || summary.CreditCardDebt != 0 {
		t.Errorf("expected all-zero summary, got %+v", summary)
	}
}

func TestGetBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(NewTransactionService(db))

	testutil.CreateTestIncome(t, db, 1000)
	testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 90)

	report, err := svc.GetBudget(time.Now())
	testutil.AssertNoError(t, err)

	if report.MonthlyIncome != 1000 {
		t.Fatalf("expected income 1000, got %v", report.MonthlyIncome)
	}
	for _, g := range report.Groups {
		if g.Name == "Food" {
			if g.Spent != 90 {
				t.Errorf("expected food spend 90, got %v", g.Spent)
			}
			return
		}
	}
	t.Fatal("Food group missing from report")
}

func TestGetBudgetZeroIncome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(NewTransactionService(db))

	testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 90)

	report, err := svc.GetBudget(time.Now())
	testutil.AssertNoError(t, err)
	if len(report.Groups) != 0 {
		t.Errorf("expected no groups with zero income, got %d", len(report.Groups))
	}
}

func TestGetStatistics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(NewTransactionService(db))

	testutil.CreateTestIncome(t, db, 1000)
	testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 90)
	testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCredit, 30)
	testutil.CreateTestExpense(t, db, models.CategoryTransport, models.PaymentMethodCash, 60)

	now := time.Now()
	stats, err := svc.GetStatistics(now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	testutil.AssertNoError(t, err)

	if stats.TotalIncome != 1000 {
		t.Errorf("expected total income 1000, got %v", stats.TotalIncome)
	}
	if stats.TotalExpenses != 180 {
		t.Errorf("expected total expenses 180, got %v", stats.TotalExpenses)
	}
	if stats.NetFlow != 820 {
		t.Errorf("expected net flow 820, got %v", stats.NetFlow)
	}
	if len(stats.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats.Categories))
	}
	if stats.Categories[0].Category != models.CategoryFood || stats.Categories[0].Total != 120 {
		t.Errorf("expected Food 120 first, got %s %v", stats.Categories[0].Category, stats.Categories[0].Total)
	}
}

func TestGetStatisticsExcludesOutOfRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(NewTransactionService(db))

	testutil.CreateTestExpense(t, db, models.CategoryFood, models.PaymentMethodCash, 100)

	now := time.Now()
	stats, err := svc.GetStatistics(now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
	testutil.AssertNoError(t, err)

	if stats.TotalExpenses != 0 || len(stats.Categories) != 0 {
		t.Errorf("expected empty statistics outside the range, got %+v", stats)
	}
}

func TestGetStatisticsInvertedRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewReportService(NewTransactionService(db))

	now := time.Now()
	_, err := svc.GetStatistics(now, now.AddDate(0, 0, -1))
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
