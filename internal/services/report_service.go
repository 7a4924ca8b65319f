package services

import (
	"time"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/ledger"
)

// reportService computes the derived, read-only reports. It loads the full
// transaction history and folds over it in memory on every call; the data
// set is one person's ledger, not a warehouse.
type reportService struct {
	transactions TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactions TransactionServicer) ReportServicer {
	return &reportService{transactions: transactions}
}

// GetSummary computes the dashboard rollup for the month containing now.
func (s *reportService) GetSummary(now time.Time) (*Summary, error) {
	all, err := s.transactions.AllTransactions()
	if err != nil {
		return nil, err
	}
	return &Summary{
		MonthlyIncome:   ledger.MonthlyIncome(all, now),
		MonthlyExpenses: ledger.MonthlyExpenses(all, now),
		CashBalance:     ledger.CashBalance(all),
		CreditCardDebt:  ledger.CreditCardDebt(all),
	}, nil
}

// GetBudget computes the budget breakdown for the month containing now.
func (s *reportService) GetBudget(now time.Time) (*ledger.BudgetReport, error) {
	all, err := s.transactions.AllTransactions()
	if err != nil {
		return nil, err
	}
	report := ledger.ComputeBudget(all, now)
	return &report, nil
}

// GetStatistics computes the spending analysis for the inclusive date range
// [from, to]: income and expense totals and the per-category breakdown.
func (s *reportService) GetStatistics(from, to time.Time) (*ledger.Statistics, error) {
	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}
	all, err := s.transactions.AllTransactions()
	if err != nil {
		return nil, err
	}
	stats := ledger.ComputeStatistics(all, from, to)
	return &stats, nil
}
