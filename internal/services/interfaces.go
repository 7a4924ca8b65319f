package services

import (
	"time"

	"github.com/pukassein/pukatracker/internal/ledger"
	"github.com/pukassein/pukatracker/internal/models"
	"github.com/pukassein/pukatracker/internal/pagination"
)

// TransactionInput carries the fields for a new income or expense
// transaction. Exchange transactions are created only through the exchange
// workflow.
type TransactionInput struct {
	Type          models.TransactionType
	Date          time.Time
	Amount        float64
	Description   string
	Category      models.Category
	PaymentMethod *models.PaymentMethod
	OwedBy        string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Category *models.Category
	OwedBy   *string
	FromDate *time.Time
	ToDate   *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(id string) error
	AllTransactions() ([]models.Transaction, error)
}

// ExchangeResult is the outcome of a successful currency exchange: the new
// balances and the exchange transaction that records it.
type ExchangeResult struct {
	Balances    *models.AccountBalances `json:"balances"`
	Transaction *models.Transaction     `json:"transaction"`
}

// BalanceServicer defines the contract for the dual-currency account balances.
type BalanceServicer interface {
	GetBalances() (*models.AccountBalances, error)
	UpdateBalances(pyg, brl float64) (*models.AccountBalances, error)
	Exchange(pygSold, brlReceived float64) (*ExchangeResult, error)
}

// DebtSummary lists the transactions owed by one tag and their total.
type DebtSummary struct {
	Tag          string               `json:"tag"`
	Total        float64              `json:"total"`
	Transactions []models.Transaction `json:"transactions"`
}

// DebtServicer defines the contract for third-party debt tracking.
type DebtServicer interface {
	GetDebt(tag string) (*DebtSummary, error)
	SettleDebt(tag string) (*models.Transaction, error)
}

// RecurringPaymentInput carries the fields for a new recurring payment.
type RecurringPaymentInput struct {
	Name          string
	Amount        float64
	Category      models.Category
	PaymentMethod models.PaymentMethod
	BillingCycle  models.BillingCycle
	StartDate     time.Time
	Icon          string
}

// MonthStatus is one month of a payment's checklist.
type MonthStatus struct {
	MonthKey string               `json:"month_key"`
	Status   models.PaymentStatus `json:"status"`
	Overdue  bool                 `json:"overdue"`
}

// PaymentChecklist is a payment's derived paid/due state over a calendar year.
type PaymentChecklist struct {
	Payment models.RecurringPayment `json:"payment"`
	Months  []MonthStatus           `json:"months"`
}

// MarkPaidResult is the outcome of marking a recurring payment paid: the
// created expense transaction and the recorded month.
type MarkPaidResult struct {
	Transaction *models.Transaction           `json:"transaction"`
	PaidMonth   *models.RecurringPaymentMonth `json:"paid_month"`
}

// RecurringServicer defines the contract for recurring payments and their
// per-month paid tracking.
type RecurringServicer interface {
	CreatePayment(input RecurringPaymentInput) (*models.RecurringPayment, error)
	ListPayments() ([]models.RecurringPayment, error)
	GetPaymentByID(id string) (*models.RecurringPayment, error)
	Checklist(year int, now time.Time) ([]PaymentChecklist, error)
	MarkPaid(paymentID, monthKey string, method models.PaymentMethod) (*MarkPaidResult, error)
	UnmarkPaid(paymentID, monthKey string) error
}

// Summary is the dashboard rollup over the full transaction history.
type Summary struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	CashBalance     float64 `json:"cash_balance"`
	CreditCardDebt  float64 `json:"credit_card_debt"`
}

// ReportServicer defines the contract for derived, read-only reports.
type ReportServicer interface {
	GetSummary(now time.Time) (*Summary, error)
	GetBudget(now time.Time) (*ledger.BudgetReport, error)
	GetStatistics(from, to time.Time) (*ledger.Statistics, error)
}
