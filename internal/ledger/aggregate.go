package ledger

import (
	"time"

	"github.com/pukassein/pukatracker/internal/models"
)

// MonthlyTransactions filters to transactions dated at or after the first
// of now's month. The lower bound is inclusive and uses the transaction's
// own date, not its insertion timestamp.
func MonthlyTransactions(transactions []models.Transaction, now time.Time) []models.Transaction {
	start := MonthStart(now)
	var month []models.Transaction
	for _, t := range transactions {
		if !t.Date.Before(start) {
			month = append(month, t)
		}
	}
	return month
}

// MonthlyIncome sums income amounts for the month containing now.
func MonthlyIncome(transactions []models.Transaction, now time.Time) float64 {
	return sumByType(MonthlyTransactions(transactions, now), models.TransactionTypeIncome)
}

// MonthlyExpenses sums expense amounts for the month containing now.
func MonthlyExpenses(transactions []models.Transaction, now time.Time) float64 {
	return sumByType(MonthlyTransactions(transactions, now), models.TransactionTypeExpense)
}

// CashBalance folds over all transactions: income adds, expenses paid by
// cash or the BRL account subtract. Credit-paid expenses are a liability,
// not a cash outflow, so they are excluded until paid off. Exchange
// transactions carry no amount and never contribute.
func CashBalance(transactions []models.Transaction) float64 {
	var balance float64
	for _, t := range transactions {
		switch {
		case t.Type == models.TransactionTypeIncome:
			balance += t.AmountValue()
		case t.PaidBy(models.PaymentMethodCash), t.PaidBy(models.PaymentMethodBRLAccount):
			balance -= t.AmountValue()
		}
	}
	return balance
}

// CreditCardDebt returns the running credit card balance: credit-paid
// expenses minus every transaction categorized as a credit card payment.
// This is a running total across all history, not a per-statement figure.
func CreditCardDebt(transactions []models.Transaction) float64 {
	var debt float64
	for _, t := range transactions {
		if t.PaidBy(models.PaymentMethodCredit) {
			debt += t.AmountValue()
		}
		if t.HasCategory(models.CategoryCreditCardPayment) {
			debt -= t.AmountValue()
		}
	}
	return debt
}

// OwedBy returns the transactions tagged as owed by the given third party
// and their total.
func OwedBy(transactions []models.Transaction, tag string) ([]models.Transaction, float64) {
	var owed []models.Transaction
	var total float64
	for _, t := range transactions {
		if t.OwedBy == tag {
			owed = append(owed, t)
			total += t.AmountValue()
		}
	}
	return owed, total
}

// PaymentStatus derives the 3-value state of a recurring payment for a
// month: paid if a paid-month record exists, not yet due if the month
// precedes the payment's start month, otherwise due.
func PaymentStatus(payment *models.RecurringPayment, month MonthKey) models.PaymentStatus {
	if payment.IsPaid(month.String()) {
		return models.PaymentStatusPaid
	}
	if month.Before(NewMonthKey(payment.StartDate)) {
		return models.PaymentStatusNotYetDue
	}
	return models.PaymentStatusDue
}

// Overdue reports whether a due month lies strictly before the month
// containing now.
func Overdue(month MonthKey, now time.Time) bool {
	return month.Before(NewMonthKey(now))
}

func sumByType(transactions []models.Transaction, txType models.TransactionType) float64 {
	var sum float64
	for _, t := range transactions {
		if t.Type == txType {
			sum += t.AmountValue()
		}
	}
	return sum
}
