package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/ledger"
	"github.com/pukassein/pukatracker/internal/models"
)

// recurringService handles recurring payments and their per-month paid state.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// CreatePayment validates and inserts a new recurring payment.
func (s *recurringService) CreatePayment(input RecurringPaymentInput) (*models.RecurringPayment, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment name is required")
	}
	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !input.Category.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown payment method")
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	payment := &models.RecurringPayment{
		Name:          input.Name,
		Amount:        input.Amount,
		Category:      input.Category,
		PaymentMethod: input.PaymentMethod,
		BillingCycle:  input.BillingCycle,
		StartDate:     startDate,
		Icon:          input.Icon,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payment, nil
}

// ListPayments retrieves every recurring payment with its paid months.
func (s *recurringService) ListPayments() ([]models.RecurringPayment, error) {
	var payments []models.RecurringPayment
	if err := s.db.Preload("PaidMonths").Order("name").Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payments, nil
}

// GetPaymentByID retrieves a recurring payment with its paid months.
func (s *recurringService) GetPaymentByID(id string) (*models.RecurringPayment, error) {
	var payment models.RecurringPayment
	if err := s.db.Preload("PaidMonths").Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payment, nil
}

// Checklist derives the paid/due/not-yet-due state of every payment for
// each month of the given year.
func (s *recurringService) Checklist(year int, now time.Time) ([]PaymentChecklist, error) {
	payments, err := s.ListPayments()
	if err != nil {
		return nil, err
	}

	checklists := make([]PaymentChecklist, 0, len(payments))
	for _, payment := range payments {
		months := make([]MonthStatus, 0, 12)
		for m := time.January; m <= time.December; m++ {
			key := ledger.MonthKey(fmt.Sprintf("%04d-%02d", year, int(m)))
			status := ledger.PaymentStatus(&payment, key)
			months = append(months, MonthStatus{
				MonthKey: key.String(),
				Status:   status,
				Overdue:  status == models.PaymentStatusDue && ledger.Overdue(key, now),
			})
		}
		checklists = append(checklists, PaymentChecklist{Payment: payment, Months: months})
	}
	return checklists, nil
}

// MarkPaid records a recurring payment as paid for one month: it inserts
// the expense transaction, then saves a paid-month row linking back to it.
// If the second write fails the transaction is deleted to compensate; only
// when that compensation itself fails is the store left divergent, which is
// reported as a consistency warning.
func (s *recurringService) MarkPaid(paymentID, monthKey string, method models.PaymentMethod) (*MarkPaidResult, error) {
	payment, err := s.GetPaymentByID(paymentID)
	if err != nil {
		return nil, err
	}

	key, parseErr := ledger.ParseMonthKey(monthKey)
	if parseErr != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error())
	}
	if payment.IsPaid(key.String()) {
		return nil, apperrors.ErrMonthAlreadyPaid
	}
	if !method.IsValid() {
		method = payment.PaymentMethod
	}

	// Step 1: record the expense.
	amount := payment.Amount
	category := payment.Category
	transaction := &models.Transaction{
		Type:          models.TransactionTypeExpense,
		Date:          key.Start(),
		Amount:        &amount,
		Description:   fmt.Sprintf("%s (%s)", payment.Name, key.Label()),
		Category:      &category,
		PaymentMethod: &method,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Step 2: record the paid month with a link to the transaction.
	paidMonth := &models.RecurringPaymentMonth{
		PaymentID:     payment.ID,
		MonthKey:      key.String(),
		TransactionID: transaction.ID,
	}
	if err := s.db.Create(paidMonth).Error; err != nil {
		// Compensate by removing the transaction from step 1.
		if delErr := s.db.Delete(transaction).Error; delErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrPaidMonthNotRecorded, errors.Join(err, delErr))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &MarkPaidResult{Transaction: transaction, PaidMonth: paidMonth}, nil
}

// UnmarkPaid reverses MarkPaid for one month. The linked transaction is
// deleted first; only if that succeeds (or the transaction is already gone)
// is the paid-month row removed. A failed transaction delete aborts the
// whole operation with no state change.
func (s *recurringService) UnmarkPaid(paymentID, monthKey string) error {
	payment, err := s.GetPaymentByID(paymentID)
	if err != nil {
		return err
	}

	key, parseErr := ledger.ParseMonthKey(monthKey)
	if parseErr != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error())
	}
	paidMonth := payment.PaidMonth(key.String())
	if paidMonth == nil {
		return apperrors.ErrMonthNotPaid
	}

	transaction, err := s.findPaymentTransaction(payment, paidMonth, key)
	if err != nil {
		return err
	}
	if transaction != nil {
		if err := s.db.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// Hard delete so the (payment_id, month_key) unique index stays free
	// for the month to be marked paid again later.
	if err := s.db.Unscoped().Delete(paidMonth).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// findPaymentTransaction locates the expense created when the month was
// marked paid. Rows written since the transaction link was introduced carry
// the id directly; older rows fall back to matching by description prefix,
// amount, and month. A missing transaction is not an error: it may have
// been deleted on its own.
func (s *recurringService) findPaymentTransaction(payment *models.RecurringPayment, paidMonth *models.RecurringPaymentMonth, key ledger.MonthKey) (*models.Transaction, error) {
	var transaction models.Transaction

	if paidMonth.TransactionID != "" {
		err := s.db.Where("id = ?", paidMonth.TransactionID).First(&transaction).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &transaction, nil
	}

	err := s.db.Where(
		"type = ? AND description LIKE ? ESCAPE '\\' AND amount = ? AND date >= ? AND date < ?",
		models.TransactionTypeExpense, escapeLike(payment.Name)+"%", payment.Amount, key.Start(), key.End(),
	).First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// escapeLike escapes the LIKE wildcards in a literal so a payment name
// containing % or _ cannot match unrelated descriptions.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
