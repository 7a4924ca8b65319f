package models

import "time"

// BillingCycle represents how often a recurring payment is due
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// PaymentStatus is the derived state of a recurring payment for a given month.
type PaymentStatus string

const (
	// PaymentStatusNotYetDue means the month precedes the payment's start date.
	PaymentStatusNotYetDue PaymentStatus = "not_yet_due"
	// PaymentStatusDue means the month is unpaid. A due month earlier than
	// the current one is overdue.
	PaymentStatusDue PaymentStatus = "due"
	// PaymentStatusPaid means a paid-month record exists for the month.
	PaymentStatusPaid PaymentStatus = "paid"
)

// RecurringPayment represents a bill that recurs on a billing cycle.
// Which months have been paid is tracked through RecurringPaymentMonth
// child rows rather than stored on the payment itself.
type RecurringPayment struct {
	Base
	Name          string        `gorm:"not null" json:"name"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Category      Category      `gorm:"not null" json:"category"`
	PaymentMethod PaymentMethod `gorm:"not null" json:"payment_method"`
	BillingCycle  BillingCycle  `gorm:"not null" json:"billing_cycle"`
	StartDate     time.Time     `gorm:"not null" json:"start_date"`
	Icon          string        `json:"icon,omitempty"`

	// Relationships
	PaidMonths []RecurringPaymentMonth `gorm:"foreignKey:PaymentID" json:"paid_months,omitempty"`
}

// RecurringPaymentMonth records that a payment was made for one calendar
// month. TransactionID links the expense transaction created when the month
// was marked paid, so unmarking can delete exactly that transaction instead
// of guessing by description and amount.
type RecurringPaymentMonth struct {
	Base
	PaymentID     string `gorm:"type:uuid;not null;uniqueIndex:idx_payment_month" json:"payment_id"`
	MonthKey      string `gorm:"not null;uniqueIndex:idx_payment_month" json:"month_key"`
	TransactionID string `gorm:"type:uuid" json:"transaction_id,omitempty"`
}

// PaidMonthKeys returns the set of month keys already paid, in row order.
func (p *RecurringPayment) PaidMonthKeys() []string {
	keys := make([]string, 0, len(p.PaidMonths))
	for _, m := range p.PaidMonths {
		keys = append(keys, m.MonthKey)
	}
	return keys
}

// PaidMonth returns the paid-month record for the given month key, if any.
func (p *RecurringPayment) PaidMonth(monthKey string) *RecurringPaymentMonth {
	for i := range p.PaidMonths {
		if p.PaidMonths[i].MonthKey == monthKey {
			return &p.PaidMonths[i]
		}
	}
	return nil
}

// IsPaid reports whether the given month key has been marked paid.
func (p *RecurringPayment) IsPaid(monthKey string) bool {
	return p.PaidMonth(monthKey) != nil
}
