package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeExchange TransactionType = "exchange"
)

// Category is the closed set of transaction categories.
type Category string

const (
	CategoryFood              Category = "Food"
	CategoryTransport         Category = "Transport"
	CategoryShopping          Category = "Shopping"
	CategoryTravel            Category = "Travel"
	CategoryBills             Category = "Bills"
	CategoryEntertainment     Category = "Entertainment"
	CategoryHealth            Category = "Health"
	CategoryIncome            Category = "Income"
	CategoryCreditCardPayment Category = "Credit Card Payment"
	CategoryOther             Category = "Other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryTravel,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryIncome,
	CategoryCreditCardPayment,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentMethod represents how an expense was paid. It determines the
// currency and whether the expense reduces the cash balance or adds to
// the running credit card debt.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCredit     PaymentMethod = "credit"
	PaymentMethodBRLAccount PaymentMethod = "brl_account"
)

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCredit, PaymentMethodBRLAccount:
		return true
	}
	return false
}

// Transaction represents a single ledger entry. Income and expense entries
// carry an amount and a category; exchange entries carry only the sold and
// received amounts. Transactions are immutable after creation and can only
// be deleted (individually, or in bulk by owed-by tag).
type Transaction struct {
	Base
	Type TransactionType `gorm:"not null;index" json:"type"`
	Date time.Time       `gorm:"not null;index" json:"date"`

	// For income/expense
	Amount        *float64       `json:"amount,omitempty"`
	Description   string         `json:"description,omitempty"`
	Category      *Category      `json:"category,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`

	// OwedBy tags an expense paid on behalf of a third party (a receivable).
	OwedBy string `gorm:"index" json:"owed_by,omitempty"`

	// For exchange
	PygSold     *float64 `json:"pyg_sold,omitempty"`
	BrlReceived *float64 `json:"brl_received,omitempty"`
}

// AmountValue returns the transaction amount, treating a missing amount as zero.
func (t *Transaction) AmountValue() float64 {
	if t.Amount == nil {
		return 0
	}
	return *t.Amount
}

// PaidBy reports whether the transaction is an expense paid with the given method.
func (t *Transaction) PaidBy(method PaymentMethod) bool {
	return t.Type == TransactionTypeExpense && t.PaymentMethod != nil && *t.PaymentMethod == method
}

// HasCategory reports whether the transaction carries the given category.
func (t *Transaction) HasCategory(category Category) bool {
	return t.Category != nil && *t.Category == category
}
