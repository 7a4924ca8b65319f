package ledger

import (
	"sort"
	"time"

	"github.com/pukassein/pukatracker/internal/models"
)

// CategoryTotal is one slice of the expense breakdown: a category's spend
// over the range and its share of total expenses.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
	Percent  float64         `json:"percent"`
}

// Statistics is the spending analysis over a date range.
type Statistics struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalIncome   float64         `json:"total_income"`
	TotalExpenses float64         `json:"total_expenses"`
	NetFlow       float64         `json:"net_flow"`
	Categories    []CategoryTotal `json:"categories"`
}

// ComputeStatistics folds transactions dated within [from, to] (both bounds
// inclusive) into income and expense totals and a per-category expense
// breakdown sorted by spend, largest first. Expenses without a category
// count under Other. Exchange transactions carry no amount and never
// contribute.
func ComputeStatistics(transactions []models.Transaction, from, to time.Time) Statistics {
	stats := Statistics{From: from, To: to}
	byCategory := make(map[models.Category]float64)
	for _, t := range transactions {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			stats.TotalIncome += t.AmountValue()
		case models.TransactionTypeExpense:
			stats.TotalExpenses += t.AmountValue()
			category := models.CategoryOther
			if t.Category != nil {
				category = *t.Category
			}
			byCategory[category] += t.AmountValue()
		}
	}
	stats.NetFlow = stats.TotalIncome - stats.TotalExpenses

	for category, total := range byCategory {
		entry := CategoryTotal{Category: category, Total: total}
		if stats.TotalExpenses > 0 {
			entry.Percent = total / stats.TotalExpenses
		}
		stats.Categories = append(stats.Categories, entry)
	}
	sort.Slice(stats.Categories, func(i, j int) bool {
		if stats.Categories[i].Total != stats.Categories[j].Total {
			return stats.Categories[i].Total > stats.Categories[j].Total
		}
		return stats.Categories[i].Category < stats.Categories[j].Category
	})
	return stats
}

// MonthlyCost is the combined monthly price of a set of recurring payments,
// with yearly payments pro-rated across twelve months.
func MonthlyCost(payments []models.RecurringPayment) float64 {
	var total float64
	for _, p := range payments {
		if p.BillingCycle == models.BillingCycleYearly {
			total += p.Amount / 12
		} else {
			total += p.Amount
		}
	}
	return total
}
