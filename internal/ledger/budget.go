package ledger

import (
	"time"

	"github.com/pukassein/pukatracker/internal/models"
)

// BudgetGroup is a named bundle of categories with a fixed share of
// monthly income.
type BudgetGroup struct {
	Name       string
	Share      float64
	Categories []models.Category
}

// budgetGroups is the static allocation table. The remaining 20% of income
// is the savings target, not a spending group.
var budgetGroups = []BudgetGroup{
	{Name: "Housing & Bills", Share: 0.36, Categories: []models.Category{models.CategoryBills, models.CategoryCreditCardPayment}},
	{Name: "Food", Share: 0.15, Categories: []models.Category{models.CategoryFood}},
	{Name: "Social Life", Share: 0.12, Categories: []models.Category{models.CategoryEntertainment}},
	{Name: "Flexible Spending", Share: 0.10, Categories: []models.Category{models.CategoryShopping, models.CategoryTravel, models.CategoryOther}},
	{Name: "Transport", Share: 0.04, Categories: []models.Category{models.CategoryTransport}},
	{Name: "Health & Sports", Share: 0.03, Categories: []models.Category{models.CategoryHealth}},
}

// SavingsTarget is the share of monthly income set aside as the savings goal.
const SavingsTarget = 0.20

// GroupProgress is the computed budget state of one group for the month.
type GroupProgress struct {
	Name         string  `json:"name"`
	Share        float64 `json:"share"`
	Allocated    float64 `json:"allocated"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	SpentPercent float64 `json:"spent_percent"`
}

// Savings is the computed savings state for the month.
type Savings struct {
	Current     float64 `json:"current"`
	Goal        float64 `json:"goal"`
	MeetingGoal bool    `json:"meeting_goal"`
}

// BudgetReport is the full budget breakdown for the current month.
type BudgetReport struct {
	MonthlyIncome float64         `json:"monthly_income"`
	Groups        []GroupProgress `json:"groups"`
	Savings       Savings         `json:"savings"`
}

// ComputeBudget allocates the month's income across the budget groups and
// measures spending against each. With zero income there is nothing to
// allocate, so the report carries no groups rather than dividing by zero.
func ComputeBudget(transactions []models.Transaction, now time.Time) BudgetReport {
	income := MonthlyIncome(transactions, now)
	if income == 0 {
		return BudgetReport{}
	}

	month := MonthlyTransactions(transactions, now)
	groups := make([]GroupProgress, 0, len(budgetGroups))
	for _, g := range budgetGroups {
		allocated := income * g.Share
		spent := groupSpend(month, g.Categories)

		var spentPercent float64
		if allocated > 0 {
			spentPercent = spent / allocated
			if spentPercent > 1 {
				spentPercent = 1
			}
		}

		groups = append(groups, GroupProgress{
			Name:         g.Name,
			Share:        g.Share,
			Allocated:    allocated,
			Spent:        spent,
			Remaining:    allocated - spent,
			SpentPercent: spentPercent,
		})
	}

	current := income - MonthlyExpenses(transactions, now)
	goal := income * SavingsTarget

	return BudgetReport{
		MonthlyIncome: income,
		Groups:        groups,
		Savings: Savings{
			Current:     current,
			Goal:        goal,
			MeetingGoal: current >= goal,
		},
	}
}

func groupSpend(month []models.Transaction, categories []models.Category) float64 {
	var spent float64
	for _, t := range month {
		if t.Type != models.TransactionTypeExpense || t.Category == nil {
			continue
		}
		for _, c := range categories {
			if *t.Category == c {
				spent += t.AmountValue()
				break
			}
		}
	}
	return spent
}
