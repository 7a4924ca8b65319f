// Package ledger provides pure aggregation over the transaction list:
// monthly rollups, running balances, debt totals, budget allocation, and
// recurring-payment month bookkeeping. Nothing in this package touches the
// database; everything is a function of the slices passed in.
package ledger

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey identifies a calendar month as "YYYY-MM". It is the unit of
// recurring-payment paid tracking.
type MonthKey string

// NewMonthKey builds the month key for the month containing t.
func NewMonthKey(t time.Time) MonthKey {
	return MonthKey(t.Format(monthKeyLayout))
}

// ParseMonthKey validates a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid month key %q: want YYYY-MM", s)
	}
	return MonthKey(s), nil
}

// String returns the "YYYY-MM" form.
func (k MonthKey) String() string { return string(k) }

// Start returns the first instant of the month in UTC.
func (k MonthKey) Start() time.Time {
	t, err := time.Parse(monthKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// End returns the first instant of the following month in UTC.
func (k MonthKey) End() time.Time {
	return k.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls within the month.
func (k MonthKey) Contains(t time.Time) bool {
	start := k.Start()
	return !t.Before(start) && t.Before(k.End())
}

// Before reports whether the month precedes other.
func (k MonthKey) Before(other MonthKey) bool {
	return k.Start().Before(other.Start())
}

// Label renders the month for humans, e.g. "January 2025". Used in the
// descriptions of transactions created when a recurring payment is marked paid.
func (k MonthKey) Label() string {
	return k.Start().Format("January 2006")
}

// MonthStart returns the first instant of the month containing now, in
// now's location. Monthly rollups include every transaction dated at or
// after this instant.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
