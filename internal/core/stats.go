package core

import (
	"sort"
	"time"
)

// Stats is the set of derived figures shown on the home screen. All of them
// are pure folds over whichever transaction list is currently loaded.
type Stats struct {
	Balance        Amount
	Income         Amount
	Expenses       Amount
	DailySpent     Amount
	MonthlySavings Amount
}

// ComputeStats folds the list once. Malformed amounts have already been
// coerced to zero at decode time, so the fold cannot fail.
func ComputeStats(txns []Transaction, now time.Time) Stats {
	var s Stats
	for _, t := range txns {
		switch t.Type {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(t.Amount)
			if t.Date.SameLocalDay(now) {
				s.DailySpent = s.DailySpent.Add(t.Amount)
			}
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	// The savings figure is labelled monthly but deliberately spans the whole
	// loaded set, matching the figure users have always seen.
	s.MonthlySavings = s.Balance
	return s
}

// Balance is Σ(income) − Σ(expense) over the list.
func Balance(txns []Transaction) Amount {
	return ComputeStats(txns, time.Time{}).Balance
}

// DailySpent sums expenses dated on the same local calendar day as now.
func DailySpent(txns []Transaction, now time.Time) Amount {
	return ComputeStats(txns, now).DailySpent
}

// SortByDateDesc returns a copy sorted newest first. The sort is stable so
// same-timestamp entries keep their cached order.
func SortByDateDesc(txns []Transaction) []Transaction {
	out := append([]Transaction(nil), txns...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Recent returns the n newest transactions for the home screen preview.
func Recent(txns []Transaction, n int) []Transaction {
	sorted := SortByDateDesc(txns)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
