package fintra

import (
	"sort"
	"strings"
	"time"
)

// This file holds the read-side projections. They are pure functions over
// the ledger state, recomputed on demand; nothing here mutates the store.

// TotalBalance returns the sum of all incomes minus the sum of all expenses.
func (l *Ledger) TotalBalance() Money {
	total := M(0, l.currency)
	for _, m := range l.movements {
		switch m.Type {
		case Income:
			total = total.Add(m.Amount)
		case Expense:
			total = total.Sub(m.Amount)
		}
	}
	return total
}

// DebtTotals sums the remaining balances of active debts by direction.
type DebtTotals struct {
	OwedToMe Money // receivables
	OwedByMe Money // payables
}

// DebtTotals returns the remaining receivable and payable totals.
func (l *Ledger) DebtTotals() DebtTotals {
	t := DebtTotals{OwedToMe: M(0, l.currency), OwedByMe: M(0, l.currency)}
	for _, d := range l.debts {
		switch d.Direction {
		case OwedToMe:
			t.OwedToMe = t.OwedToMe.Add(d.Remaining)
		case OwedByMe:
			t.OwedByMe = t.OwedByMe.Add(d.Remaining)
		}
	}
	return t
}

// CategoryTotal is the aggregated expense amount of one title.
type CategoryTotal struct {
	Title string
	Total Money
}

// CategoryTotals aggregates expense amounts by title, for charting. A
// non-zero year restricts the aggregate to that year-month. Totals are
// returned largest first; equal totals sort by title.
func (l *Ledger) CategoryTotals(year int, month time.Month) []CategoryTotal {
	byTitle := make(map[string]Money)
	for _, m := range l.movements {
		if m.Type != Expense {
			continue
		}
		if year != 0 && !(m.Date.Year() == year && m.Date.Month() == month) {
			continue
		}
		byTitle[m.Title] = byTitle[m.Title].Add(m.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byTitle))
	for title, total := range byTitle {
		totals = append(totals, CategoryTotal{Title: title, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[j].Total.LessThan(totals[i].Total)
		}
		return totals[i].Title < totals[j].Title
	})
	return totals
}

// Search returns the movements whose title contains the given text
// (case-insensitive) and whose amount is at least min, sorted by date
// descending. An empty text or zero min matches everything.
func (l *Ledger) Search(text string, min Money) []Movement {
	needle := strings.ToLower(text)
	var out []Movement
	for _, m := range l.movements {
		if !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		if m.Amount.LessThan(min) {
			continue
		}
		out = append(out, m)
	}
	// The ledger is chronological; reverse for date descending. Stable for
	// same-day movements.
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out
}

// CalendarDay is one day of the calendar projection.
type CalendarDay struct {
	Day          int
	HasMovements bool
	Income       Money
	Expense      Money
}

// CalendarMonth is the calendar projection of one month: a marker and the
// day's totals for each day of the month.
type CalendarMonth struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// CalendarMonth projects the movements of a calendar month onto its days.
func (l *Ledger) CalendarMonth(year int, month time.Month) CalendarMonth {
	cm := CalendarMonth{Year: year, Month: month}
	cm.Days = make([]CalendarDay, DaysInMonth(year, month))
	for i := range cm.Days {
		cm.Days[i] = CalendarDay{Day: i + 1, Income: M(0, l.currency), Expense: M(0, l.currency)}
	}
	for _, m := range l.movements {
		if m.Date.Year() != year || m.Date.Month() != month {
			continue
		}
		day := &cm.Days[m.Date.Day()-1]
		day.HasMovements = true
		switch m.Type {
		case Income:
			day.Income = day.Income.Add(m.Amount)
		case Expense:
			day.Expense = day.Expense.Add(m.Amount)
		}
	}
	return cm
}
