package renderer

import (
	"github.com/fintra/fintra"
)

// Debts is the view model of the active debts report.
type Debts struct {
	Ledger      string
	Receivables []DebtRow // owed to me
	Payables    []DebtRow // owed by me
	OwedToMe    string
	OwedByMe    string
}

// DebtRow is one active debt, pre-formatted.
type DebtRow struct {
	ID        string
	Person    string
	Title     string
	Date      string
	Amount    string
	Remaining string
}

// NewDebts projects the active debts into a view, split by direction.
func NewDebts(l *fintra.Ledger) *Debts {
	v := &Debts{Ledger: l.Name()}
	for d := range l.Debts() {
		row := DebtRow{
			ID:        d.ID,
			Person:    d.Person,
			Title:     d.Title,
			Date:      d.Date.String(),
			Amount:    d.Amount.String(),
			Remaining: d.Remaining.String(),
		}
		if d.Direction == fintra.OwedToMe {
			v.Receivables = append(v.Receivables, row)
		} else {
			v.Payables = append(v.Payables, row)
		}
	}
	totals := l.DebtTotals()
	v.OwedToMe = totals.OwedToMe.String()
	v.OwedByMe = totals.OwedByMe.String()
	return v
}

// DebtsMarkdown renders the active debts report to a markdown string.
func DebtsMarkdown(d *Debts) string {
	partials := map[string]string{
		"debts_table": "debts_table.md",
	}
	return renderTemplate("debts", "debts.md", partials, d)
}
