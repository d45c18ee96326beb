package renderer

import (
	"github.com/fintra/fintra"
)

// Funds is the view model of the income funds report.
type Funds struct {
	Ledger string
	Rows   []FundRow
	Total  string
}

// FundRow is one income fund, pre-formatted.
type FundRow struct {
	ID        string
	Title     string
	Original  string
	Remaining string
	Drained   bool
}

// NewFunds projects the ledger funds into a view, in creation order.
func NewFunds(l *fintra.Ledger) *Funds {
	v := &Funds{Ledger: l.Name()}
	total := l.Amount(0)
	for f := range l.Funds() {
		v.Rows = append(v.Rows, FundRow{
			ID:        f.ID,
			Title:     f.Title,
			Original:  f.Original.String(),
			Remaining: f.Remaining.String(),
			Drained:   f.Remaining.IsZero(),
		})
		total = total.Add(f.Remaining)
	}
	v.Total = total.String()
	return v
}

// FundsMarkdown renders the income funds report to a markdown string.
func FundsMarkdown(f *Funds) string {
	return renderTemplate("funds", "funds.md", nil, f)
}
