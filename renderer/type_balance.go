package renderer

import (
	"github.com/fintra/fintra"
)

// Balance is the view model of the balance report: everything is
// pre-formatted so the templates only lay it out.
type Balance struct {
	Ledger   string
	Currency string
	Total    string

	Incomes  string
	Expenses string

	OwedToMe string
	OwedByMe string
	HasDebts bool
}

// NewBalance projects the ledger into a balance view.
func NewBalance(l *fintra.Ledger) *Balance {
	incomes := l.Amount(0)
	expenses := l.Amount(0)
	for m := range l.Movements() {
		switch m.Type {
		case fintra.Income:
			incomes = incomes.Add(m.Amount)
		case fintra.Expense:
			expenses = expenses.Add(m.Amount)
		}
	}
	debts := l.DebtTotals()

	return &Balance{
		Ledger:   l.Name(),
		Currency: l.Currency(),
		Total:    l.TotalBalance().String(),
		Incomes:  incomes.String(),
		Expenses: expenses.String(),
		OwedToMe: debts.OwedToMe.String(),
		OwedByMe: debts.OwedByMe.String(),
		HasDebts: !debts.OwedToMe.IsZero() || !debts.OwedByMe.IsZero(),
	}
}

// BalanceMarkdown renders the balance report to a markdown string.
func BalanceMarkdown(b *Balance) string {
	partials := map[string]string{
		"balance_title": "balance_title.md",
		"balance_debts": "balance_debts.md",
	}
	return renderTemplate("balance", "balance.md", partials, b)
}
