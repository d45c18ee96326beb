package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fintra/fintra"
)

func demoLedger(t *testing.T) *fintra.Ledger {
	t.Helper()
	l := fintra.NewLedger("EUR")
	if _, err := l.AddMovement(fintra.Movement{
		Date: fintra.MustParseDate("2024-01-05"), Type: fintra.Income,
		Title: "Salary", Amount: l.Amount(2500),
	}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddMovement(fintra.Movement{
		Date: fintra.MustParseDate("2024-01-10"), Type: fintra.Expense,
		Title: "Groceries", Description: "weekly run", Amount: l.Amount(89.9),
	}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddDebt(fintra.Debt{
		Direction: fintra.OwedToMe, Person: "Ana", Title: "Lunch",
		Amount: l.Amount(20), Date: fintra.MustParseDate("2024-01-15"),
	}); err != nil {
		t.Fatal(err)
	}
	return l
}

func contains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBalanceMarkdown(t *testing.T) {
	got := BalanceMarkdown(NewBalance(demoLedger(t)))
	contains(t, got,
		"# Balance of",
		"| Incomes | 2.500,00 €",
		"## Outstanding Debts",
		"| Owed to me | 20,00 €",
	)
}

func TestBalanceMarkdownWithoutDebts(t *testing.T) {
	l := fintra.NewLedger("EUR")
	got := BalanceMarkdown(NewBalance(l))
	if strings.Contains(got, "Outstanding Debts") {
		t.Errorf("debt section rendered for a debt-free ledger:\n%s", got)
	}
}

func TestFundsMarkdown(t *testing.T) {
	got := FundsMarkdown(NewFunds(demoLedger(t)))
	contains(t, got,
		"# Income Funds",
		"| Salary |",
		"Total available:",
	)

	empty := FundsMarkdown(NewFunds(fintra.NewLedger("EUR")))
	contains(t, empty, "No income funds yet.")
}

func TestDebtsMarkdown(t *testing.T) {
	got := DebtsMarkdown(NewDebts(demoLedger(t)))
	contains(t, got,
		"## Owed to me (20,00 €)",
		"| Ana | Lunch |",
	)
	if strings.Contains(got, "## Owed by me") {
		t.Errorf("payables section rendered without payables:\n%s", got)
	}

	empty := DebtsMarkdown(NewDebts(fintra.NewLedger("EUR")))
	contains(t, empty, "No active debts.")
}

func TestStatementMarkdown(t *testing.T) {
	l := demoLedger(t)
	var movements []fintra.Movement
	for m := range l.Movements() {
		movements = append(movements, m)
	}
	got := StatementMarkdown(l, movements)
	contains(t, got,
		"| Date | Type | Title | Amount | Backing |",
		"Groceries - weekly run",
		"Salary: 89,90 €",
	)
}

func TestStatementOverspentSection(t *testing.T) {
	l := fintra.NewLedger("EUR")
	if _, err := l.AddMovement(fintra.Movement{
		Date: fintra.MustParseDate("2024-01-10"), Type: fintra.Expense,
		Title: "Rent", Amount: l.Amount(800),
	}, true); err != nil {
		t.Fatal(err)
	}
	var movements []fintra.Movement
	for m := range l.Movements() {
		movements = append(movements, m)
	}
	got := StatementMarkdown(l, movements)
	contains(t, got, "## Overspent", "800,00 € not covered by any fund")

	covered := StatementMarkdown(demoLedger(t), movements[:0])
	if strings.Contains(covered, "## Overspent") {
		t.Errorf("overspent section rendered without overspending:\n%s", covered)
	}
}

func TestCalendarMarkdown(t *testing.T) {
	l := demoLedger(t)
	got := CalendarMarkdown(l, l.CalendarMonth(2024, time.January))
	contains(t, got,
		"# January 2024",
		"| Mon | Tue | Wed | Thu | Fri | Sat | Sun |",
		"**5**",
		"## Daily totals",
		"| Fri 5 | 2.500,00 € |",
	)
}

func TestCalendarMarkdownQuietMonth(t *testing.T) {
	l := fintra.NewLedger("EUR")
	got := CalendarMarkdown(l, l.CalendarMonth(2024, time.June))
	if strings.Contains(got, "## Daily totals") {
		t.Errorf("totals section rendered for a quiet month:\n%s", got)
	}
}

func TestChartMarkdown(t *testing.T) {
	l := demoLedger(t)
	got := ChartMarkdown(l, "Expenses by category", l.CategoryTotals(0, 0))
	contains(t, got,
		"# Expenses by category",
		"Groceries",
		"█",
		"Total expenses:",
	)

	empty := ChartMarkdown(l, "Expenses", nil)
	contains(t, empty, "No expenses to chart.")
}
