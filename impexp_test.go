package fintra

import (
	"strings"
	"testing"
)

func TestExportRoundTrip(t *testing.T) {
	l := newTestLedger()
	addIncome(t, l, "2024-01-05", 2500, "Salary")
	addExpense(t, l, "2024-01-10", 89.9, "Groceries")
	addExpense(t, l, "2024-01-20", 1400, "Rent")

	var buf strings.Builder
	if err := ExportMovements(&buf, l); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	movements, err := ParseMovements(strings.NewReader(buf.String()), l.Currency())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("round trip produced %d movements, want 3", len(movements))
	}

	other := newTestLedger()
	if err := other.ImportMovements(movements, false); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	want := map[string]struct {
		date  string
		mtype MovementType
		amt   Money
	}{
		"Salary":    {"2024-01-05", Income, EUR(2500)},
		"Groceries": {"2024-01-10", Expense, EUR(89.9)},
		"Rent":      {"2024-01-20", Expense, EUR(1400)},
	}
	for m := range other.Movements() {
		w, ok := want[m.Title]
		if !ok {
			t.Errorf("unexpected movement %q", m.Title)
			continue
		}
		if m.Date != MustParseDate(w.date) || m.Type != w.mtype || !m.Amount.Equal(w.amt) {
			t.Errorf("movement %q = %s %s %s, want %s %s %s",
				m.Title, m.Date, m.Type, m.Amount.Decimal(), w.date, w.mtype, w.amt.Decimal())
		}
		delete(want, m.Title)
	}
	if len(want) != 0 {
		t.Errorf("missing movements after import: %v", want)
	}
}

func TestExportFormat(t *testing.T) {
	l := newTestLedger()
	addIncome(t, l, "2024-01-05", 2500, "Salary")

	var buf strings.Builder
	if err := ExportMovements(&buf, l); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "day;title;description;amount;type" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "05/01/2024;Salary;;2.500,00;income" {
		t.Errorf("line = %q", lines[1])
	}
}

func TestParseMovementsTolerance(t *testing.T) {
	in := strings.Join([]string{
		"day;title;description;amount;type",
		"",
		"10/01/2024;Groceries;weekly run;89,90;expense",
		"not a line at all",
		"10/01/2024;;missing title;10,00;expense",
		"10/01/2024;No amount;;;expense",
		"99/99/2024;Bad date;;10,00;expense",
		"10/01/2024;Bad type;;10,00;transfer",
		"10/01/2024;Negative;;-5,00;expense",
		"15/01/2024;Nomina;;1.250,50;ingreso",
		"16/01/2024;Compra;;30,25;egreso",
	}, "\n")

	movements, err := ParseMovements(strings.NewReader(in), "EUR")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("parsed %d movements, want 3: %+v", len(movements), movements)
	}
	if movements[0].Title != "Groceries" || !movements[0].Amount.Equal(EUR(89.9)) {
		t.Errorf("first = %+v", movements[0])
	}
	if movements[1].Type != Income || !movements[1].Amount.Equal(EUR(1250.50)) {
		t.Errorf("legacy income line = %+v", movements[1])
	}
	if movements[2].Type != Expense || !movements[2].Amount.Equal(EUR(30.25)) {
		t.Errorf("legacy expense line = %+v", movements[2])
	}
}

func TestImportReplaceKeepsDebts(t *testing.T) {
	l := newTestLedger()
	addIncome(t, l, "2024-01-01", 100, "Old income")
	if _, err := l.AddDebt(Debt{Direction: OwedToMe, Person: "Ana", Title: "Lunch", Amount: EUR(20)}); err != nil {
		t.Fatal(err)
	}

	incoming := []Movement{
		{Date: MustParseDate("2024-02-01"), Type: Income, Title: "New income", Amount: EUR(300)},
	}
	if err := l.ImportMovements(incoming, true); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	for m := range l.Movements() {
		if m.Title == "Old income" {
			t.Error("replace kept a pre-import movement")
		}
	}
	funds := 0
	for f := range l.Funds() {
		if f.Title != "New income" {
			t.Errorf("replace kept fund %q", f.Title)
		}
		funds++
	}
	if funds != 1 {
		t.Errorf("funds after replace = %d, want 1", funds)
	}
	n := 0
	for range l.Debts() {
		n++
	}
	if n != 1 {
		t.Errorf("debts after replace = %d, want 1", n)
	}
}

func TestImportRollsBackOnFailure(t *testing.T) {
	l := newTestLedger()
	addIncome(t, l, "2024-01-01", 100, "Salary")

	incoming := []Movement{
		{Date: MustParseDate("2024-02-01"), Type: Income, Title: "Fine", Amount: EUR(10)},
		{Date: MustParseDate("2024-02-02"), Type: Expense, Title: "Broken", Amount: EUR(10), IncomeSourceID: "no-such-fund"},
	}
	if err := l.ImportMovements(incoming, true); err == nil {
		t.Fatal("import of a broken batch succeeded")
	}

	found := false
	for m := range l.Movements() {
		if m.Title == "Salary" {
			found = true
		}
		if m.Title == "Fine" {
			t.Error("partial import left a movement behind")
		}
	}
	if !found {
		t.Error("failed import did not restore the prior movements")
	}
}
