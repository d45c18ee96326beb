package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

// useTempLedger points the global flags at a temp directory for the test.
func useTempLedger(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	for flagName, value := range map[string]string{
		"ledger-dir": dir,
		"ledger":     "test",
		"currency":   "EUR",
		"config":     dir + "/no-config.toml",
	} {
		old := flag.Lookup(flagName).Value.String()
		if err := flag.Set(flagName, value); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { flag.Set(flagName, old) })
	}
}

// run executes a subcommand with the given command line.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing %s flags: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), fs)
}

func TestSettingsPrecedence(t *testing.T) {
	useTempLedger(t)
	dir, name, cur, err := settings()
	if err != nil {
		t.Fatal(err)
	}
	if name != "test" || cur != "EUR" || dir == "" {
		t.Errorf("settings() = %q %q %q", dir, name, cur)
	}
}

func TestAddPersistsAcrossLoads(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &addCmd{}, "-type", "income", "-on", "2024-01-05", "Salary", "2.500,00"); got != subcommands.ExitSuccess {
		t.Fatalf("add income exited %v", got)
	}
	if got := run(t, &addCmd{}, "-type", "expense", "-on", "2024-01-10", "Groceries", "89,90"); got != subcommands.ExitSuccess {
		t.Fatalf("add expense exited %v", got)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	if !ledger.TotalBalance().Equal(ledger.Amount(2410.10)) {
		t.Errorf("balance = %s", ledger.TotalBalance())
	}
	funds := 0
	for f := range ledger.Funds() {
		if !f.Remaining.Equal(ledger.Amount(2410.10)) {
			t.Errorf("fund remaining = %s", f.Remaining)
		}
		funds++
	}
	if funds != 1 {
		t.Errorf("funds = %d, want 1", funds)
	}
}

func TestAddRefusesOverspending(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &addCmd{}, "-type", "expense", "Rent", "800"); got != subcommands.ExitFailure {
		t.Fatalf("uncovered expense exited %v, want failure", got)
	}
	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	if !ledger.IsEmpty() {
		t.Error("refused expense was persisted")
	}

	if got := run(t, &addCmd{}, "-type", "expense", "-overspend", "Rent", "800"); got != subcommands.ExitSuccess {
		t.Fatalf("overspend-approved expense exited %v", got)
	}
}

func TestAddUsage(t *testing.T) {
	useTempLedger(t)
	if got := run(t, &addCmd{}, "OnlyATitle"); got != subcommands.ExitUsageError {
		t.Errorf("add with one arg exited %v, want usage error", got)
	}
}

func TestDebtAndPayCommands(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &debtCmd{}, "-type", "owedToMe", "-person", "Ana", "Lunch", "200"); got != subcommands.ExitSuccess {
		t.Fatalf("debt exited %v", got)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	var debtID string
	for d := range ledger.Debts() {
		debtID = d.ID
	}
	if debtID == "" {
		t.Fatal("debt was not persisted")
	}

	if got := run(t, &payCmd{}, debtID, "120"); got != subcommands.ExitSuccess {
		t.Fatalf("pay exited %v", got)
	}
	ledger, err = DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	d, ok := ledger.Debt(debtID)
	if !ok || !d.Remaining.Equal(ledger.Amount(80)) {
		t.Fatalf("after paying 120, debt = %+v", d)
	}

	if got := run(t, &payCmd{}, debtID); got != subcommands.ExitSuccess {
		t.Fatalf("final pay exited %v", got)
	}
	ledger, err = DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ledger.Debt(debtID); ok {
		t.Error("debt still active after full payment")
	}
}

func TestEditOverspentExpenseIntoIncome(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &addCmd{}, "-type", "expense", "-overspend", "Refund", "150"); got != subcommands.ExitSuccess {
		t.Fatal("add overspent expense failed")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	var id string
	for m := range ledger.Movements() {
		id = m.ID
	}

	// A movement booked on the wrong side keeps its overspend and fund
	// fields only as long as it stays an expense.
	if got := run(t, &editCmd{}, "-type", "income", id); got != subcommands.ExitSuccess {
		t.Fatalf("edit -type income exited %v", got)
	}

	ledger, err = DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	for m := range ledger.Movements() {
		if m.Type != fintra.Income {
			t.Errorf("movement type = %s, want income", m.Type)
		}
		if !m.Overspend.IsZero() || m.IncomeSourceID != "" || len(m.FundsUsed) > 0 {
			t.Errorf("allocation fields survived the edit: %+v", m)
		}
	}
	if !ledger.TotalBalance().Equal(ledger.Amount(150)) {
		t.Errorf("balance = %s, want 150", ledger.TotalBalance())
	}
}

func TestRmCascade(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &addCmd{}, "-type", "income", "Salary", "1000"); got != subcommands.ExitSuccess {
		t.Fatal("add income failed")
	}
	if got := run(t, &addCmd{}, "-type", "expense", "Rent", "700"); got != subcommands.ExitSuccess {
		t.Fatal("add expense failed")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	var incomeID string
	for m := range ledger.Movements() {
		if m.Title == "Salary" {
			incomeID = m.ID
		}
	}

	if got := run(t, &rmCmd{}, incomeID); got != subcommands.ExitFailure {
		t.Fatalf("rm of a drawn-from income exited %v, want failure", got)
	}
	if got := run(t, &rmCmd{}, "-cascade", incomeID); got != subcommands.ExitSuccess {
		t.Fatalf("rm -cascade exited %v", got)
	}

	ledger, err = DecodeLedger()
	if err != nil {
		t.Fatal(err)
	}
	for m := range ledger.Movements() {
		if m.Title == "Rent" && !m.Overspend.Equal(ledger.Amount(700)) {
			t.Errorf("cascade did not convert the draw to overspend: %+v", m)
		}
	}
}
