package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type debtCmd struct {
	dtype       string
	person      string
	on          string
	description string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record a debt someone owes you, or you owe them" }
func (*debtCmd) Usage() string {
	return `ftr debt -type <owedToMe|owedByMe> -person <name> [-on <date>] [-m <description>] <title> <amount>

  Records a debt and the matching loan movement: lending money out is
  an expense, borrowing is an income.

Usage Examples:
$ ftr debt -type owedToMe -person Ana "Lunch" 200

`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dtype, "type", "", "Debt direction: owedToMe or owedByMe.")
	f.StringVar(&c.person, "person", "", "The other party of the debt.")
	f.StringVar(&c.on, "on", "", "The debt date. Defaults to today.")
	f.StringVar(&c.description, "m", "", "A free-form description.")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError("debt expects exactly a title and an amount")
	}

	direction, err := fintra.ParseDebtDirection(c.dtype)
	if err != nil {
		return fail(err)
	}
	var date fintra.Date
	if c.on != "" {
		if date, err = fintra.ParseDate(c.on); err != nil {
			return fail(err)
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	amount, err := fintra.ParseAmount(f.Arg(1), ledger.Currency())
	if err != nil {
		return fail(err)
	}

	id, err := ledger.AddDebt(fintra.Debt{
		Direction:   direction,
		Person:      c.person,
		Title:       f.Arg(0),
		Description: c.description,
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	d, _ := ledger.Debt(id)
	fmt.Printf("Recorded debt %q: %s %s %s (id %s)\n", d.Title, d.Person, describeDirection(d.Direction), d.Amount, id)
	return subcommands.ExitSuccess
}

func describeDirection(d fintra.DebtDirection) string {
	if d == fintra.OwedToMe {
		return "owes me"
	}
	return "is owed"
}
