package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type addCmd struct {
	mtype       string
	on          string
	description string
	from        string
	overspend   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense movement" }
func (*addCmd) Usage() string {
	return `ftr add -type <income|expense> [-on <date>] [-m <description>] [-from <fund-id>] [-overspend] <title> <amount>

  Records a movement in the ledger. An income originates a fund of the
  same amount; an expense draws from the available funds, the named one
  first when -from is given.

Usage Examples:
$ ftr add -type income -on 2024-01-05 "Salary" 2500
$ ftr add -type expense -from <fund-id> "Rent" 700

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mtype, "type", "expense", "Movement type: income or expense.")
	f.StringVar(&c.on, "on", "", "The movement date. Defaults to today.")
	f.StringVar(&c.description, "m", "", "A free-form description.")
	f.StringVar(&c.from, "from", "", "Preferred fund to draw from (expenses only).")
	f.BoolVar(&c.overspend, "overspend", false, "Record the expense even if no funds cover it.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError("add expects exactly a title and an amount")
	}

	mtype, err := fintra.ParseMovementType(c.mtype)
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

	id, err := ledger.AddMovement(fintra.Movement{
		Date:           date,
		Type:           mtype,
		Title:          f.Arg(0),
		Description:    c.description,
		Amount:         amount,
		IncomeSourceID: c.from,
	}, c.overspend)
	if err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	m, _ := ledger.Movement(id)
	fmt.Printf("Recorded %s %q of %s (id %s)\n", m.Type, m.Title, m.Amount, id)
	if !m.Overspend.IsZero() {
		fmt.Printf("Warning: %s not covered by any fund\n", m.Overspend)
	}
	return subcommands.ExitSuccess
}
