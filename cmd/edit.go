package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type editCmd struct {
	mtype       string
	on          string
	description string
	from        string
	overspend   bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a movement with a corrected one" }
func (*editCmd) Usage() string {
	return `ftr edit [-type <income|expense>] [-on <date>] [-m <description>] [-from <fund-id>] [-overspend] <movement-id> <title> <amount>

  Replaces a movement: the original is removed (funds restored) and the
  corrected movement is recorded under a fresh id. Fields not given keep
  the original's values.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mtype, "type", "", "Movement type: income or expense.")
	f.StringVar(&c.on, "on", "", "The movement date.")
	f.StringVar(&c.description, "m", "", "A free-form description.")
	f.StringVar(&c.from, "from", "", "Preferred fund to draw from (expenses only).")
	f.BoolVar(&c.overspend, "overspend", false, "Record the expense even if no funds cover it.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 3 {
		return usageError("edit expects a movement id, optionally followed by a new title and amount")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	original, ok := ledger.Movement(f.Arg(0))
	if !ok {
		return fail(fmt.Errorf("no movement with id %q", f.Arg(0)))
	}

	// Start from the original, override what was given. The allocation
	// fields are recomputed on re-add, so the original's are dropped.
	replacement := original
	replacement.FundsUsed = nil
	replacement.Overspend = fintra.Money{}
	if c.mtype != "" {
		if replacement.Type, err = fintra.ParseMovementType(c.mtype); err != nil {
			return fail(err)
		}
		if replacement.Type != original.Type {
			replacement.IncomeSourceID = ""
		}
	}
	if c.on != "" {
		if replacement.Date, err = fintra.ParseDate(c.on); err != nil {
			return fail(err)
		}
	}
	if c.description != "" {
		replacement.Description = c.description
	}
	if c.from != "" {
		replacement.IncomeSourceID = c.from
	}
	if f.NArg() > 1 {
		replacement.Title = f.Arg(1)
	}
	if f.NArg() > 2 {
		if replacement.Amount, err = fintra.ParseAmount(f.Arg(2), ledger.Currency()); err != nil {
			return fail(err)
		}
	}

	id, err := ledger.UpdateMovement(original.ID, replacement, c.overspend)
	if err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Replaced movement %s with %s\n", original.ID, id)
	return subcommands.ExitSuccess
}
