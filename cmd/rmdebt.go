package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmdebtCmd struct {
	writeOff bool
}

func (*rmdebtCmd) Name() string     { return "rmdebt" }
func (*rmdebtCmd) Synopsis() string { return "delete a debt, optionally writing off the remainder" }
func (*rmdebtCmd) Usage() string {
	return `ftr rmdebt [-write-off] <debt-id>

  Deletes a debt in any state. With -write-off, a settlement movement
  for the forgone remainder is recorded so the ledger still balances.

`
}

func (c *rmdebtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.writeOff, "write-off", false, "Record a settlement movement for the remainder.")
}

func (c *rmdebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("rmdebt expects exactly one debt id")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteDebt(f.Arg(0), c.writeOff); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted debt %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
