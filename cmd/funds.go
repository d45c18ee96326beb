package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type fundsCmd struct {
	reconcile bool
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "show the income funds and their remaining balances" }
func (*fundsCmd) Usage() string {
	return `ftr funds [-reconcile]

  Shows every income fund with its original and remaining amount. With
  -reconcile, funds no movement references anymore are removed first.

`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reconcile, "reconcile", false, "Drop funds referenced by no movement.")
}

func (c *fundsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	if c.reconcile {
		if removed := ledger.Reconcile(); removed > 0 {
			if err := SaveLedger(ledger); err != nil {
				return fail(err)
			}
			fmt.Printf("Removed %d orphan fund(s)\n", removed)
		}
	}

	printMarkdown(renderer.FundsMarkdown(renderer.NewFunds(ledger)))
	return subcommands.ExitSuccess
}
