package cmd

import (
	"context"
	"flag"

	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the ledger balance and debt totals" }
func (*balanceCmd) Usage() string {
	return `ftr balance

  Shows the total balance (all incomes minus all expenses) and the
  outstanding debt totals.

`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BalanceMarkdown(renderer.NewBalance(ledger)))
	return subcommands.ExitSuccess
}
