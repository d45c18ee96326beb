package cmd

import (
	"context"
	"flag"

	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list the active debts" }
func (*debtsCmd) Usage() string {
	return `ftr debts

  Lists the active debts, split between money owed to you and money you
  owe, with the remaining balance of each.

`
}

func (*debtsCmd) SetFlags(*flag.FlagSet) {}

func (*debtsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DebtsMarkdown(renderer.NewDebts(ledger)))
	return subcommands.ExitSuccess
}
