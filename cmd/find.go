package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/fintra/fintra"
	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type findCmd struct {
	min string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "find movements by title and minimum amount" }
func (*findCmd) Usage() string {
	return `ftr find [-min <amount>] [<text>...]

  Lists the movements whose title contains the given text, most recent
  first. With -min, only movements of at least that amount match.

`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.min, "min", "", "Only movements of at least this amount.")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	min := ledger.Amount(0)
	if c.min != "" {
		if min, err = fintra.ParseAmount(c.min, ledger.Currency()); err != nil {
			return fail(err)
		}
	}

	found := ledger.Search(strings.Join(f.Args(), " "), min)
	printMarkdown(renderer.StatementMarkdown(ledger, found))
	return subcommands.ExitSuccess
}
