package cmd

import (
	"context"
	"flag"

	"github.com/fintra/fintra"
	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	start string
	end   string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the movements in the ledger" }
func (*txCmd) Usage() string {
	return `ftr tx [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists movements from the ledger in chronological order, with options
  for filtering and limiting the output.

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Only movements on or after this date.")
	f.StringVar(&c.end, "d", "", "Only movements on or before this date.")
	f.IntVar(&c.head, "head", 0, "Show only the first N movements.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N movements.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		return usageError("-head and -tail flags cannot be used together")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	var start, end fintra.Date
	if c.start != "" {
		if start, err = fintra.ParseDate(c.start); err != nil {
			return fail(err)
		}
	}
	if c.end != "" {
		if end, err = fintra.ParseDate(c.end); err != nil {
			return fail(err)
		}
	}

	var movements []fintra.Movement
	for m := range ledger.Movements() {
		if c.start != "" && m.Date.Before(start) {
			continue
		}
		if c.end != "" && m.Date.After(end) {
			continue
		}
		movements = append(movements, m)
	}

	if c.head > 0 && len(movements) > c.head {
		movements = movements[:c.head]
	}
	if c.tail > 0 && len(movements) > c.tail {
		movements = movements[len(movements)-c.tail:]
	}

	printMarkdown(renderer.StatementMarkdown(ledger, movements))
	return subcommands.ExitSuccess
}
