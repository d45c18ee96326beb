package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	month string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "chart expense totals by category" }
func (*chartCmd) Usage() string {
	return `ftr chart [-month <YYYY-MM>]

  Aggregates expenses by title and draws a bar chart, largest first.
  Without -month, all expenses ever recorded are charted.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Restrict the chart to one month, as YYYY-MM.")
}

func (c *chartCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	title := "Expenses by category"
	var totals []fintra.CategoryTotal
	if c.month == "" {
		totals = ledger.CategoryTotals(0, 0)
	} else {
		day, err := fintra.ParseDate(c.month + "-01")
		if err != nil {
			return fail(fmt.Errorf("invalid month %q, want YYYY-MM", c.month))
		}
		title = fmt.Sprintf("Expenses of %s %d", day.Month(), day.Year())
		totals = ledger.CategoryTotals(day.Year(), day.Month())
	}

	printMarkdown(renderer.ChartMarkdown(ledger, title, totals))
	return subcommands.ExitSuccess
}
