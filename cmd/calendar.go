package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/fintra/fintra/renderer"
	"github.com/google/subcommands"
)

type calendarCmd struct {
	month string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show a month calendar with the days that moved money" }
func (*calendarCmd) Usage() string {
	return `ftr calendar [-month <YYYY-MM>]

  Shows a calendar of the month: days with movements are marked, and
  the per-day income and expense totals follow. Defaults to the current
  month.

`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "The month to show, as YYYY-MM.")
}

func (c *calendarCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := fintra.Today()
	if c.month != "" {
		parsed, err := fintra.ParseDate(c.month + "-01")
		if err != nil {
			return fail(fmt.Errorf("invalid month %q, want YYYY-MM", c.month))
		}
		day = parsed
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	cm := ledger.CalendarMonth(day.Year(), day.Month())
	printMarkdown(renderer.CalendarMarkdown(ledger, cm))
	return subcommands.ExitSuccess
}
