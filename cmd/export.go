package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the movements to a semicolon-delimited file" }
func (*exportCmd) Usage() string {
	return `ftr export [-o <file>]

  Writes all movements in the exchange format (day;title;description;
  amount;type) to stdout, or to a file with -o.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return fail(fmt.Errorf("could not create %q: %w", c.output, err))
		}
		defer f.Close()
		out = f
	}

	if err := fintra.ExportMovements(out, ledger); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
