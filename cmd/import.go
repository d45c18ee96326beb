package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type importCmd struct {
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import movements from a semicolon-delimited file" }
func (*importCmd) Usage() string {
	return `ftr import [-replace] [<file>]

  Reads movements in the exchange format from the file (or stdin) and
  records them. Lines that do not parse are skipped. With -replace the
  existing movements and funds are dropped first; debts are kept.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.replace, "replace", false, "Replace the existing movements instead of appending.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usageError("import expects at most one file")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	in := os.Stdin
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return fail(fmt.Errorf("could not open %q: %w", f.Arg(0), err))
		}
		defer file.Close()
		in = file
	}

	movements, err := fintra.ParseMovements(in, ledger.Currency())
	if err != nil {
		return fail(err)
	}
	if err := ledger.ImportMovements(movements, c.replace); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported %d movement(s)\n", len(movements))
	return subcommands.ExitSuccess
}
