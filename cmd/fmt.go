package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the ledger files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `ftr fmt

  Reads every ledger snapshot in the ledger directory, validates it,
  and writes it back in the canonical form: stable field order, sorted
  movements, two-space indentation. The named ledger only when -ledger
  is given.

`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, name, cur, err := settings()
	if err != nil {
		return fail(err)
	}

	names := []string{name}
	if *ledgerName == "" && os.Getenv("FINTRA_LEDGER") == "" {
		if names, err = fintra.ListLedgers(dir); err != nil {
			return fail(err)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no ledgers found to format.")
		return subcommands.ExitSuccess
	}

	for _, n := range names {
		ledger, err := fintra.FindLedger(dir, n, cur)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", n, err)
			return subcommands.ExitFailure
		}
		if ledger.IsEmpty() {
			continue
		}
		if err := fintra.SaveLedger(dir, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", n, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Formatted ledger %q\n", n)
	}
	return subcommands.ExitSuccess
}
