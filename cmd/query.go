package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the ledger" }
func (*queryCmd) Usage() string {
	return `ftr query <expression>

  Evaluates a JSONPath expression against the ledger snapshot and
  prints the result as JSON. See 'ftr topic query' for examples.

Usage Examples:
$ ftr query '$.movements[*].title'

`
}

func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("query expects exactly one JSONPath expression")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	v, err := fintra.Query(ledger, f.Arg(0))
	if err != nil {
		return fail(err)
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
