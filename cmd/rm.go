package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct {
	cascade bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a movement and reverse its effect on the funds" }
func (*rmCmd) Usage() string {
	return `ftr rm [-cascade] <movement-id>

  Deletes a movement. Deleting an expense credits the funds it drew
  from; deleting an income removes its fund. An income whose fund is
  still used by expenses is refused unless -cascade is given, in which
  case those draws become overspend on the expenses.

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.cascade, "cascade", false, "Delete the income even if expenses drew from its fund.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("rm expects exactly one movement id")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteMovement(f.Arg(0), c.cascade); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted movement %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
