package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment on an active debt" }
func (*payCmd) Usage() string {
	return `ftr pay <debt-id> [<amount>]

  Records a payment on a debt and the matching settlement movement.
  Without an amount, the whole remaining balance is settled. A debt
  paid down to zero leaves the active set.

`
}

func (*payCmd) SetFlags(*flag.FlagSet) {}

func (*payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		return usageError("pay expects a debt id and an optional amount")
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	id := f.Arg(0)

	if f.NArg() == 1 {
		err = ledger.PayFullDebt(id)
	} else {
		var amount fintra.Money
		if amount, err = fintra.ParseAmount(f.Arg(1), ledger.Currency()); err != nil {
			return fail(err)
		}
		err = ledger.PayDebt(id, amount)
	}
	if err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}

	if d, ok := ledger.Debt(id); ok {
		fmt.Printf("Payment recorded, %s remaining on %q\n", d.Remaining, d.Title)
	} else {
		fmt.Println("Payment recorded, debt fully settled")
	}
	return subcommands.ExitSuccess
}
