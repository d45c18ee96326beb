package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fintra/fintra/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	complete.Complete("ftr", completion())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI for shell completion. Install it with
// COMP_INSTALL=1 ftr.
func completion() *complete.Command {
	movementTypes := predict.Set{"income", "expense"}
	debtTypes := predict.Set{"owedToMe", "owedByMe"}

	sub := map[string]*complete.Command{
		"add": {Flags: map[string]complete.Predictor{
			"type": movementTypes, "on": predict.Nothing, "m": predict.Nothing,
			"from": predict.Nothing, "overspend": predict.Nothing,
		}},
		"rm": {Flags: map[string]complete.Predictor{"cascade": predict.Nothing}},
		"edit": {Flags: map[string]complete.Predictor{
			"type": movementTypes, "on": predict.Nothing, "m": predict.Nothing,
			"from": predict.Nothing, "overspend": predict.Nothing,
		}},
		"tx": {Flags: map[string]complete.Predictor{
			"s": predict.Nothing, "d": predict.Nothing,
			"head": predict.Nothing, "tail": predict.Nothing,
		}},
		"balance": {},
		"funds":   {Flags: map[string]complete.Predictor{"reconcile": predict.Nothing}},
		"debt": {Flags: map[string]complete.Predictor{
			"type": debtTypes, "person": predict.Nothing,
			"on": predict.Nothing, "m": predict.Nothing,
		}},
		"pay":      {},
		"debts":    {},
		"rmdebt":   {Flags: map[string]complete.Predictor{"write-off": predict.Nothing}},
		"calendar": {Flags: map[string]complete.Predictor{"month": predict.Nothing}},
		"chart":    {Flags: map[string]complete.Predictor{"month": predict.Nothing}},
		"find":     {Flags: map[string]complete.Predictor{"min": predict.Nothing}},
		"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
		"import":   {Args: predict.Files("*"), Flags: map[string]complete.Predictor{"replace": predict.Nothing}},
		"fmt":      {},
		"query":    {},
		"topic":    {},
		"assist":   {},
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.toml"),
			"ledger-dir": predict.Dirs("*"),
			"ledger":     predict.Nothing,
			"currency":   predict.Set{"EUR", "USD", "GBP"},
			"v":          predict.Nothing,
		},
	}
}
