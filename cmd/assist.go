package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/fintra/fintra/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `ftr assist [<question>...]

  Starts an interactive session with the AI assistant. The assistant
  can read the ledger and answer questions about your finances. An
  initial question can be given on the command line.

`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	coach := agent.NewCoach()
	bookkeeper := agent.NewBookkeeper(DecodeLedger)
	a := agent.New(os.Stdout, os.Stdin, coach, bookkeeper)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
