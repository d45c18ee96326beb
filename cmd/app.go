// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fintra/fintra"
	"github.com/google/subcommands"
)

// Commands is the list of all subcommands, in help order. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&editCmd{},
	&txCmd{},
	&balanceCmd{},
	&fundsCmd{},
	&debtCmd{},
	&payCmd{},
	&debtsCmd{},
	&rmdebtCmd{},
	&calendarCmd{},
	&chartCmd{},
	&findCmd{},
	&exportCmd{},
	&importCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables. Flags override environment variables, which
// override the config file.

var (
	configPath = flag.String("config", envOr("FINTRA_CONFIG", ""), "Path to the config file. Defaults to the user config directory.")
	ledgerDir  = flag.String("ledger-dir", envOr("FINTRA_LEDGER_DIR", ""), "Directory holding the ledger snapshots.")
	ledgerName = flag.String("ledger", envOr("FINTRA_LEDGER", ""), "Name of the ledger to work on.")
	currency   = flag.String("currency", envOr("FINTRA_CURRENCY", ""), "Currency code for newly created ledgers.")
	verbose    = flag.Bool("v", os.Getenv("FINTRA_VERBOSE") != "", "Verbose logging to stderr.")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// settings resolves the effective ledger directory, name and currency from
// flags, environment and the config file.
func settings() (dir, name, cur string, err error) {
	cfg, err := fintra.LoadConfig(*configPath)
	if err != nil {
		return "", "", "", err
	}
	dir, name, cur = cfg.LedgerDir, cfg.Ledger, cfg.Currency
	if *ledgerDir != "" {
		dir = *ledgerDir
	}
	if *ledgerName != "" {
		name = *ledgerName
	}
	if *currency != "" {
		cur = *currency
	}
	return dir, name, cur, nil
}

// DecodeLedger loads the selected ledger. A ledger that does not exist yet
// is returned empty, to be created on the first save.
func DecodeLedger() (*fintra.Ledger, error) {
	dir, name, cur, err := settings()
	if err != nil {
		return nil, err
	}
	vlog("loading ledger %q from %q", name, dir)
	return fintra.FindLedger(dir, name, cur)
}

// SaveLedger persists the ledger back to the selected directory.
func SaveLedger(l *fintra.Ledger) error {
	dir, _, _, err := settings()
	if err != nil {
		return err
	}
	vlog("saving ledger %q to %q", l.Name(), dir)
	return fintra.SaveLedger(dir, l)
}

// vlog logs to stderr when -v is set.
func vlog(format string, args ...any) {
	if *verbose {
		log.Printf(format, args...)
	}
}

// printMarkdown renders markdown to the terminal. If fancy rendering
// fails (no TTY, unknown terminal), the raw markdown is still readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints a message and returns the usage-error exit status.
func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
