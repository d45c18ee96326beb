package fintra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries the user-level defaults of the CLI. Flags and environment
// variables override it; the config file only saves retyping them.
type Config struct {
	LedgerDir string `toml:"ledger_dir"` // directory holding the ledger snapshots
	Ledger    string `toml:"ledger"`     // default ledger name
	Currency  string `toml:"currency"`   // ledger currency code for new ledgers
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	dir := ".fintra"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".fintra")
	}
	return Config{
		LedgerDir: dir,
		Ledger:    DefaultLedgerName,
		Currency:  DefaultCurrency,
	}
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fintra", "config.toml")
	}
	return "config.toml"
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error: the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}
	return cfg, nil
}
