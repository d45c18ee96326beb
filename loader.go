package fintra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLedgerName is the ledger used when none is named.
const DefaultLedgerName = "finance"

// FindLedger loads the unique ledger matching name from the given
// directory. A missing file is not an error: it yields an empty ledger in
// the given currency, to be created on the first save.
func FindLedger(dir, name, currency string) (*Ledger, error) {
	if name == "" {
		name = DefaultLedgerName
	}
	path := filepath.Join(dir, name+".json")

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l := NewLedger(currency)
		l.name = name
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	l.name = name
	return l, nil
}

// ListLedgers returns the names of the ledger snapshots found in dir,
// sorted by file name.
func ListLedgers(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list ledgers in %q: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}

// SaveLedger writes the ledger snapshot to its file under dir. Persistence
// runs after every mutation; a failure here means memory and disk diverge,
// so the error must reach the user.
func SaveLedger(dir string, l *Ledger) error {
	if l.Name() == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create ledger directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, l.Name()+".json")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, l); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not flush ledger file %q: %w", path, err)
	}
	return nil
}
