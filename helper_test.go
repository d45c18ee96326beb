package fintra

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// newTestLedger returns an empty in-memory EUR ledger.
func newTestLedger() *Ledger { return NewLedger("EUR") }
