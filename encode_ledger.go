package fintra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persistence port works on full snapshots: the whole ledger state is
// one JSON document {currency, movements, debts, incomeFunds}. There is no
// partial or incremental persistence.

// EncodeLedger writes the full ledger snapshot to w in a canonical,
// human-diffable form: stable field order, one indentation level.
func EncodeLedger(w io.Writer, l *Ledger) error {
	var obj jsonObjectWriter
	obj.Append("currency", l.currency)
	obj.Append("movements", l.movements)
	obj.Append("debts", l.debts)
	obj.Append("incomeFunds", l.funds)

	compact, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode ledger snapshot: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("could not format ledger snapshot: %w", err)
	}
	out.WriteByte('\n')
	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("could not write ledger snapshot: %w", err)
	}
	return nil
}

// DecodeLedger reads a full ledger snapshot from r.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger snapshot: %w", err)
	}

	var snap struct {
		Currency    string           `json:"currency"`
		Movements   []movementRecord `json:"movements"`
		Debts       []debtRecord     `json:"debts"`
		IncomeFunds []fundRecord     `json:"incomeFunds"`
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("could not decode ledger snapshot: %w", err)
	}

	l := NewLedger(snap.Currency)
	for _, r := range snap.Movements {
		l.movements = append(l.movements, r.movement(l.currency))
	}
	for _, r := range snap.Debts {
		d := r.debt(l.currency)
		if err := d.check(); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
		l.debts = append(l.debts, d)
	}
	for _, r := range snap.IncomeFunds {
		f := r.fund(l.currency)
		if err := f.check(); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
		l.funds = append(l.funds, f)
	}
	l.stableSort()
	return l, nil
}
