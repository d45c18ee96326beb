package fintra

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// This file handles the exchange format: a semicolon-delimited text file,
// one header plus one line per movement. It is meant to stay human
// readable and easy to edit in a spreadsheet.
//
//	day;title;description;amount;type
//
// with day as DD/MM/YYYY and the amount formatted with the currency's
// thousands separators.

// exchangeHeader is the first line of every exchange file.
const exchangeHeader = "day;title;description;amount;type"

// ExportMovements writes all ledger movements to w in the exchange format.
func ExportMovements(w io.Writer, l *Ledger) error {
	if _, err := fmt.Fprintln(w, exchangeHeader); err != nil {
		return fmt.Errorf("could not write export header: %w", err)
	}
	for m := range l.Movements() {
		_, err := fmt.Fprintf(w, "%s;%s;%s;%s;%s\n",
			m.Date.Exchange(), m.Title, m.Description, m.Amount.Separated(), m.Type)
		if err != nil {
			return fmt.Errorf("could not write movement %q: %w", m.ID, err)
		}
	}
	return nil
}

// ParseMovements reads movements from r in the exchange format. The parser
// is tolerant: the header line, empty lines, and lines missing any of
// date, title, amount or type are skipped rather than failing the import.
// Amounts follow the continental convention ('.' thousands, ',' decimal)
// but plain decimals are accepted too.
func ParseMovements(r io.Reader, currency string) ([]Movement, error) {
	var movements []Movement
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == exchangeHeader {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) != 5 {
			continue
		}
		day, title, description, amount, kind := fields[0], fields[1], fields[2], fields[3], fields[4]
		if day == "" || title == "" || amount == "" || kind == "" {
			continue
		}

		date, err := ParseDate(day)
		if err != nil {
			continue
		}
		money, err := ParseAmount(amount, currency)
		if err != nil || !money.IsPositive() {
			continue
		}
		mtype, err := ParseMovementType(kind)
		if err != nil {
			continue
		}

		movements = append(movements, Movement{
			Date:        date,
			Type:        mtype,
			Title:       title,
			Description: description,
			Amount:      money,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read exchange file: %w", err)
	}
	return movements, nil
}

// ImportMovements records parsed movements into the ledger. With replace
// true the existing movements and funds are dropped first (debts are kept,
// they are not part of the exchange format); otherwise the movements are
// appended. Imported incomes originate fresh funds; imported expenses
// allocate against them, overspending silently since the exchange format
// carries no fund linkage.
func (l *Ledger) ImportMovements(movements []Movement, replace bool) error {
	saved := l.snapshot()
	if replace {
		l.movements = nil
		l.funds = nil
	}
	for _, m := range movements {
		if _, err := l.AddMovement(m, true); err != nil {
			l.restore(saved)
			return fmt.Errorf("could not import movement %q: %w", m.Title, err)
		}
	}
	return nil
}
