package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fintra/fintra"
)

// StatementMarkdown generates a markdown listing of the given movements.
// Movements are printed in the order received; the backing column shows how
// each expense was covered.
func StatementMarkdown(l *fintra.Ledger, movements []fintra.Movement) string {
	r := &statementRenderer{Builder: &strings.Builder{}, ledger: l}

	r.Printf("# Movements of %s\n\n", l.Name())
	if len(movements) == 0 {
		r.Printf("No movements.\n")
		return r.String()
	}

	r.Printf("| Date | Type | Title | Amount | Backing |\n")
	r.Printf("|:---|:---|:---|---:|:---|\n")
	for _, m := range movements {
		r.renderMovement(m)
	}
	r.Printf("\n")
	r.renderOverspent(movements)
	return r.String()
}

// statementRenderer formats movements into a markdown string.
type statementRenderer struct {
	*strings.Builder
	ledger *fintra.Ledger
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *statementRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *statementRenderer) renderMovement(m fintra.Movement) {
	title := m.Title
	if m.Description != "" {
		title += " - " + m.Description
	}
	r.Printf("| %s | %s | %s | %s | %s |\n", m.Date, m.Type, title, m.Amount, r.backing(m))
}

// backing describes how an expense was covered, naming the funds it drew from.
func (r *statementRenderer) backing(m fintra.Movement) string {
	if m.Type != fintra.Expense {
		return ""
	}
	var parts []string
	for _, draw := range m.FundsUsed {
		name := draw.FundID
		if f, ok := r.ledger.Fund(draw.FundID); ok {
			name = f.Title
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, draw.Amount))
	}
	if !m.Overspend.IsZero() {
		parts = append(parts, fmt.Sprintf("overspent: %s", m.Overspend))
	}
	if len(parts) == 0 {
		return "unfunded"
	}
	return strings.Join(parts, ", ")
}

// renderOverspent prints the overspend recap section, but only when at
// least one movement actually overspent.
func (r *statementRenderer) renderOverspent(movements []fintra.Movement) {
	section := Header(func(w io.Writer) {
		fmt.Fprintf(w, "## Overspent\n\n")
	})
	section.Footer(func(w io.Writer) {
		fmt.Fprintf(w, "\n")
	})
	for _, m := range movements {
		if m.Overspend.IsZero() {
			continue
		}
		section.PrintHeader(r)
		r.Printf("- %s %s: %s not covered by any fund\n", m.Date, m.Title, m.Overspend)
	}
	section.PrintFooter(r)
}
