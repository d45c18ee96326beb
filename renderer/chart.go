package renderer

import (
	"fmt"
	"strings"

	"github.com/fintra/fintra"
	"github.com/shopspring/decimal"
)

// chartWidth is the bar length of the largest category.
const chartWidth = 40

var chartScale = decimal.NewFromInt(chartWidth)

// ChartMarkdown renders expense totals by category as a horizontal bar
// chart. Bars are scaled against the largest category.
func ChartMarkdown(l *fintra.Ledger, title string, totals []fintra.CategoryTotal) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s\n\n", title)
	if len(totals) == 0 {
		fmt.Fprintf(b, "No expenses to chart.\n")
		return b.String()
	}

	width := 0
	for _, t := range totals {
		if n := len(t.Title); n > width {
			width = n
		}
	}

	max := totals[0].Total // largest first
	grand := l.Amount(0)
	for _, t := range totals {
		fmt.Fprintf(b, "    %-*s %s %s\n", width, t.Title, bar(t.Total, max), t.Total)
		grand = grand.Add(t.Total)
	}
	fmt.Fprintf(b, "\nTotal expenses: **%s**\n", grand)
	return b.String()
}

// bar scales a value against the chart maximum, always at least one block
// for a positive value.
func bar(value, max fintra.Money) string {
	if !value.IsPositive() || !max.IsPositive() {
		return ""
	}
	n := int(value.Decimal().Div(max.Decimal()).Mul(chartScale).IntPart())
	if n < 1 {
		n = 1
	}
	if n > chartWidth {
		n = chartWidth
	}
	return strings.Repeat("█", n)
}
