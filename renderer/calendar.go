package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fintra/fintra"
)

// CalendarMarkdown renders the month calendar: a week grid where days with
// movements are marked, followed by the per-day totals.
func CalendarMarkdown(l *fintra.Ledger, cm fintra.CalendarMonth) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s %d\n\n", cm.Month, cm.Year)

	fmt.Fprintf(b, "| Mon | Tue | Wed | Thu | Fri | Sat | Sun |\n")
	fmt.Fprintf(b, "|---:|---:|---:|---:|---:|---:|---:|\n")

	first := fintra.NewDate(cm.Year, cm.Month, 1)
	// Week starts on Monday; time.Weekday starts on Sunday.
	lead := (int(first.Weekday()) + 6) % 7
	cells := make([]string, 0, lead+len(cm.Days))
	for i := 0; i < lead; i++ {
		cells = append(cells, "")
	}
	for _, day := range cm.Days {
		cell := fmt.Sprintf("%d", day.Day)
		if day.HasMovements {
			cell = fmt.Sprintf("**%d** ●", day.Day)
		}
		cells = append(cells, cell)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, "")
	}
	for i := 0; i < len(cells); i += 7 {
		fmt.Fprintf(b, "| %s |\n", strings.Join(cells[i:i+7], " | "))
	}

	// The totals section only shows up for months with activity.
	ConditionalBlock(b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Daily totals\n\n")
		fmt.Fprintf(w, "| Day | Income | Expense |\n")
		fmt.Fprintf(w, "|:---|---:|---:|\n")
		active := false
		for _, day := range cm.Days {
			if !day.HasMovements {
				continue
			}
			active = true
			date := fintra.NewDate(cm.Year, cm.Month, day.Day)
			fmt.Fprintf(w, "| %s %d | %s | %s |\n", date.Weekday().String()[:3], day.Day, day.Income, day.Expense)
		}
		return active
	})
	return b.String()
}
