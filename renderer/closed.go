package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/openlot/tradepnl"
)

// ClosedMarkdown renders the closed-trade ledger, one row per realized
// match, followed by unmatched-sell warnings when any exist.
func ClosedMarkdown(s *tradepnl.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Closed Trades from %s to %s\n\n", s.Range.From, s.Range.To)

	if len(s.Closed) == 0 {
		fmt.Fprintln(&b, "No closed trades in this period.")
	} else {
		fmt.Fprintln(&b, "| Symbol | Opened | Closed | Qty | Open | Close | P/L |")
		fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")
		for _, c := range s.Closed {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				c.Symbol, c.OpenDate, c.CloseDate, c.Quantity,
				c.OpenPrice, c.ClosePrice, c.PL.SignedString())
		}
		fmt.Fprintf(&b, "| **%s** | | | | | | **%s** |\n", "Total", s.TotalPL.SignedString())
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(s.Unmatched) == 0 {
			return false
		}
		fmt.Fprint(w, "\n## Warnings\n\n")
		for _, u := range s.Unmatched {
			fmt.Fprintf(w, "- %s: sell of %s on %s had no matching buy and was dropped\n",
				u.Key, u.Quantity, u.Date)
		}
		return true
	})

	return b.String()
}
