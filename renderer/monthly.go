package renderer

import (
	"fmt"
	"strings"

	"github.com/openlot/tradepnl"
)

// MonthlyMarkdown renders realized P/L per close month, oldest first.
func MonthlyMarkdown(s *tradepnl.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Monthly Performance from %s to %s\n\n", s.Range.From, s.Range.To)

	if len(s.PLByMonth) == 0 {
		fmt.Fprintln(&b, "No closed trades in this period.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Trades | P/L |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, row := range s.PLByMonth {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", row.Month, row.Count, row.PL.SignedString())
	}
	fmt.Fprintf(&b, "| **%s** | **%d** | **%s** |\n", "Total", s.TradeCount, s.TotalPL.SignedString())

	return b.String()
}
