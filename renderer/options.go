package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/openlot/tradepnl"
)

// OptionsMarkdown renders the options views: P/L per underlying and the
// call/put split. Sections without data are omitted.
func OptionsMarkdown(s *tradepnl.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Options Performance from %s to %s\n\n", s.Range.From, s.Range.To)

	if len(s.PLByUnderlying) == 0 && len(s.CallPutPerformance) == 0 {
		fmt.Fprintln(&b, "No closed option trades in this period.")
		return b.String()
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(s.PLByUnderlying) == 0 {
			return false
		}
		fmt.Fprint(w, "## P/L per Underlying\n\n")
		fmt.Fprintln(w, "| Underlying | Trades | P/L |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for _, row := range s.PLByUnderlying {
			fmt.Fprintf(w, "| %s | %d | %s |\n", row.Underlying, row.Count, row.PL.SignedString())
		}
		fmt.Fprintln(w)
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(s.CallPutPerformance) == 0 {
			return false
		}
		fmt.Fprint(w, "## Calls vs Puts\n\n")
		fmt.Fprintln(w, "| Class | Trades | P/L | Win Rate |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|")
		for _, row := range s.CallPutPerformance {
			fmt.Fprintf(w, "| %s | %d | %s | %s |\n", row.Class, row.Count, row.PL.SignedString(), row.WinRate)
		}
		return true
	})

	return b.String()
}
