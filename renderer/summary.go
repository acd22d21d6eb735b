package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/openlot/tradepnl"
)

// SummaryMarkdown renders the headline view: totals, win rate and the
// most traded symbols.
func SummaryMarkdown(s *tradepnl.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trading Summary from %s to %s", s.Range.From, s.Range.To))
	doc.PlainText(fmt.Sprintf("Total Realized P/L: %s over %d closed trades", s.TotalPL.SignedString(), s.TradeCount))

	doc.H2("Performance")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total P/L", s.TotalPL.SignedString()},
			{"Win Rate", s.WinRate.String()},
			{"Trades", fmt.Sprintf("%d", s.TradeCount)},
			{"Avg per Trade", s.AvgTrade.SignedString()},
		},
	})

	if len(s.TopSymbols) > 0 {
		doc.H2("Most Traded Symbols")
		rows := make([][]string, 0, len(s.TopSymbols))
		for _, row := range s.TopSymbols {
			rows = append(rows, []string{row.Symbol, fmt.Sprintf("%d", row.Count), row.PL.SignedString()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Symbol", "Trades", "P/L"},
			Rows:   rows,
		})
	}

	appendTypeTable(doc, s)

	return doc.String()
}

// SymbolsMarkdown renders only the most-traded-symbols table.
func SymbolsMarkdown(s *tradepnl.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Most Traded Symbols from %s to %s", s.Range.From, s.Range.To))
	if len(s.TopSymbols) == 0 {
		doc.PlainText("No closed trades in this period.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.TopSymbols))
	for _, row := range s.TopSymbols {
		rows = append(rows, []string{row.Symbol, fmt.Sprintf("%d", row.Count), row.PL.SignedString()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Trades", "P/L"},
		Rows:   rows,
	})

	return doc.String()
}

func appendTypeTable(doc *md.Markdown, s *tradepnl.Summary) {
	if len(s.PLByType) > 0 {
		doc.H2("P/L by Security Type")
		rows := make([][]string, 0, len(s.PLByType))
		for _, row := range s.PLByType {
			rows = append(rows, []string{row.Type, row.PL.SignedString()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Type", "P/L"},
			Rows:   rows,
		})
	}
}
