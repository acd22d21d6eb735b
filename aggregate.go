package tradepnl

import (
	"regexp"
	"slices"
	"strings"
)

// SymbolStat is one row of the top-symbols table.
type SymbolStat struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
	PL     Money  `json:"pl"`
}

// TypePL is realized P/L summed per security type.
type TypePL struct {
	Type string `json:"type"`
	PL   Money  `json:"pl"`
}

// MonthPL is realized P/L and trade count per close month.
type MonthPL struct {
	Month string `json:"month"` // YYYY-MM of the close date
	Count int    `json:"count"`
	PL    Money  `json:"pl"`
}

// UnderlyingPL is realized options P/L per underlying symbol.
type UnderlyingPL struct {
	Underlying string `json:"underlying"`
	Count      int    `json:"count"`
	PL         Money  `json:"pl"`
}

// CallPutStat is the per-class options performance row.
type CallPutStat struct {
	Class   CallPut `json:"class"`
	Count   int     `json:"count"`
	PL      Money   `json:"pl"`
	WinRate Percent `json:"winRate"`
}

// TotalPL sums realized P/L over all closed trades.
func TotalPL(closed []ClosedTrade) Money {
	var total Money
	for _, c := range closed {
		total = total.Add(c.PL)
	}
	return total
}

// WinRate is the share of closed trades with a strictly positive P/L, as a
// percentage. Zero P/L counts as non-winning; no closed trades yields 0.
func WinRate(closed []ClosedTrade) Percent {
	if len(closed) == 0 {
		return 0
	}
	wins := 0
	for _, c := range closed {
		if c.PL.IsPositive() {
			wins++
		}
	}
	return Percent(float64(wins) / float64(len(closed)) * 100)
}

// AvgTrade is the mean realized P/L per closed trade, zero when there are none.
func AvgTrade(closed []ClosedTrade) Money {
	if len(closed) == 0 {
		return Money{}
	}
	return TotalPL(closed).Div(Q(float64(len(closed))))
}

// TopSymbols groups closed trades by symbol and returns the n most traded,
// by closed-trade count descending. Count ties keep first-encountered order.
func TopSymbols(closed []ClosedTrade, n int) []SymbolStat {
	var stats []SymbolStat
	index := make(map[string]int)
	for _, c := range closed {
		i, ok := index[c.Symbol]
		if !ok {
			i = len(stats)
			index[c.Symbol] = i
			stats = append(stats, SymbolStat{Symbol: c.Symbol})
		}
		stats[i].Count++
		stats[i].PL = stats[i].PL.Add(c.PL)
	}
	slices.SortStableFunc(stats, func(a, b SymbolStat) int { return b.Count - a.Count })
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// PLByType groups closed trades by security type and sums P/L per group, in
// first-encountered order. An empty input yields an empty table; any
// placeholder rows are the consumer's business.
func PLByType(closed []ClosedTrade) []TypePL {
	var rows []TypePL
	index := make(map[string]int)
	for _, c := range closed {
		i, ok := index[c.Type]
		if !ok {
			i = len(rows)
			index[c.Type] = i
			rows = append(rows, TypePL{Type: c.Type})
		}
		rows[i].PL = rows[i].PL.Add(c.PL)
	}
	return rows
}

// PLByMonth groups closed trades by the YYYY-MM of their close date and sums
// P/L and count per month, sorted ascending by month key.
func PLByMonth(closed []ClosedTrade) []MonthPL {
	var rows []MonthPL
	index := make(map[string]int)
	for _, c := range closed {
		key := c.CloseDate.MonthKey()
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, MonthPL{Month: key})
		}
		rows[i].Count++
		rows[i].PL = rows[i].PL.Add(c.PL)
	}
	slices.SortStableFunc(rows, func(a, b MonthPL) int { return strings.Compare(a.Month, b.Month) })
	return rows
}

var underlyingRE = regexp.MustCompile(`^[A-Z]+`)

// UnderlyingOf extracts the underlying from an option symbol: the leading
// run of capital letters, or "Unknown" when the symbol starts with anything
// else.
func UnderlyingOf(symbol string) string {
	if m := underlyingRE.FindString(symbol); m != "" {
		return m
	}
	return unknownLabel
}

// PLByUnderlying restricts to option closed trades (CALL or PUT) and groups
// them by underlying, sorted by P/L descending. Ties keep first-encountered
// order.
func PLByUnderlying(closed []ClosedTrade) []UnderlyingPL {
	var rows []UnderlyingPL
	index := make(map[string]int)
	for _, c := range closed {
		if c.CallPut != Call && c.CallPut != Put {
			continue
		}
		key := UnderlyingOf(c.Symbol)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, UnderlyingPL{Underlying: key})
		}
		rows[i].Count++
		rows[i].PL = rows[i].PL.Add(c.PL)
	}
	slices.SortStableFunc(rows, func(a, b UnderlyingPL) int { return b.PL.Compare(a.PL) })
	return rows
}

// CallPutPerformance groups option closed trades by class and computes P/L,
// count and win rate per class, in first-encountered order. A class row only
// exists when at least one trade fed it, so the win-rate division is safe.
func CallPutPerformance(closed []ClosedTrade) []CallPutStat {
	var rows []CallPutStat
	wins := make(map[CallPut]int)
	index := make(map[CallPut]int)
	for _, c := range closed {
		if c.CallPut != Call && c.CallPut != Put {
			continue
		}
		i, ok := index[c.CallPut]
		if !ok {
			i = len(rows)
			index[c.CallPut] = i
			rows = append(rows, CallPutStat{Class: c.CallPut})
		}
		rows[i].Count++
		rows[i].PL = rows[i].PL.Add(c.PL)
		if c.PL.IsPositive() {
			wins[c.CallPut]++
		}
	}
	for i := range rows {
		rows[i].WinRate = Percent(float64(wins[rows[i].Class]) / float64(rows[i].Count) * 100)
	}
	return rows
}
