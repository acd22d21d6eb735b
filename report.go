package tradepnl

// topSymbolCount is how many symbols the top-symbols table keeps.
const topSymbolCount = 5

// Summary packages every reporting view derived from one pipeline run. It is
// rebuilt wholesale on each run, never patched incrementally, and lives only
// for the duration of one report.
type Summary struct {
	Range              Range // earliest/latest activity date of the pre-filter population
	TotalPL            Money
	WinRate            Percent
	TradeCount         int // closed trades, not raw input records
	AvgTrade           Money
	TopSymbols         []SymbolStat
	PLByType           []TypePL
	PLByMonth          []MonthPL
	PLByUnderlying     []UnderlyingPL
	CallPutPerformance []CallPutStat
	Closed             []ClosedTrade
	Unmatched          []UnmatchedSell
}

// NewSummary runs the full pipeline over the raw records: normalize, filter,
// match, aggregate. It is a pure function of its input; reinvoke it whenever
// the records or the filter change. Empty input produces a zeroed Summary,
// "no data yet" is a normal state, not an error.
func NewSummary(records []RawTrade, f Filter) *Summary {
	trades := Normalize(records)

	// The date range reflects the whole normalized population, before any
	// filtering or matching.
	r := dateRange(trades)

	result := Match(f.Apply(trades))

	return &Summary{
		Range:              r,
		TotalPL:            TotalPL(result.Closed),
		WinRate:            WinRate(result.Closed),
		TradeCount:         len(result.Closed),
		AvgTrade:           AvgTrade(result.Closed),
		TopSymbols:         TopSymbols(result.Closed, topSymbolCount),
		PLByType:           PLByType(result.Closed),
		PLByMonth:          PLByMonth(result.Closed),
		PLByUnderlying:     PLByUnderlying(result.Closed),
		CallPutPerformance: CallPutPerformance(result.Closed),
		Closed:             result.Closed,
		Unmatched:          result.Unmatched,
	}
}

// MarshalJSON implements the json.Marshaler interface for Summary with a
// stable field order.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("from", s.Range.From)
	w.Append("to", s.Range.To)
	w.Append("totalPL", s.TotalPL)
	w.Append("winRate", float64(s.WinRate))
	w.Append("tradeCount", s.TradeCount)
	w.Append("avgTrade", s.AvgTrade)
	w.Append("topSymbols", s.TopSymbols)
	w.Append("plByType", s.PLByType)
	w.Append("plByMonth", s.PLByMonth)
	w.Append("plByUnderlying", s.PLByUnderlying)
	w.Append("callPutPerformance", s.CallPutPerformance)
	w.Append("closedTrades", s.Closed)
	w.Optional("unmatched", s.Unmatched)
	return w.MarshalJSON()
}
