package tradepnl

import (
	"reflect"
	"strings"
	"testing"
)

func rawBuy(sym, date, qty, price, commission string) RawTrade {
	return RawTrade{
		Symbol: sym, Type: "Equities", Transaction: "Buy",
		Quantity: qty, Price: price, Commission: commission, ActivityDate: date,
	}
}

func rawSell(sym, date, qty, price, commission string) RawTrade {
	r := rawBuy(sym, date, qty, price, commission)
	r.Transaction = "Sell"
	return r
}

func TestNewSummary_EmptyInput(t *testing.T) {
	s := NewSummary(nil, Filter{})
	if s.TradeCount != 0 {
		t.Errorf("TradeCount = %d, want 0", s.TradeCount)
	}
	if !s.TotalPL.IsZero() || !s.AvgTrade.IsZero() || s.WinRate != 0 {
		t.Errorf("aggregates not zeroed: %+v", s)
	}
	if !s.Range.IsZero() {
		t.Errorf("Range = %v, want zero", s.Range)
	}
	if len(s.TopSymbols) != 0 || len(s.PLByMonth) != 0 || len(s.Closed) != 0 {
		t.Errorf("tables not empty: %+v", s)
	}
}

func TestNewSummary_RoundTrip(t *testing.T) {
	records := []RawTrade{
		rawBuy("AAPL", "2025-01-01", "10", "100", "1"),
		rawSell("AAPL", "2025-01-02", "10", "110", "1"),
	}
	s := NewSummary(records, Filter{})

	if s.TradeCount != 1 {
		t.Fatalf("TradeCount = %d, want 1", s.TradeCount)
	}
	if !s.TotalPL.Equal(M(98)) {
		t.Errorf("TotalPL = %s, want $98.00", s.TotalPL)
	}
	if !s.WinRate.Equal(Percent(100)) {
		t.Errorf("WinRate = %s, want 100.00%%", s.WinRate)
	}
	if !s.AvgTrade.Equal(M(98)) {
		t.Errorf("AvgTrade = %s, want $98.00", s.AvgTrade)
	}
	if s.Range.From != jan(1) || s.Range.To != jan(2) {
		t.Errorf("Range = %v..%v, want 2025-01-01..2025-01-02", s.Range.From, s.Range.To)
	}
	if len(s.TopSymbols) != 1 || s.TopSymbols[0].Symbol != "AAPL" || s.TopSymbols[0].Count != 1 {
		t.Errorf("TopSymbols = %+v, want one AAPL row", s.TopSymbols)
	}
	if len(s.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want none", s.Unmatched)
	}
}

func TestNewSummary_TotalEqualsSumOfClosed(t *testing.T) {
	records := []RawTrade{
		rawBuy("AAPL", "2025-01-01", "10", "100", "1"),
		rawBuy("GOOG", "2025-01-02", "5", "50", "1"),
		rawSell("AAPL", "2025-01-03", "10", "95", "1"),
		rawSell("GOOG", "2025-01-04", "5", "60", "1"),
	}
	s := NewSummary(records, Filter{})

	var sum Money
	for _, c := range s.Closed {
		sum = sum.Add(c.PL)
	}
	if !s.TotalPL.Equal(sum) {
		t.Errorf("TotalPL = %s, sum of closed = %s", s.TotalPL, sum)
	}
}

func TestNewSummary_RangeIgnoresFilter(t *testing.T) {
	// The date range covers the whole population even when the filter
	// narrows the matched one.
	records := []RawTrade{
		rawBuy("GOOG", "2024-06-01", "1", "10", "0"),
		rawBuy("AAPL", "2025-01-01", "10", "100", "0"),
		rawSell("AAPL", "2025-01-02", "10", "110", "0"),
	}
	s := NewSummary(records, Filter{Symbol: "AAPL"})

	if s.Range.From != on(2024, 6, 1) {
		t.Errorf("Range.From = %s, want 2024-06-01", s.Range.From)
	}
	if s.TradeCount != 1 {
		t.Errorf("TradeCount = %d, want 1", s.TradeCount)
	}
}

func TestNewSummary_FilterChangesMatching(t *testing.T) {
	// Excluding the buy by date leaves the sell without a lot to close.
	records := []RawTrade{
		rawBuy("AAPL", "2025-01-01", "10", "100", "0"),
		rawSell("AAPL", "2025-01-30", "10", "110", "0"),
	}
	s := NewSummary(records, Filter{Timeframe: Week, Now: jan(31)})

	if s.TradeCount != 0 {
		t.Errorf("TradeCount = %d, want 0", s.TradeCount)
	}
	if len(s.Unmatched) != 1 || !s.Unmatched[0].Quantity.Equal(Q(10)) {
		t.Errorf("Unmatched = %+v, want the whole sell", s.Unmatched)
	}
}

func TestNewSummary_Deterministic(t *testing.T) {
	records := []RawTrade{
		rawBuy("AAPL", "2025-01-01", "10", "100", "1"),
		rawBuy("TSLA240119C200", "2025-01-02", "2", "5", "1"),
		rawSell("AAPL", "2025-01-03", "10", "110", "1"),
		rawSell("TSLA240119C200", "2025-01-04", "2", "7", "1"),
	}
	a := NewSummary(records, Filter{})
	b := NewSummary(records, Filter{})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs differ:\n%+v\n%+v", a, b)
	}
}

func TestSummary_MarshalJSONFieldOrder(t *testing.T) {
	s := NewSummary([]RawTrade{
		rawBuy("AAPL", "2025-01-01", "10", "100", "1"),
		rawSell("AAPL", "2025-01-02", "10", "110", "1"),
	}, Filter{})

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	fields := []string{"from", "to", "totalPL", "winRate", "tradeCount", "avgTrade",
		"topSymbols", "plByType", "plByMonth", "plByUnderlying",
		"callPutPerformance", "closedTrades"}
	last := -1
	for _, f := range fields {
		i := strings.Index(out, `"`+f+`"`)
		if i < 0 {
			t.Fatalf("field %q missing in %s", f, out)
		}
		if i < last {
			t.Errorf("field %q out of order", f)
		}
		last = i
	}
	if strings.Contains(out, `"unmatched"`) {
		t.Errorf("unmatched serialized without warnings: %s", out)
	}
	if !strings.Contains(out, `"totalPL":98`) {
		t.Errorf("totalPL not a plain number: %s", out)
	}
}
