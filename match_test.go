package tradepnl

import "testing"

func TestMatch_EndToEndExample(t *testing.T) {
	result := Match([]Trade{
		stock("AAPL", Buy, jan(1), 10, 100, 1),
		stock("AAPL", Sell, jan(2), 10, 110, 1),
	})

	if len(result.Closed) != 1 {
		t.Fatalf("Match() closed = %d, want 1", len(result.Closed))
	}
	c := result.Closed[0]
	// (110*10 - 1) - (100*10 + 1) = 1099 - 1001 = 98
	if !c.PL.Equal(M(98)) {
		t.Errorf("PL = %s, want %s", c.PL, M(98))
	}
	if c.OpenDate != jan(1) || c.CloseDate != jan(2) {
		t.Errorf("dates = %s..%s, want %s..%s", c.OpenDate, c.CloseDate, jan(1), jan(2))
	}
	if !c.OpenPrice.Equal(M(100)) || !c.ClosePrice.Equal(M(110)) {
		t.Errorf("prices = %s/%s, want $100.00/$110.00", c.OpenPrice, c.ClosePrice)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want none", result.Unmatched)
	}
}

func TestMatch_FIFOOrder(t *testing.T) {
	// B1 must close fully before any of B2 is touched.
	result := Match([]Trade{
		stock("GOOG", Buy, jan(1), 10, 10, 0),
		stock("GOOG", Buy, jan(2), 10, 12, 0),
		stock("GOOG", Sell, jan(3), 15, 15, 0),
	})

	if len(result.Closed) != 2 {
		t.Fatalf("Match() closed = %d, want 2", len(result.Closed))
	}
	first, second := result.Closed[0], result.Closed[1]
	if !first.Quantity.Equal(Q(10)) || !first.OpenPrice.Equal(M(10)) {
		t.Errorf("first close = %s @ %s, want 10 @ $10.00", first.Quantity, first.OpenPrice)
	}
	if !first.PL.Equal(M(50)) { // 15*10 - 10*10
		t.Errorf("first PL = %s, want $50.00", first.PL)
	}
	if !second.Quantity.Equal(Q(5)) || !second.OpenPrice.Equal(M(12)) {
		t.Errorf("second close = %s @ %s, want 5 @ $12.00", second.Quantity, second.OpenPrice)
	}
	if !second.PL.Equal(M(15)) { // 15*5 - 12*5
		t.Errorf("second PL = %s, want $15.00", second.PL)
	}
}

func TestMatch_CommissionProrationPartialClose(t *testing.T) {
	// Closing 5 of a 10-share lot with $2 buy commission prorates $1 of it.
	result := Match([]Trade{
		stock("MSFT", Buy, jan(1), 10, 10, 2),
		stock("MSFT", Sell, jan(2), 5, 12, 0),
	})

	if len(result.Closed) != 1 {
		t.Fatalf("Match() closed = %d, want 1", len(result.Closed))
	}
	// close 60, open 50 + 2*(5/10) = 51
	if got := result.Closed[0].PL; !got.Equal(M(9)) {
		t.Errorf("PL = %s, want $9.00", got)
	}
}

func TestMatch_CommissionProrationFullCloseOfRemainder(t *testing.T) {
	// After a partial close, the later full close of the remainder charges
	// the lot's whole commission again, not a reprorated share.
	result := Match([]Trade{
		stock("MSFT", Buy, jan(1), 10, 10, 2),
		stock("MSFT", Sell, jan(2), 5, 12, 0),
		stock("MSFT", Sell, jan(3), 5, 12, 0),
	})

	if len(result.Closed) != 2 {
		t.Fatalf("Match() closed = %d, want 2", len(result.Closed))
	}
	// partial branch: 60 - (50 + 1) = 9
	if got := result.Closed[0].PL; !got.Equal(M(9)) {
		t.Errorf("partial close PL = %s, want $9.00", got)
	}
	// full-close branch: 60 - (50 + 2) = 8
	if got := result.Closed[1].PL; !got.Equal(M(8)) {
		t.Errorf("full close PL = %s, want $8.00", got)
	}
}

func TestMatch_SellCommissionProratedBySellShare(t *testing.T) {
	// A $4 sell commission across a 20-share sell: the 10-share lot carries
	// $2, the 10-share remainder carries the other $2.
	result := Match([]Trade{
		stock("AMD", Buy, jan(1), 10, 10, 0),
		stock("AMD", Buy, jan(2), 10, 10, 0),
		stock("AMD", Sell, jan(3), 20, 11, 4),
	})

	if len(result.Closed) != 2 {
		t.Fatalf("Match() closed = %d, want 2", len(result.Closed))
	}
	for i, c := range result.Closed {
		// 11*10 - 4*(10/20) - 10*10 = 110 - 2 - 100 = 8
		if !c.PL.Equal(M(8)) {
			t.Errorf("closed[%d] PL = %s, want $8.00", i, c.PL)
		}
	}
}

func TestMatch_UnmatchedSellWithoutBuy(t *testing.T) {
	result := Match([]Trade{
		stock("TSLA", Sell, jan(1), 5, 200, 0),
	})

	if len(result.Closed) != 0 {
		t.Fatalf("Match() closed = %d, want 0", len(result.Closed))
	}
	if len(result.Unmatched) != 1 {
		t.Fatalf("Match() unmatched = %d, want 1", len(result.Unmatched))
	}
	u := result.Unmatched[0]
	if u.Key != "TSLA-stock" {
		t.Errorf("Key = %q, want %q", u.Key, "TSLA-stock")
	}
	if !u.Quantity.Equal(Q(5)) {
		t.Errorf("leftover quantity = %s, want 5", u.Quantity)
	}
}

func TestMatch_UnmatchedExcessAfterPartialMatch(t *testing.T) {
	result := Match([]Trade{
		stock("TSLA", Buy, jan(1), 5, 100, 0),
		stock("TSLA", Sell, jan(2), 8, 110, 0),
	})

	if len(result.Closed) != 1 {
		t.Fatalf("Match() closed = %d, want 1", len(result.Closed))
	}
	if !result.Closed[0].Quantity.Equal(Q(5)) {
		t.Errorf("closed quantity = %s, want 5", result.Closed[0].Quantity)
	}
	if len(result.Unmatched) != 1 {
		t.Fatalf("Match() unmatched = %d, want 1", len(result.Unmatched))
	}
	if !result.Unmatched[0].Quantity.Equal(Q(3)) {
		t.Errorf("leftover quantity = %s, want 3", result.Unmatched[0].Quantity)
	}
}

func TestMatch_OptionClassKeysAreIndependent(t *testing.T) {
	// A CALL sell must not consume a stock lot of the same symbol.
	result := Match([]Trade{
		stock("AAPL", Buy, jan(1), 10, 100, 0),
		option("AAPL", Call, Sell, jan(2), 10, 5, 0),
	})

	if len(result.Closed) != 0 {
		t.Fatalf("Match() closed = %d, want 0", len(result.Closed))
	}
	if len(result.Unmatched) != 1 || result.Unmatched[0].Key != "AAPL-CALL" {
		t.Fatalf("Unmatched = %+v, want one warning for key AAPL-CALL", result.Unmatched)
	}
}

func TestMatch_SortsByDateKeepingInputOrderOnTies(t *testing.T) {
	// The sell arrives first in input order but later by date; same-day buys
	// keep their relative input order in the queue.
	result := Match([]Trade{
		stock("NVDA", Sell, jan(2), 10, 20, 0),
		stock("NVDA", Buy, jan(1), 5, 10, 0),
		stock("NVDA", Buy, jan(1), 5, 12, 0),
	})

	if len(result.Closed) != 2 {
		t.Fatalf("Match() closed = %d, want 2", len(result.Closed))
	}
	if !result.Closed[0].OpenPrice.Equal(M(10)) || !result.Closed[1].OpenPrice.Equal(M(12)) {
		t.Errorf("open prices = %s, %s; want $10.00 then $12.00",
			result.Closed[0].OpenPrice, result.Closed[1].OpenPrice)
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want none", result.Unmatched)
	}
}

func TestMatch_NegativeSellQuantityIsIgnored(t *testing.T) {
	result := Match([]Trade{
		stock("AAPL", Buy, jan(1), 10, 100, 0),
		stock("AAPL", Sell, jan(2), -5, 110, 0),
	})

	if len(result.Closed) != 0 {
		t.Errorf("Match() closed = %d, want 0", len(result.Closed))
	}
	if len(result.Unmatched) != 0 {
		t.Errorf("Match() unmatched = %d, want 0", len(result.Unmatched))
	}
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	trades := []Trade{
		stock("AAPL", Sell, jan(2), 10, 110, 0),
		stock("AAPL", Buy, jan(1), 10, 100, 0),
	}
	Match(trades)

	if trades[0].Transaction != Sell || trades[1].Transaction != Buy {
		t.Errorf("input order changed: %v", trades)
	}
	if !trades[0].Quantity.Equal(Q(10)) || !trades[1].Quantity.Equal(Q(10)) {
		t.Errorf("input quantities changed: %v", trades)
	}
}
