package tradepnl

import "slices"

// ClosedTrade is one realized match between an opening Buy lot and a closing
// Sell. A single Sell can produce several ClosedTrades when it consumes
// several lots.
type ClosedTrade struct {
	Symbol     string
	OpenDate   Date
	CloseDate  Date
	Quantity   Quantity
	OpenPrice  Money
	ClosePrice Money
	PL         Money
	Type       string
	CallPut    CallPut
}

// MarshalJSON implements the json.Marshaler interface for ClosedTrade with
// a stable field order.
func (c ClosedTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", c.Symbol)
	w.Append("openDate", c.OpenDate)
	w.Append("closeDate", c.CloseDate)
	w.Append("quantity", c.Quantity)
	w.Append("openPrice", c.OpenPrice)
	w.Append("closePrice", c.ClosePrice)
	w.Append("pl", c.PL)
	w.Append("type", c.Type)
	w.Optional("callPut", c.CallPut)
	return w.MarshalJSON()
}

// UnmatchedSell reports a Sell whose quantity exceeded every open lot of its
// key. The excess is dropped, it does not open a short position.
type UnmatchedSell struct {
	Key      string
	Symbol   string
	CallPut  CallPut
	Quantity Quantity // leftover quantity that found no lot
	Date     Date
}

// MarshalJSON implements the json.Marshaler interface for UnmatchedSell.
func (u UnmatchedSell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", u.Key)
	w.Append("symbol", u.Symbol)
	w.Optional("callPut", u.CallPut)
	w.Append("quantity", u.Quantity)
	w.Append("date", u.Date)
	return w.MarshalJSON()
}

// MatchResult is the output of one matching pass.
type MatchResult struct {
	Closed    []ClosedTrade
	Unmatched []UnmatchedSell
}

// Match converts a trade sequence into realized ClosedTrade events using
// FIFO cost-basis matching, independently per (symbol, option class) key.
//
// Trades are stable-sorted by activity date (ties keep input order), then
// walked once. A Buy pushes an open lot on its key's queue; a Sell consumes
// the oldest lots first, splitting across lots as needed. Each open lot is
// consumed at most once, so the pass is O(n log n) in the sort and O(n) in
// the walk. Input trades are never mutated; the queues own all scratch
// state and die with the pass.
func Match(trades []Trade) *MatchResult {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	slices.SortStableFunc(sorted, func(a, b Trade) int {
		return a.ActivityDate.Compare(b.ActivityDate)
	})

	result := &MatchResult{}
	queues := make(map[string]lotQueue)

	for _, t := range sorted {
		switch t.Transaction {
		case Buy:
			key := t.lotKey()
			queues[key] = queues[key].push(openLot{trade: t, remaining: t.Quantity})
		case Sell:
			result.matchSell(queues, t)
		}
	}
	return result
}

// matchSell consumes open lots for the sell's key until the sell quantity is
// exhausted or the queue runs dry.
func (r *MatchResult) matchSell(queues map[string]lotQueue, sell Trade) {
	key := sell.lotKey()
	queue := queues[key]
	remaining := sell.Quantity

	for remaining.IsPositive() && !queue.isEmpty() {
		lot := queue.oldest()

		if lot.remaining.LessThanOrEqual(remaining) {
			// The lot closes fully: the whole buy commission is charged to
			// this close, even when earlier partial closes already carried
			// a prorated share. Asymmetric with the partial branch below;
			// reported numbers depend on both formulas staying as they are.
			qty := lot.remaining
			openAmount := lot.trade.Price.Mul(qty).Add(lot.trade.Commission)
			r.Closed = append(r.Closed, realize(lot.trade, sell, qty, openAmount))
			remaining = remaining.Sub(qty)
			queue = queue.popOldest()
			continue
		}

		// The lot has more than needed: partial close, buy commission
		// prorated by the share of the original lot quantity consumed.
		qty := remaining
		share := qty.Div(lot.trade.Quantity)
		openAmount := lot.trade.Price.Mul(qty).Add(lot.trade.Commission.Mul(share))
		r.Closed = append(r.Closed, realize(lot.trade, sell, qty, openAmount))
		lot.remaining = lot.remaining.Sub(qty)
		remaining = Quantity{}
	}
	queues[key] = queue

	if remaining.IsPositive() {
		// Sell without enough antecedent buys: the excess is dropped and
		// reported, never matched.
		r.Unmatched = append(r.Unmatched, UnmatchedSell{
			Key:      key,
			Symbol:   sell.Symbol,
			CallPut:  sell.CallPut,
			Quantity: remaining,
			Date:     sell.ActivityDate,
		})
	}
}

// realize builds the ClosedTrade for qty shares taken from a lot at the
// sell. The sell commission is always prorated by the fraction of the
// sell's total quantity this match represents.
func realize(buy, sell Trade, qty Quantity, openAmount Money) ClosedTrade {
	sellShare := qty.Div(sell.Quantity)
	closeAmount := sell.Price.Mul(qty).Sub(sell.Commission.Mul(sellShare))
	return ClosedTrade{
		Symbol:     sell.Symbol,
		OpenDate:   buy.ActivityDate,
		CloseDate:  sell.ActivityDate,
		Quantity:   qty,
		OpenPrice:  buy.Price,
		ClosePrice: sell.Price,
		PL:         closeAmount.Sub(openAmount),
		Type:       sell.Type,
		CallPut:    sell.CallPut,
	}
}
