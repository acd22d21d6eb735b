package tradepnl

import "time"

// jan is a helper for tests to build a date in January 2025 from a day const.
func jan(day int) Date { return NewDate(2025, time.January, day) }

// on is a helper for tests to build an arbitrary date from consts.
func on(year int, month time.Month, day int) Date { return NewDate(year, month, day) }

// stock builds a canonical stock trade from consts.
func stock(sym string, side TransactionType, day Date, qty, price, commission float64) Trade {
	return Trade{
		Symbol:       sym,
		Transaction:  side,
		Type:         "Equities",
		Quantity:     Q(qty),
		Price:        M(price),
		Commission:   M(commission),
		ActivityDate: day,
	}
}

// option builds a canonical option trade from consts.
func option(sym string, class CallPut, side TransactionType, day Date, qty, price, commission float64) Trade {
	t := stock(sym, side, day, qty, price, commission)
	t.Type = "Options"
	t.CallPut = class
	return t
}

// closedWith builds a minimal closed trade for aggregation tests.
func closedWith(sym string, class CallPut, closeDate Date, pl float64) ClosedTrade {
	return ClosedTrade{
		Symbol:    sym,
		OpenDate:  closeDate.Add(-1),
		CloseDate: closeDate,
		Quantity:  Q(1),
		PL:        M(pl),
		Type:      "Equities",
		CallPut:   class,
	}
}
