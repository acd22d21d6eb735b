package tradepnl

import "strings"

// unknownLabel is the default for absent symbols and security types.
const unknownLabel = "Unknown"

// Normalize coerces raw broker records into canonical Trades. The output has
// the same length and order as the input: parsing failures are masked with
// defaults (zero amounts, the invalid-date sentinel), never surfaced as
// errors, and no record is ever dropped. Best-effort reporting beats
// rejecting rows.
func Normalize(records []RawTrade) []Trade {
	trades := make([]Trade, 0, len(records))
	for _, r := range records {
		trades = append(trades, normalizeOne(r))
	}
	return trades
}

func normalizeOne(r RawTrade) Trade {
	symbol := strings.TrimSpace(r.Symbol)
	if symbol == "" {
		symbol = unknownLabel
	}
	secType := strings.TrimSpace(r.Type)
	if secType == "" {
		secType = unknownLabel
	}
	activity, _ := ParseDate(r.ActivityDate)
	expire, _ := ParseDate(r.ExpireDate)
	return Trade{
		Symbol:       symbol,
		Transaction:  ParseTransactionType(r.Transaction),
		Type:         secType,
		CallPut:      ParseCallPut(r.CallPut),
		Underlying:   strings.TrimSpace(r.UnderlyingSymbol),
		ExpireDate:   expire,
		StrikePrice:  ParseMoney(r.StrikePrice),
		Quantity:     ParseQuantity(r.Quantity),
		Price:        ParseMoney(r.Price),
		Amount:       ParseMoney(r.Amount),
		Commission:   ParseMoney(r.Commission),
		ActivityDate: activity,
	}
}
