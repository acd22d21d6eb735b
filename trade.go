package tradepnl

import "strings"

// TransactionType identifies the side of a trade record.
type TransactionType string

const (
	Buy                TransactionType = "Buy"
	Sell               TransactionType = "Sell"
	UnknownTransaction TransactionType = "Unknown"
)

// ParseTransactionType parses a broker transaction field. Anything that is
// not recognizably a buy or a sell is Unknown; unknown sides flow through
// the matcher untouched.
func ParseTransactionType(s string) TransactionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "bought", "you bought":
		return Buy
	case "sell", "sold", "you sold":
		return Sell
	default:
		return UnknownTransaction
	}
}

// CallPut distinguishes option classes. The empty value means the record is
// not an option (a stock position).
type CallPut string

const (
	Call CallPut = "CALL"
	Put  CallPut = "PUT"
)

// ParseCallPut parses a broker call/put field; anything but CALL or PUT is
// treated as "no option class".
func ParseCallPut(s string) CallPut {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL", "C":
		return Call
	case "PUT", "P":
		return Put
	default:
		return ""
	}
}

// RawTrade is a single record as exported by the brokerage, owned by the
// caller. Field names mirror the broker columns; no invariants are enforced
// here, the Normalizer defaults whatever is missing or malformed.
type RawTrade struct {
	AccountNumber    string `json:"Account Number,omitempty"`
	Type             string `json:"Type,omitempty"`
	Transaction      string `json:"Transaction,omitempty"`
	Quantity         string `json:"Quantity,omitempty"`
	Symbol           string `json:"Symbol,omitempty"`
	CallPut          string `json:"CallPut,omitempty"`
	UnderlyingSymbol string `json:"UnderlyingSymbol,omitempty"`
	ExpireDate       string `json:"ExpireDate,omitempty"`
	StrikePrice      string `json:"StrikePrice,omitempty"`
	ActivityDate     string `json:"Activity Date,omitempty"`
	Price            string `json:"Price,omitempty"`
	Amount           string `json:"Amount,omitempty"`
	Commission       string `json:"Commission,omitempty"`
}

// Trade is the canonical trade record produced by Normalize. It is a pure
// value and is never mutated once built; the matcher keeps its own scratch
// bookkeeping.
type Trade struct {
	Symbol       string
	Transaction  TransactionType
	Type         string // security type, free-form
	CallPut      CallPut
	Underlying   string // as supplied by the broker; informational
	ExpireDate   Date
	StrikePrice  Money
	Quantity     Quantity
	Price        Money
	Amount       Money
	Commission   Money
	ActivityDate Date
}

// lotKey is the FIFO queue key: one independent queue per symbol and option
// class, so a CALL never closes against a stock lot of the same symbol.
func (t Trade) lotKey() string {
	if t.CallPut != "" {
		return t.Symbol + "-" + string(t.CallPut)
	}
	return t.Symbol + "-stock"
}
