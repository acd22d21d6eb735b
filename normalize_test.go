package tradepnl

import "testing"

func TestNormalize_Defaults(t *testing.T) {
	trades := Normalize([]RawTrade{{}})
	if len(trades) != 1 {
		t.Fatalf("Normalize() = %d trades, want 1", len(trades))
	}
	got := trades[0]
	if got.Symbol != "Unknown" {
		t.Errorf("Symbol = %q, want Unknown", got.Symbol)
	}
	if got.Type != "Unknown" {
		t.Errorf("Type = %q, want Unknown", got.Type)
	}
	if got.Transaction != UnknownTransaction {
		t.Errorf("Transaction = %q, want %q", got.Transaction, UnknownTransaction)
	}
	if !got.Quantity.IsZero() || !got.Price.IsZero() || !got.Commission.IsZero() {
		t.Errorf("amounts not zeroed: %+v", got)
	}
	if !got.ActivityDate.IsZero() {
		t.Errorf("ActivityDate = %s, want the invalid-date sentinel", got.ActivityDate)
	}
}

func TestNormalize_Coercion(t *testing.T) {
	trades := Normalize([]RawTrade{{
		Symbol:       " AAPL ",
		Type:         "Equities",
		Transaction:  "You Bought",
		Quantity:     "10",
		Price:        "$1,234.56",
		Amount:       "(42)",
		Commission:   "$0.65",
		ActivityDate: "1/15/2025",
	}})
	got := trades[0]
	if got.Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want AAPL", got.Symbol)
	}
	if got.Transaction != Buy {
		t.Errorf("Transaction = %q, want Buy", got.Transaction)
	}
	if !got.Price.Equal(M(1234.56)) {
		t.Errorf("Price = %s, want $1,234.56", got.Price)
	}
	if !got.Amount.Equal(M(-42)) {
		t.Errorf("Amount = %s, want -$42.00", got.Amount)
	}
	if !got.Commission.Equal(M(0.65)) {
		t.Errorf("Commission = %s, want $0.65", got.Commission)
	}
	if got.ActivityDate != jan(15) {
		t.Errorf("ActivityDate = %s, want 2025-01-15", got.ActivityDate)
	}
}

func TestNormalize_OptionFields(t *testing.T) {
	trades := Normalize([]RawTrade{{
		Symbol:           "TSLA240119C200",
		Type:             "Options",
		Transaction:      "Sold",
		CallPut:          "C",
		UnderlyingSymbol: "TSLA",
		ExpireDate:       "2024-1-19",
		StrikePrice:      "200",
		Quantity:         "2",
	}})
	got := trades[0]
	if got.CallPut != Call {
		t.Errorf("CallPut = %q, want CALL", got.CallPut)
	}
	if got.Underlying != "TSLA" {
		t.Errorf("Underlying = %q, want TSLA", got.Underlying)
	}
	if got.ExpireDate != on(2024, 1, 19) {
		t.Errorf("ExpireDate = %s, want 2024-01-19", got.ExpireDate)
	}
	if !got.StrikePrice.Equal(M(200)) {
		t.Errorf("StrikePrice = %s, want $200.00", got.StrikePrice)
	}
	if got.Transaction != Sell {
		t.Errorf("Transaction = %q, want Sell", got.Transaction)
	}
}

func TestNormalize_KeepsLengthAndOrder(t *testing.T) {
	records := []RawTrade{
		{Symbol: "AAPL", Quantity: "not a number", ActivityDate: "garbage"},
		{Symbol: "GOOG"},
		{},
	}
	trades := Normalize(records)
	if len(trades) != len(records) {
		t.Fatalf("Normalize() = %d trades, want %d", len(trades), len(records))
	}
	if trades[0].Symbol != "AAPL" || trades[1].Symbol != "GOOG" || trades[2].Symbol != "Unknown" {
		t.Errorf("order not preserved: %v, %v, %v", trades[0].Symbol, trades[1].Symbol, trades[2].Symbol)
	}
	if !trades[0].Quantity.IsZero() {
		t.Errorf("malformed quantity = %s, want zero", trades[0].Quantity)
	}
}
