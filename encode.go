package tradepnl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeRawTrades reads raw trade records from a stream of JSONL data: one
// JSON object per line, keys named after the broker columns ("Account
// Number", "Transaction", "Activity Date", ...). Values may be JSON strings
// or numbers; both coerce to the RawTrade string fields, since the
// Normalizer owns all typing.
func DecodeRawTrades(r io.Reader) ([]RawTrade, error) {
	var records []RawTrade
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var row map[string]any
		if err := json.Unmarshal(lineBytes, &row); err != nil {
			return nil, fmt.Errorf("cannot parse line for trade record format: %q: %w", string(lineBytes), err)
		}
		records = append(records, rawTradeFromRow(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading trade records: %w", err)
	}
	return records, nil
}

// EncodeRawTrades writes records as JSONL, one object per line, with the
// broker column names. Together with DecodeRawTrades this is the
// import/export format: human readable, single file, easy to diff.
func EncodeRawTrades(w io.Writer, records []RawTrade) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("cannot encode trade record: %w", err)
		}
	}
	return nil
}

// EncodeSummary writes the summary as indented JSON with a stable field order.
func EncodeSummary(w io.Writer, s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode summary: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// rawTradeFromRow maps a decoded JSON object onto a RawTrade by column name.
// Unknown keys are ignored; missing keys stay empty and get defaulted later.
func rawTradeFromRow(row map[string]any) RawTrade {
	return RawTrade{
		AccountNumber:    fieldString(row, "Account Number"),
		Type:             fieldString(row, "Type"),
		Transaction:      fieldString(row, "Transaction"),
		Quantity:         fieldString(row, "Quantity"),
		Symbol:           fieldString(row, "Symbol"),
		CallPut:          fieldString(row, "CallPut"),
		UnderlyingSymbol: fieldString(row, "UnderlyingSymbol"),
		ExpireDate:       fieldString(row, "ExpireDate"),
		StrikePrice:      fieldString(row, "StrikePrice"),
		ActivityDate:     fieldString(row, "Activity Date"),
		Price:            fieldString(row, "Price"),
		Amount:           fieldString(row, "Amount"),
		Commission:       fieldString(row, "Commission"),
	}
}

// fieldString renders a JSON value as the string the Normalizer will coerce.
func fieldString(row map[string]any, key string) string {
	switch v := row[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
