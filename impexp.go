package tradepnl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultRecordsPath locates the rows array in Schwab-style JSON exports,
// which nest the transactions under a top-level property.
const DefaultRecordsPath = "$.BrokerageTransactions[*]"

// ImportJSON reads a nested broker JSON export and extracts the trade rows
// found at the given jsonpath (DefaultRecordsPath when empty). Each row must
// be a JSON object; its properties are mapped onto RawTrade by column name.
//
// This is the bridge for exports that are not already line-oriented: the
// result feeds the same Normalize pipeline as JSONL input.
func ImportJSON(r io.Reader, path string) ([]RawTrade, error) {
	if path == "" {
		path = DefaultRecordsPath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse broker export: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot find trade records at %q: %w", path, err)
	}

	// jsonpath is never clear about whether it returns a list of answers or
	// a single one: normalize to a list.
	rows, ok := jval.([]any)
	if !ok {
		rows = []any{jval}
	}

	records := make([]RawTrade, 0, len(rows))
	for i, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d at %q is not an object: %T", i, path, row)
		}
		records = append(records, rawTradeFromRow(obj))
	}
	return records, nil
}
