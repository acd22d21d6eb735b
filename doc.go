// Package tradepnl derives realized profit and loss from a list of
// brokerage trade records.
//
// The package is a single deterministic pipeline:
//
//   - Normalize coerces raw broker records into canonical, immutable Trades.
//   - Filter optionally restricts the population by symbol substring and
//     activity-date timeframe before any matching happens.
//   - Match pairs Sell transactions against open Buy lots, first-in
//     first-out, independently per (symbol, option class) key, and emits
//     one ClosedTrade per full or partial match.
//   - The aggregation functions fold the closed trades into reporting
//     views: totals, win rate, top symbols, P/L by security type, by
//     month, by options underlying and by call/put class.
//   - NewSummary runs the whole pipeline and packages the result.
//
// Every run is an isolated unit of work: lot queues are built from
// scratch and discarded, no state survives between invocations, and the
// same input sequence always produces the same Summary. Malformed input
// fields degrade to defaults instead of failing; the only diagnostic the
// matcher produces is the list of sells that found no lot to close.
//
// This package is the foundational logic for the `plr` command-line
// tool, which feeds it records from a JSONL file and renders the
// resulting Summary as markdown.
package tradepnl
