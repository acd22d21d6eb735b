package cmd

import (
	"flag"
	"fmt"

	"github.com/openlot/tradepnl"
)

// reportFlags holds the filtering flags shared by every report subcommand.
type reportFlags struct {
	symbol    string
	timeframe string
}

func (r *reportFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.symbol, "symbol", "", "Restrict the report to symbols containing this text")
	f.StringVar(&r.timeframe, "timeframe", "all", "Rolling window to report on (all, week, month, quarter)")
}

// filter builds the trade filter from the parsed flags.
func (r *reportFlags) filter() (tradepnl.Filter, error) {
	tf, err := tradepnl.ParseTimeframe(r.timeframe)
	if err != nil {
		return tradepnl.Filter{}, fmt.Errorf("invalid -timeframe: %w", err)
	}
	return tradepnl.Filter{Symbol: r.symbol, Timeframe: tf}, nil
}
