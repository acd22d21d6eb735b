package tradepnl

import "strings"

// Filter restricts the trade population before matching. Both predicates
// compose with a logical AND; the zero Filter admits everything.
//
// Filters are applied before the matcher on purpose: excluding a Buy by
// date makes it unavailable to match a later Sell, so changing a filter can
// legitimately change which closed trades exist. A filtered report is a
// full re-run of the pipeline, not an adjustment of a cached summary.
type Filter struct {
	Symbol    string // case-insensitive substring match, empty admits all
	Timeframe Timeframe
	Now       Date // reference date for the timeframe cutoff; zero means today
}

// Apply returns the trades admitted by the filter, preserving order.
func (f Filter) Apply(trades []Trade) []Trade {
	now := f.Now
	if now.IsZero() {
		now = Today()
	}
	cutoff := f.Timeframe.Cutoff(now)
	needle := strings.ToLower(strings.TrimSpace(f.Symbol))

	kept := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if needle != "" && !strings.Contains(strings.ToLower(t.Symbol), needle) {
			continue
		}
		if !cutoff.IsZero() && t.ActivityDate.Before(cutoff) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
