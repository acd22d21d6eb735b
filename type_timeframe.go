package tradepnl

import (
	"fmt"
	"strings"
)

// Timeframe restricts a report to trades whose activity date falls within a
// rolling window ending today.
type Timeframe int

const (
	All Timeframe = iota
	Week
	Month
	Quarter
)

func (t Timeframe) String() string {
	switch t {
	case All:
		return "all"
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	default:
		return "all"
	}
}

// Cutoff returns the earliest activity date admitted by the timeframe,
// relative to now. For All it returns the zero Date, which admits everything.
func (t Timeframe) Cutoff(now Date) Date {
	switch t {
	case Week:
		return now.Add(-7)
	case Month:
		return now.AddMonth(-1)
	case Quarter:
		return now.AddMonth(-3)
	default:
		return Date{}
	}
}

// ParseTimeframe parses a string into a Timeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "quarter", "quarterly":
		return Quarter, nil
	default:
		return All, fmt.Errorf("unknown timeframe %q", s)
	}
}
