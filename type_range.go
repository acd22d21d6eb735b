package tradepnl

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsZero returns true when no valid date contributed to the range.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// dateRange computes the earliest and latest activity date across trades,
// skipping invalid dates.
func dateRange(trades []Trade) Range {
	var r Range
	for _, t := range trades {
		if t.ActivityDate.IsZero() {
			continue
		}
		if r.From.IsZero() || t.ActivityDate.Before(r.From) {
			r.From = t.ActivityDate
		}
		if r.To.IsZero() || t.ActivityDate.After(r.To) {
			r.To = t.ActivityDate
		}
	}
	return r
}
