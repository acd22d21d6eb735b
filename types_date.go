package tradepnl

import (
	"encoding/json"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// readDateFormats are the accepted input formats, tried in order. Brokerage
// exports commonly carry US-style dates, so both are supported on read.
var readDateFormats = []string{
	"2006-1-2", // permissive ISO (allows single-digit month/day)
	"1/2/2006", // US brokerage style
	time.RFC3339,
}

// Date represents a date with day-level granularity.
//
// The zero Date is the "invalid date" sentinel: an unparsable activity date
// normalizes to it instead of being rejected.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601, or "Invalid Date" for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return "Invalid Date"
	}
	return d.time().Format(DateFormat)
}

// IsZero returns true if the date is the invalid-date sentinel.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
func (d Date) Format(format string) string { return d.time().Format(format) }

// MonthKey returns the "YYYY-MM" grouping key for the date. Lexicographic
// order of month keys is chronological order.
func (d Date) MonthKey() string { return d.time().Format("2006-01") }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 when d is before, equal to, or after x.
// The zero Date sorts before every valid date.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// ParseDate parses a Date from a string. It is lenient and accepts both
// "2025-7-1" and "7/1/2025".
func ParseDate(str string) (Date, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, false
	}
	for _, format := range readDateFormats {
		if on, err := time.Parse(format, str); err == nil {
			return NewDate(on.Date()), true
		}
	}
	return Date{}, false
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Date. An
// unparsable date decodes to the invalid-date sentinel, it is not an error.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	*d, _ = ParseDate(str)
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
