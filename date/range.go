package date

import "fmt"

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range from 'from' to 'to'.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Window returns the range of 'days' consecutive days starting on 'from'.
//
// A window of zero or fewer days is empty: it contains no date.
func Window(from Date, days int) Range {
	return Range{From: from, To: from.Add(days - 1)}
}

// IsEmpty reports whether the range contains no date at all.
func (r Range) IsEmpty() bool { return r.To.Before(r.From) }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// String renders the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
