package date

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to]. If to is before from, the range is empty.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether the range includes the given day.
func (r Range) Contains(on Date) bool { return !on.Before(r.From) && !on.After(r.To) }

// Days returns the number of calendar days in the range, inclusive.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// Years returns the length of the range in fractional years (365.25-day years).
func (r Range) Years() float64 { return float64(r.To.Sub(r.From)) / 365.25 }

// All returns an iterator over every day in the range, in chronological order.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}
