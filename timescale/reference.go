package timescale

import (
	"iter"
	"slices"
	"time"
)

// ----------------------------------------------------------------------------
// TimeInterval

// TimeInterval is the closed interval [Start, End].
type TimeInterval struct {
	Start, End time.Time
}

// Contains reports whether t lies in i, both ends included.
func (i TimeInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Empty reports whether i contains no instant at all.
func (i TimeInterval) Empty() bool {
	return i.End.Before(i.Start)
}

// Duration returns the length of i. Like time.Duration it saturates for
// intervals longer than about 292 years.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Normalize maps t linearly to [0,1] where 0 is the start and 1 the end
// of interval. Intervals longer than about 292 years are not supported.
func Normalize(t time.Time, interval TimeInterval) float64 {
	span := float64(interval.Duration().Nanoseconds())
	if span == 0 {
		return 0
	}
	return float64(t.Sub(interval.Start).Nanoseconds()) / span
}

// ----------------------------------------------------------------------------
// References

// CreateReferences returns the instants aligned to period which fall into
// interval, in ascending order. The first candidate is the start of the
// interval rounded down to a period boundary. The sequence is lazy and
// may be iterated several times. It is empty if period has an amount
// below one or interval is empty.
func CreateReferences(interval TimeInterval, period TimePeriod) iter.Seq[time.Time] {
	g := period.Granularity.mustValid()
	n := int(period.Amount)
	return func(yield func(time.Time) bool) {
		if n <= 0 || interval.Empty() {
			return
		}
		loc := interval.Start.Location()
		cal := FieldsOf(interval.Start).Truncate(g).Align(g, n)
		cur := cal.Time(loc)
		for !cur.After(interval.End) {
			if interval.Contains(cur) && !yield(cur) {
				return
			}
			var next time.Time
			cal, next = step(cal, cur, g, n)
			if !next.After(cur) {
				debugf("references stalled at %v stepping %v", cur, period)
				return
			}
			cur = next
		}
	}
}

var unitDurations = [...]time.Duration{
	Nanosecond:  time.Nanosecond,
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
}

// step advances cur, whose fields are cal, by n units of g. Units up to
// an hour have a fixed length and move the instant, so steps across a
// daylight saving change stay evenly spaced. Days and coarser units move
// the calendar fields.
func step(cal CalendarFields, cur time.Time, g Granularity, n int) (CalendarFields, time.Time) {
	if g <= Hour {
		next := cur.Add(time.Duration(n) * unitDurations[g])
		return FieldsOf(next), next
	}
	cal = cal.Add(g, n)
	return cal, cal.Time(cur.Location())
}

// References collects CreateReferences into a slice.
func References(interval TimeInterval, period TimePeriod) []time.Time {
	return slices.Collect(CreateReferences(interval, period))
}
