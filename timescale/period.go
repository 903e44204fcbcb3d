package timescale

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ----------------------------------------------------------------------------
// Granularity

// Granularity is a calendar field size used as the unit of a TimePeriod.
// Granularities are ordered from finest (Nanosecond) to coarsest (Year).
type Granularity int

const (
	Nanosecond Granularity = iota
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
	numGranularities
)

var granularityNames = [numGranularities]string{
	"nanosecond", "millisecond", "second", "minute", "hour",
	"day", "week", "month", "year",
}

// String returns the lower case name of g.
func (g Granularity) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// Valid reports whether g is one of the defined granularities.
func (g Granularity) Valid() bool {
	return g >= Nanosecond && g < numGranularities
}

// Seconds returns the nominal length of one unit of g in seconds.
// Months and years use the fixed lengths of 35 and 420 days which are
// only meant for classification, never for calendar arithmetic.
func (g Granularity) Seconds() float64 {
	return unitSeconds[g.mustValid()]
}

func (g Granularity) mustValid() Granularity {
	if !g.Valid() {
		panic(fmt.Sprintf("timescale: undefined granularity %d", int(g)))
	}
	return g
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
	secondsPerMonth  = 3024000
	secondsPerYear   = 36288000
)

var unitSeconds = [numGranularities]float64{
	1e-9, 1e-3, 1, secondsPerMinute, secondsPerHour,
	secondsPerDay, secondsPerWeek, secondsPerMonth, secondsPerYear,
}

// niceAmounts lists, per granularity, the multipliers which produce
// human friendly periods. Year has no table, see yearStep.
var niceAmounts = [numGranularities][]float64{
	Nanosecond: {1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000,
		10000, 20000, 50000, 100000, 200000, 500000},
	Millisecond: {1, 2, 5, 10, 20, 50, 100, 200, 500},
	Second:      {1, 2, 5, 10, 15, 30},
	Minute:      {1, 2, 5, 10, 15, 30},
	Hour:        {1, 2, 3, 6, 12, 24},
	Day:         {1, 2, 4},
	Week:        {1, 2},
	Month:       {1, 2, 4, 8},
}

// ----------------------------------------------------------------------------
// TimePeriod

// A TimePeriod is a step of Amount units of Granularity.
type TimePeriod struct {
	Granularity Granularity
	Amount      float64
}

func (p TimePeriod) String() string {
	return humanize.Ftoa(p.Amount) + " " + p.Granularity.String()
}

// Seconds returns the nominal length of p in seconds.
func (p TimePeriod) Seconds() float64 {
	return p.Amount * p.Granularity.Seconds()
}

// ToTimePeriod classifies a duration given in seconds into the coarsest
// granularity of which at least one unit fits. The amount of a Year period
// is counted in months of 3024000 seconds.
func ToTimePeriod(seconds float64) TimePeriod {
	switch {
	case seconds >= secondsPerYear:
		return TimePeriod{Year, seconds / secondsPerMonth}
	case seconds >= secondsPerMonth:
		return TimePeriod{Month, seconds / secondsPerMonth}
	case seconds >= secondsPerWeek:
		return TimePeriod{Week, seconds / secondsPerWeek}
	case seconds >= secondsPerDay:
		return TimePeriod{Day, seconds / secondsPerDay}
	case seconds >= secondsPerHour:
		return TimePeriod{Hour, seconds / secondsPerHour}
	case seconds >= secondsPerMinute:
		return TimePeriod{Minute, seconds / secondsPerMinute}
	case seconds >= 1:
		return TimePeriod{Second, seconds}
	}
	return TimePeriod{Millisecond, 1000 * seconds}
}

// yearStep shrinks the number of year ticks roughly fourfold.
func yearStep(amount float64) float64 {
	return amount/4 + 1
}

// StepUp returns the next nice period which is strictly coarser than p.
func StepUp(p TimePeriod) TimePeriod {
	g := p.Granularity.mustValid()
	if g == Year {
		return TimePeriod{Year, yearStep(p.Amount)}
	}
	for _, n := range niceAmounts[g] {
		if p.Amount < n {
			return TimePeriod{g, n}
		}
	}
	return TimePeriod{g + 1, 1}
}

// StepDown returns the next nice period which is strictly finer than p.
// Stepping down bottoms out at one millisecond (or one nanosecond if p
// already is a nanosecond period).
func StepDown(p TimePeriod) TimePeriod {
	g := p.Granularity.mustValid()
	if g == Year {
		if next := yearStep(p.Amount); next < p.Amount {
			return TimePeriod{Year, next}
		}
		if p.Amount > 1 {
			return TimePeriod{Year, 1}
		}
		return TimePeriod{Month, largestBelow(Month, Year.Seconds())}
	}

	table := niceAmounts[g]
	for i := len(table) - 1; i >= 0; i-- {
		if table[i] < p.Amount {
			return TimePeriod{g, table[i]}
		}
	}
	if g == Nanosecond || g == Millisecond {
		return TimePeriod{g, 1}
	}
	return TimePeriod{g - 1, largestBelow(g-1, g.Seconds())}
}

// largestBelow returns the largest nice amount of g spanning strictly
// less than limit seconds.
func largestBelow(g Granularity, limit float64) float64 {
	table := niceAmounts[g]
	for i := len(table) - 1; i >= 0; i-- {
		if table[i]*g.Seconds() < limit {
			return table[i]
		}
	}
	return 1
}
