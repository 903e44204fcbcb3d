package axis

import (
	"math"
	"time"

	"github.com/vdobler/axis/timescale"
	"gonum.org/v1/plot"
)

// DefaultMaxTicks is the number of ticks used by a ticker with zero MaxTicks.
const DefaultMaxTicks = 5

// ValueTicks is a plot.Ticker producing nice numeric ticks with AutoAxis.
type ValueTicks struct {
	// MaxTicks is the maximum number of ticks, DefaultMaxTicks if 0.
	MaxTicks int

	// MinIncrement is the smallest allowed distance between ticks.
	MinIncrement float64
}

var _ plot.Ticker = ValueTicks{}

// Ticks implements plot.Ticker. If no nice increment exists it falls
// back to plot.DefaultTicks.
func (t ValueTicks) Ticks(min, max float64) []plot.Tick {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	n := t.MaxTicks
	if n <= 0 {
		n = DefaultMaxTicks
	}
	inc := t.MinIncrement
	if inc <= 0 {
		inc = math.SmallestNonzeroFloat64
	}

	axis := AutoAxisMinIncrement(min, max, n, inc)
	if math.IsNaN(axis.Increment) {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	ticks := make([]plot.Tick, len(axis.Values))
	for i := range ticks {
		ticks[i] = plot.Tick{Value: axis.Values[i], Label: axis.Labels[i]}
	}
	return ticks
}

// TimeTicks is a plot.Ticker for time axes. References are placed on
// calendar boundaries and labeled with the trimmed labels of package
// timescale.
type TimeTicks struct {
	// MaxTicks is the maximum number of ticks, DefaultMaxTicks if 0.
	MaxTicks int

	// Time converts a data value to a time. If nil plot.UTCUnixTime
	// is used.
	Time func(float64) time.Time
}

var _ plot.Ticker = TimeTicks{}

// Ticks implements plot.Ticker.
func (t TimeTicks) Ticks(min, max float64) []plot.Tick {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	n := t.MaxTicks
	if n <= 0 {
		n = DefaultMaxTicks
	}
	toTime := t.Time
	if toTime == nil {
		toTime = plot.UTCUnixTime
	}

	interval := timescale.TimeInterval{Start: toTime(min), End: toTime(max)}
	axis := timescale.CreateTimeAxis(interval, n)
	ticks := make([]plot.Tick, len(axis.Times))
	for i := range ticks {
		ticks[i] = plot.Tick{
			Value: min + (max-min)*axis.Values[i],
			Label: axis.Labels[i],
		}
	}
	return ticks
}
