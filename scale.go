package axis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is the data range shown along one axis of a plot together with the
// Ticker which decorates it.
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the range of this scale. It may be larger or
	// smaller than the actual Data range.
	Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Autoscaling can be used to control autoscaling of this scale.
	Autoscaling

	// Ticker is responsible for generating the ticks. If nil a ticker
	// suitable for ScaleType is used.
	Ticker plot.Ticker

	// MaxTicks limits the number of ticks of the default tickers.
	MaxTicks int

	// Time converts values of a Time scale to instants. If nil the
	// values are taken as seconds since the Unix epoch in UTC.
	Time func(float64) time.Time
}

// NewScale returns a new linear scale which autoscales to the actual data.
func NewScale() *Scale {
	s := &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	s.Autoscaling.Expand.Releative = 0.05

	return s
}

// Map maps the intervall [s.Min, s.Max] to [0, 1].
// Values outside of [s.Min, s.Max] are mapped to values < 0 or > 1.
// If s's Intervall is degenerate or unset Map returns NaN.
func (s *Scale) Map(x float64) float64 {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return math.NaN()
	}

	switch s.ScaleType {
	case Linear, Time:
		return (x - s.Min) / (s.Max - s.Min)
	case Logarithmic:
		min, max := math.Log10(s.Min), math.Log10(s.Max)
		return (math.Log10(x) - min) / (max - min)
	default:
		panic(s.ScaleType)
	}
}

// UpdateData updates s to cover i.
func (s *Scale) UpdateData(i Interval) {
	s.Data.Update(i.Min)
	s.Data.Update(i.Max)
}

// UpdateX updates s to cover the x values of xys.
func (s *Scale) UpdateX(xys plotter.XYer) {
	if xys.Len() == 0 {
		return
	}
	xmin, xmax, _, _ := plotter.XYRange(xys)
	s.UpdateData(Interval{xmin, xmax})
}

// UpdateY updates s to cover the y values of xys.
func (s *Scale) UpdateY(xys plotter.XYer) {
	if xys.Len() == 0 {
		return
	}
	_, _, ymin, ymax := plotter.XYRange(xys)
	s.UpdateData(Interval{ymin, ymax})
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data intervall of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the the range of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType, s.Title)
}

// Ticks autoscales s and returns the ticks of its range.
func (s *Scale) Ticks() []plot.Tick {
	s.Autoscale()
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return nil
	}
	return s.ticker().Ticks(s.Min, s.Max)
}

func (s *Scale) ticker() plot.Ticker {
	if s.Ticker != nil {
		return s.Ticker
	}
	switch s.ScaleType {
	case Linear:
		return ValueTicks{MaxTicks: s.MaxTicks}
	case Time:
		return TimeTicks{MaxTicks: s.MaxTicks, Time: s.Time}
	case Logarithmic:
		return plot.LogTicks{}
	default:
		panic(s.ScaleType)
	}
}

// Autoscale turns the data range into an actual scale range.
func (s *Scale) Autoscale() {
	if !s.HasData() {
		return
	}

	ext := s.Expand.Releative*(s.Data.Max-s.Data.Min) + s.Expand.Absolut
	if s.ScaleType == Logarithmic {
		ext = s.Expand.Releative * math.Log10(s.Data.Max/s.Data.Min)
	}

	// Determine the left edge of s.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRangeIntervall and non NaN:
		// The user has set a fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = s.Data.Min

		// Apply expansion.
		switch s.ScaleType {
		case Linear, Time:
			s.Min -= ext
		case Logarithmic:
			s.Min /= math.Pow(10, ext)
		default:
			panic(s.ScaleType)
		}

		// Clip autoscaling
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Determine the right edge of s.
	if s.MaxRange.Min == s.MaxRange.Max {
		// Degenerate MaxRangeIntervall and non NaN:
		// The user has set a fixed Max.
		s.Max = s.MaxRange.Min
	} else {
		s.Max = s.Data.Max

		// Apply expansion.
		switch s.ScaleType {
		case Linear, Time:
			s.Max += ext
		case Logarithmic:
			s.Max *= math.Pow(10, ext)
		default:
			panic(s.ScaleType)
		}

		// Clip autoscaling
		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges; unset edges are
// equal to each other.
func (i *Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful know scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "time", "log"}[int(st)]
}

const (
	Linear ScaleType = iota
	Time
	Logarithmic
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn of autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expandend.
	// Logarithmic scales expand relative to the decades covered and
	// ignore Absolut.
	Expand struct {
		Absolut   float64
		Releative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
