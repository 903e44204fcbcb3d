// Package data contains sample containers which feed plots and scales.
package data

import (
	"time"

	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// Time series

// Sample is one observation of a time series.
type Sample struct {
	T time.Time
	V float64
}

// TimeSeries is a sequence of samples. As a plotter.XYer its x values are
// seconds since the Unix epoch, which is what plot.UTCUnixTime and the
// default axis.TimeTicks expect.
type TimeSeries []Sample

var _ plotter.XYer = TimeSeries(nil)

func (ts TimeSeries) Len() int { return len(ts) }

// XY returns the Unix time in seconds and the value of sample i.
func (ts TimeSeries) XY(i int) (x, y float64) {
	return UnixSeconds(ts[i].T), ts[i].V
}

// Span returns the earliest and the latest time stamp of ts. Both are
// zero if ts is empty.
func (ts TimeSeries) Span() (first, last time.Time) {
	for i, s := range ts {
		if i == 0 || s.T.Before(first) {
			first = s.T
		}
		if i == 0 || s.T.After(last) {
			last = s.T
		}
	}
	return first, last
}

// UnixSeconds returns t as fractional seconds since the Unix epoch. It is
// the inverse of plot.UTCUnixTime up to float64 precision.
func UnixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
