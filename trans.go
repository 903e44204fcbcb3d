// Scale Transformations
//
// Transformations map the range of a scale onto the range of the drawing
// area and back.
package axis

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:    "Identity",
	Trans:   func(from, to Interval, x float64) float64 { return x },
	Inverse: func(from, to Interval, y float64) float64 { return y },
	Ticker:  ValueTicks{},
}

// LinearTrans implements a linear mapping of from to to.
// Inverse maps to back to from.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: ValueTicks{},
}

// TimeTrans maps linearly like LinearTrans but decorates with calendar
// aligned ticks. Values are seconds since the Unix epoch.
var TimeTrans = Transformation{
	Name:    "Time",
	Trans:   LinearTrans.Trans,
	Inverse: LinearTrans.Inverse,
	Ticker:  TimeTicks{},
}

// Log10Trans maps from logarithmically onto to. Both edges of from must
// be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(from.Max/from.Min, t)
	},
	Ticker: plot.LogTicks{},
}

// TransformationFor returns the default transformation of st.
func TransformationFor(st ScaleType) Transformation {
	switch st {
	case Linear:
		return LinearTrans
	case Time:
		return TimeTrans
	case Logarithmic:
		return Log10Trans
	default:
		panic(st)
	}
}
