// Package axis computes ticks and labels for the axes of 2D plots.
//
// Numeric axes
//
// AutoAxis places ticks on multiples of a nice increment of the form
// {1,2,5}·10^k and labels them with just enough fraction digits:
//
//	AutoAxis(0, 10, 21).Labels  // "0.0", "0.5", ..., "10.0"
//
// Time axes
//
// Time axes are handled by package timescale which aligns ticks on
// calendar boundaries and trims the labels to what changes from tick to
// tick. TimeTicks and ValueTicks adapt both to gonum.org/v1/plot as
// plot.Ticker.
//
// Scales
//
// A Scale tracks the data range of one axis, autoscales it and selects
// a ticker matching its ScaleType. Transformations map a scale range onto
// the drawing area.
package axis
