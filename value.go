package axis

import (
	"fmt"
	"math"
	"strconv"
)

// ----------------------------------------------------------------------------
// ValueAxis

// A ValueAxis is a numeric axis with "nice" ticks: all ticks are multiples
// of an increment of the form {1,2,5}·10^k.
type ValueAxis struct {
	Min, Max float64

	// Increment is the distance between two ticks. It is NaN if no nice
	// increment yields at most the requested number of ticks; Values and
	// Labels are empty then.
	Increment float64

	Values []float64 // Values of the ticks, ascending.
	Labels []string  // Labels of the ticks, same order as Values.
}

// AutoAxis returns an axis over [min, max] with at most maxTicks ticks.
// It panics if min or max is not finite, if min >= max or if maxTicks
// is not positive.
func AutoAxis(min, max float64, maxTicks int) ValueAxis {
	return AutoAxisMinIncrement(min, max, maxTicks, math.SmallestNonzeroFloat64)
}

// AutoAxisMinIncrement is like AutoAxis but never uses an increment
// smaller than minIncrement.
func AutoAxisMinIncrement(min, max float64, maxTicks int, minIncrement float64) ValueAxis {
	switch {
	case math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0):
		panic(fmt.Sprintf("axis: non-finite range [%g,%g]", min, max))
	case min >= max:
		panic(fmt.Sprintf("axis: empty range [%g,%g]", min, max))
	case maxTicks <= 0:
		panic(fmt.Sprintf("axis: %d ticks requested", maxTicks))
	}

	axis := ValueAxis{
		Min:       min,
		Max:       max,
		Increment: IncrementForRange(min, max, maxTicks, minIncrement),
	}
	if math.IsNaN(axis.Increment) {
		debugf("no increment for [%g,%g] with %d ticks", min, max, maxTicks)
		return axis
	}

	axis.Values = CreateTicks(min, max, axis.Increment)
	format := tickFormat(orderOfMagnitude2(min, max), orderOfMagnitude(axis.Increment))
	axis.Labels = make([]string, len(axis.Values))
	for i, v := range axis.Values {
		axis.Labels[i] = format(v)
	}
	return axis
}

// tickFormat returns the label function for a range and increment of the
// given orders of magnitude. Ranges within [1e-3, 1e4) are shown in fixed
// point notation with just enough fraction digits for the increment, small
// ranges in exponential notation. Large ranges use up to three fraction
// digits.
func tickFormat(rangeOrder, incrementOrder int) func(float64) string {
	switch {
	case rangeOrder >= -3 && rangeOrder <= 3:
		digits := 0
		if incrementOrder < 0 {
			digits = -incrementOrder
		}
		return fixedFormat(digits)
	case rangeOrder < -3:
		digits := rangeOrder - incrementOrder
		if digits < 0 {
			digits = 0
		}
		mantissa := fixedFormat(digits)
		normalization := math.Pow10(rangeOrder)
		exponent := "e" + strconv.Itoa(rangeOrder)
		return func(x float64) string {
			return mantissa(x/normalization) + exponent
		}
	}
	return defaultFormat
}

// defaultFormat shows up to three fraction digits.
func defaultFormat(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// orderOfMagnitude returns k with 10^k <= x < 10^(k+1). math.Log10 is off
// by one ulp for some powers of ten, so the estimate is corrected.
func orderOfMagnitude(x float64) int {
	k := int(math.Floor(math.Log10(x)))
	if math.Pow10(k+1) <= x {
		k++
	} else if math.Pow10(k) > x {
		k--
	}
	return k
}

func orderOfMagnitude2(min, max float64) int {
	return orderOfMagnitude(math.Max(math.Abs(min), math.Abs(max)))
}

// IncrementForRange returns the largest nice increment which yields at
// most maxTicks ticks in [min, max] and is not smaller than minIncrement.
// It returns NaN if there is no such increment.
func IncrementForRange(min, max float64, maxTicks int, minIncrement float64) float64 {
	magnitude := math.Pow10(orderOfMagnitude2(min, max))
	if magnitude < minIncrement {
		return math.NaN()
	}

	ticks := CountTicks(min, max, magnitude)
	if ticks > maxTicks {
		// Too many ticks already, try coarser increments.
		if ticks/2 < maxTicks {
			if n := CountTicks(min, max, magnitude*5); n > 2 && n <= maxTicks {
				return magnitude * 5
			}
		}
		if ticks/5 < maxTicks {
			if n := CountTicks(min, max, magnitude*2); n > 2 && n <= maxTicks {
				return magnitude * 2
			}
		}
		return math.NaN()
	}

	// Refine while halving still fits.
	increment := magnitude
	for CountTicks(min, max, increment/2) <= maxTicks {
		switch {
		case increment/10 >= minIncrement && CountTicks(min, max, increment/10) <= maxTicks:
			increment /= 10
		case increment/5 >= minIncrement && CountTicks(min, max, increment/5) <= maxTicks:
			return increment / 5
		case increment/2 >= minIncrement:
			return increment / 2
		default:
			return increment
		}
	}
	return increment
}

// CountTicks returns the number of multiples of increment in [min, max].
func CountTicks(min, max, increment float64) int {
	start := int(math.Ceil(min / increment))
	end := int(math.Floor(max / increment))
	return end - start + 1
}

// CreateTicks returns the multiples of increment in [min, max].
func CreateTicks(min, max, increment float64) []float64 {
	start := int(math.Ceil(min / increment))
	end := int(math.Floor(max / increment))
	if end < start {
		return nil
	}
	ticks := make([]float64, end-start+1)
	for i := range ticks {
		ticks[i] = float64(i+start) * increment
	}
	return ticks
}
