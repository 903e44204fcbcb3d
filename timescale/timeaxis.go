package timescale

import (
	"log"
	"math"
	"time"
)

var debug = false

func debugf(format string, args ...interface{}) {
	if !debug {
		return
	}
	log.Printf("timescale: "+format, args...)
}

// TimeAxis is a time axis ready to be drawn.
type TimeAxis struct {
	Interval TimeInterval
	Period   TimePeriod
	Times    []time.Time // Times are the reference instants.
	Labels   []string    // Labels are the trimmed labels of Times.
	Values   []float64   // Values are the normalized positions of Times in [0,1].
}

// maxPeriodSteps bounds the search for a period; stepping up a millisecond
// period reaches years after less than 40 steps.
const maxPeriodSteps = 64

// CreateTimeAxis chooses the finest nice period which yields at most
// maxTicks references in interval and labels them.
func CreateTimeAxis(interval TimeInterval, maxTicks int) TimeAxis {
	if maxTicks <= 0 {
		panic("timescale: maxTicks must be positive")
	}
	if interval.Empty() {
		panic("timescale: empty time interval")
	}

	period := ToTimePeriod(interval.Duration().Seconds() / float64(maxTicks))
	if period.Granularity == Year {
		// ToTimePeriod counts years in months.
		period.Amount /= 12
	}
	for i := 0; i < maxPeriodSteps; i++ {
		n := countAtMost(interval, period, maxTicks)
		debugf("period %v gives %d references (max %d)", period, n, maxTicks)
		if int(period.Amount) > 0 && n <= maxTicks {
			break
		}
		period = coarser(period)
	}
	period.Amount = math.Floor(period.Amount)

	axis := TimeAxis{
		Interval: interval,
		Period:   period,
		Times:    References(interval, period),
	}
	axis.Labels = TrimLabels(CreateLabels(axis.Times))
	axis.Values = make([]float64, len(axis.Times))
	for i, t := range axis.Times {
		axis.Values[i] = Normalize(t, interval)
	}
	return axis
}

// coarser is StepUp except for years: the year rule of StepUp converges
// to 4/3 and would never reduce the number of references, so years step
// through 1, 2, 5, 10, 20, ...
func coarser(p TimePeriod) TimePeriod {
	if p.Granularity != Year {
		return StepUp(p)
	}
	n := math.Floor(p.Amount)
	for m := 1.0; ; m *= 10 {
		for _, k := range []float64{1, 2, 5} {
			if k*m > n {
				return TimePeriod{Year, k * m}
			}
		}
	}
}

// countAtMost counts the references of period in interval but stops
// counting after limit+1.
func countAtMost(interval TimeInterval, period TimePeriod, limit int) int {
	n := 0
	for range CreateReferences(interval, period) {
		n++
		if n > limit {
			break
		}
	}
	return n
}
