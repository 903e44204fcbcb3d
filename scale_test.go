package axis

import (
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalEqual(t *testing.T) {
	i := Interval{nan, 3}
	if i.Equal(Interval{nan, nan}) {
		t.Errorf("%v equals %v", i, Interval{nan, nan})
	}
	if !i.Equal(Interval{nan, 3}) {
		t.Errorf("%v does not equal itself", i)
	}
}

var scaleMapTests = []struct {
	st       ScaleType
	min, max float64
	x, want  float64
}{
	{Linear, 0, 10, 5, 0.5},
	{Linear, 0, 10, -5, -0.5},
	{Time, 0, 3600, 900, 0.25},
	{Logarithmic, 1, 100, 10, 0.5},
	{Logarithmic, 1, 100, 1000, 1.5},
}

func TestScaleMap(t *testing.T) {
	for i, tc := range scaleMapTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewScale()
			s.ScaleType = tc.st
			s.Min, s.Max = tc.min, tc.max
			if got := s.Map(tc.x); !equal64(got, tc.want) {
				t.Errorf("%s.Map(%g) = %g, want %g", s, tc.x, got, tc.want)
			}
		})
	}

	s := NewScale()
	if got := s.Map(1); !math.IsNaN(got) {
		t.Errorf("unset scale mapped 1 to %g", got)
	}
}

func TestScaleAutoscale(t *testing.T) {
	s := NewScale()
	s.UpdateData(Interval{0, 10})
	s.Autoscale()
	if !s.Interval.Equal(Interval{-0.5, 10.5}) {
		t.Errorf("got %s, want range [-0.5:10.5]", s)
	}

	s.FixMin(0)
	s.MaxRange = Interval{nan, 10.2}
	s.Autoscale()
	if !s.Interval.Equal(Interval{0, 10.2}) {
		t.Errorf("got %s, want range [0:10.2]", s)
	}

	log := NewScale()
	log.ScaleType = Logarithmic
	log.UpdateData(Interval{1, 100})
	log.Autoscale()
	if !(log.Min < 1 && log.Max > 100) || !log.InRange(1) || !log.InRange(100) {
		t.Errorf("got %s, want range enclosing [1:100]", log)
	}
	if got, want := log.Map(10), 0.5; !equal64(got, want) {
		t.Errorf("log.Map(10) = %g, want %g", got, want)
	}
}

func tickLabels(ticks []plot.Tick) []string {
	var labels []string
	for _, t := range ticks {
		if t.Label != "" {
			labels = append(labels, t.Label)
		}
	}
	return labels
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var scaleTicksTests = []struct {
	st       ScaleType
	min, max float64
	want     []string
}{
	{Linear, 0, 10, []string{"0", "5", "10"}},
	{Time, 0, 3600, []string{"1970/01/01 00:00", "00:15", "00:30", "00:45", "01:00"}},
}

func TestScaleTicks(t *testing.T) {
	for i, tc := range scaleTicksTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewScale()
			s.ScaleType = tc.st
			s.UpdateData(Interval{tc.min, tc.max})
			s.FixMin(tc.min)
			s.FixMax(tc.max)
			if got := tickLabels(s.Ticks()); !equalStrings(got, tc.want) {
				t.Errorf("%s: got labels %q, want %q", s, got, tc.want)
			}
		})
	}

	if ticks := NewScale().Ticks(); ticks != nil {
		t.Errorf("scale without data has ticks %v", ticks)
	}
}

func TestScaleCustomTicker(t *testing.T) {
	s := NewScale()
	s.Ticker = plot.ConstantTicks{{Value: 3, Label: "three"}}
	s.UpdateData(Interval{0, 10})
	if got := tickLabels(s.Ticks()); !equalStrings(got, []string{"three"}) {
		t.Errorf("got labels %q", got)
	}
}

func TestScaleUpdateXY(t *testing.T) {
	xys := plotter.XYs{{X: 3, Y: -2}, {X: 1, Y: 4}, {X: 2, Y: 0}}

	x, y := NewScale(), NewScale()
	x.UpdateX(xys)
	y.UpdateY(xys)
	if !x.Data.Equal(Interval{1, 3}) {
		t.Errorf("x data = %v, want [1:3]", x.Data)
	}
	if !y.Data.Equal(Interval{-2, 4}) {
		t.Errorf("y data = %v, want [-2:4]", y.Data)
	}

	x.UpdateX(plotter.XYs{{X: 7, Y: 0}})
	if !x.Data.Equal(Interval{1, 7}) {
		t.Errorf("x data = %v, want [1:7]", x.Data)
	}

	empty := NewScale()
	empty.UpdateX(plotter.XYs{})
	if empty.HasData() {
		t.Errorf("empty XYs gave data %v", empty.Data)
	}
}
