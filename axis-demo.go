//go:build ignore

package main

import (
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/vdobler/axis"
	"github.com/vdobler/axis/data"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var series data.TimeSeries

func init() {
	t := time.Date(2014, 11, 26, 9, 37, 0, 0, time.UTC)
	v := 20.0
	series = make(data.TimeSeries, 200)
	for i := range series {
		series[i] = data.Sample{T: t, V: v}
		t = t.Add(7 * time.Minute)
		v += rand.NormFloat64()
	}
}

func main() {
	numeric()
	timed()
}

// numeric plots a damped sine with nice value ticks on both axes.
func numeric() {
	xy := make(plotter.XYs, 100)
	for i := range xy {
		x := float64(i) / 7
		xy[i].X, xy[i].Y = x, math.Exp(-x/5)*math.Sin(x)
	}

	p := plot.New()
	p.Title.Text = "Numeric axis"
	p.X.Tick.Marker = axis.ValueTicks{MaxTicks: 8}
	p.Y.Tick.Marker = axis.ValueTicks{MaxTicks: 6}
	line, err := plotter.NewLine(xy)
	if err != nil {
		panic(err)
	}
	p.Add(line, plotter.NewGrid())
	render(p, "testdata/axis-numeric.png")
}

// timed plots series on a time scale which autoscales and picks the
// calendar aligned TimeTicks.
func timed() {
	x := axis.NewScale()
	x.ScaleType = axis.Time
	x.MaxTicks = 6
	x.UpdateX(series)
	x.Autoscale()
	y := axis.NewScale()
	y.UpdateY(series)
	y.Autoscale()

	p := plot.New()
	p.Title.Text = "Time axis"
	p.X.Min, p.X.Max = x.Min, x.Max
	p.X.Tick.Marker = plot.ConstantTicks(x.Ticks())
	p.Y.Min, p.Y.Max = y.Min, y.Max
	p.Y.Tick.Marker = plot.ConstantTicks(y.Ticks())
	line, err := plotter.NewLine(series)
	if err != nil {
		panic(err)
	}
	p.Add(line, plotter.NewGrid())
	render(p, "testdata/axis-time.png")
}

func render(p *plot.Plot, name string) {
	img := vgimg.New(8*vg.Inch, 5*vg.Inch)
	p.Draw(draw.New(img))
	write(img, name)
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
