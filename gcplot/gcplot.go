// Package gcplot plots windowed GC percentage.
package gcplot

import (
	"errors"
	"image/color"
	"io"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	// Width is the width of saved plots.
	Width = 10 * vg.Inch
	// Height is the height of saved plots.
	Height = 4 * vg.Inch
)

// New creates a plot of GC percentage against the window start
// position. A dashed line shows the mean.
func New(values []float64, window int, title string) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, errors.New("no windows to plot")
	}
	if window <= 0 {
		return nil, errors.New("window size must be positive")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (bp)"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i * window)
		pts[i].Y = v
	}
	if err := plotutil.AddLinePoints(p, "GC", pts); err != nil {
		return nil, err
	}

	mean := stat.Mean(values, nil)
	meanXY := plotter.XYs{
		{X: pts[0].X, Y: mean},
		{X: pts[len(pts)-1].X, Y: mean},
	}
	meanLine, err := plotter.NewLine(meanXY)
	if err != nil {
		return nil, err
	}
	meanLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	meanLine.Width = vg.Points(1)
	meanLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(meanLine)
	p.Legend.Add("Mean", meanLine)
	p.Legend.Top = true

	return p, nil
}

// Save saves the plot to a file, the format is chosen by the file
// extension (e.g. svg, png, pdf).
func Save(p *plot.Plot, path string) error {
	return p.Save(Width, Height, path)
}

// WriteSVG writes the plot in SVG format.
func WriteSVG(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(Width, Height, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
