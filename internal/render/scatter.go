package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/plantpulse/downtimer/internal/dataset"
)

// Scatter renders a scatter plot of two numeric columns, restricted to rows
// where both cells hold a value.
func Scatter(t *dataset.Table, xColumn, yColumn, path string) error {
	xs, xv, err := t.Numeric(xColumn)
	if err != nil {
		return err
	}
	ys, yv, err := t.Numeric(yColumn)
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, 0, t.Len())
	for i := range xs {
		if xv[i] && yv[i] {
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", yColumn, xColumn)
	p.X.Label.Text = xColumn
	p.Y.Label.Text = yColumn
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	s.Radius = vg.Points(2)
	p.Add(s)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save scatter %s: %w", path, err)
	}
	return nil
}
