package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/plantpulse/downtimer/internal/analysis"
)

// corrGrid adapts a CorrMatrix to the heat map grid interface. Cells are
// centered on integer coordinates so the annotation labels line up.
type corrGrid struct{ m *analysis.CorrMatrix }

func (g corrGrid) Dims() (c, r int)   { n := g.m.Len(); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// Heatmap renders the correlation matrix as a labeled heat map PNG with a
// diverging palette pinned to [-1, 1]. Coefficients are annotated to two
// decimal places; NaN cells draw gray and are annotated "n/a".
func Heatmap(m *analysis.CorrMatrix, path string) error {
	pal := moreland.SmoothBlueRed()
	pal.SetMin(-1)
	pal.SetMax(1)

	hm := plotter.NewHeatMap(corrGrid{m: m}, pal.Palette(255))
	hm.Min = -1
	hm.Max = 1
	hm.NaN = color.Gray{Y: 0xe0}

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.Add(hm)

	ticks := make([]plot.Tick, m.Len())
	for i, name := range m.Columns {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	labels, err := cellLabels(m)
	if err != nil {
		return fmt.Errorf("heatmap labels: %w", err)
	}
	p.Add(labels)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save heatmap %s: %w", path, err)
	}
	return nil
}

func cellLabels(m *analysis.CorrMatrix) (*plotter.Labels, error) {
	n := m.Len()
	var xy plotter.XYLabels
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xy.XYs = append(xy.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			v := m.At(i, j)
			if math.IsNaN(v) {
				xy.Labels = append(xy.Labels, "n/a")
			} else {
				xy.Labels = append(xy.Labels, fmt.Sprintf("%.2f", v))
			}
		}
	}
	l, err := plotter.NewLabels(xy)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
	}
	return l, nil
}
