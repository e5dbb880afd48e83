package render

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CountBars renders per-group counts as a bar chart, groups sorted by
// descending count with ties in name order (TopGroups policy).
func CountBars(counts map[string]int, title, path string) error {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] == counts[keys[j]] {
			return keys[i] < keys[j]
		}
		return counts[keys[i]] > counts[keys[j]]
	})

	vals := make(plotter.Values, len(keys))
	for i, k := range keys {
		vals[i] = float64(counts[k])
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Count"

	b, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	b.Color = color.RGBA{R: 79, G: 70, B: 229, A: 255}
	p.Add(b)
	p.NominalX(keys...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save bar chart %s: %w", path, err)
	}
	return nil
}
