package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/plantpulse/downtimer/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix over the numeric
// columns of a table. Entries for zero-variance columns or pairs with fewer
// than two shared observations are NaN.
type CorrMatrix struct {
	Columns []string
	vals    [][]float64
}

// Len returns the matrix dimension.
func (m *CorrMatrix) Len() int { return len(m.Columns) }

// At returns the coefficient for column pair (i, j).
func (m *CorrMatrix) At(i, j int) float64 { return m.vals[i][j] }

// Pair is one correlated column pair.
type Pair struct {
	A, B string
	R    float64
}

// TopPairs lists the strongest off-diagonal pairs by |r|, NaN excluded.
// Ties break on concatenated column names for determinism.
func (m *CorrMatrix) TopPairs(limit int) []Pair {
	var pairs []Pair
	for i := 0; i < len(m.Columns); i++ {
		for j := i + 1; j < len(m.Columns); j++ {
			r := m.vals[i][j]
			if math.IsNaN(r) {
				continue
			}
			pairs = append(pairs, Pair{A: m.Columns[i], B: m.Columns[j], R: r})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		ra, rb := math.Abs(pairs[a].R), math.Abs(pairs[b].R)
		if ra == rb {
			return pairs[a].A+pairs[a].B < pairs[b].A+pairs[b].B
		}
		return ra > rb
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// Correlate computes the Pearson coefficient for every pair of numeric
// columns over pairwise-complete observations (rows where both cells are
// valid). Fewer than two numeric columns yields an UndefinedError.
func Correlate(t *dataset.Table) (*CorrMatrix, error) {
	names := t.NumericColumns()
	if len(names) < 2 {
		return nil, &dataset.UndefinedError{Op: "correlation", Reason: "fewer than two numeric columns"}
	}
	cols := make([][]float64, len(names))
	valid := make([][]bool, len(names))
	for i, name := range names {
		vals, mask, err := t.Numeric(name)
		if err != nil {
			return nil, err
		}
		cols[i] = vals
		valid[i] = mask
	}

	n := len(names)
	vals := make([][]float64, n)
	for i := range vals {
		vals[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := pearson(cols[i], valid[i], cols[j], valid[j])
			vals[i][j] = r
			vals[j][i] = r
		}
	}
	return &CorrMatrix{Columns: names, vals: vals}, nil
}

// pearson computes r over the rows valid in both columns. Zero variance on
// either side, or fewer than two shared observations, yields NaN.
func pearson(x []float64, xv []bool, y []float64, yv []bool) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if xv[i] && yv[i] {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
