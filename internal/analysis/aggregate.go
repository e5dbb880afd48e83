package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/plantpulse/downtimer/internal/dataset"
)

// DateRange scans a date column and returns its minimum and maximum values.
// A table with no valid dates in the column yields an EmptyInputError.
func DateRange(t *dataset.Table, column string) (min, max time.Time, err error) {
	if _, err := t.Column(column); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if t.Len() == 0 {
		return time.Time{}, time.Time{}, &dataset.EmptyInputError{Op: "date range of " + column}
	}
	times, valid, err := t.Dates(column)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	found := false
	for i, ts := range times {
		if !valid[i] {
			continue
		}
		if !found {
			min, max = ts, ts
			found = true
			continue
		}
		if ts.Before(min) {
			min = ts
		}
		if ts.After(max) {
			max = ts
		}
	}
	if !found {
		return time.Time{}, time.Time{}, &dataset.EmptyInputError{Op: "date range of " + column}
	}
	return min, max, nil
}

// Mean returns the arithmetic mean of a named numeric column over its valid
// values. A zero-row table yields an EmptyInputError; a numeric column with no
// valid values yields an UndefinedError rather than a silent NaN.
func Mean(t *dataset.Table, column string) (float64, error) {
	if _, err := t.Column(column); err != nil {
		return 0, err
	}
	if t.Len() == 0 {
		return 0, &dataset.EmptyInputError{Op: "mean of " + column}
	}
	vals, valid, err := t.Numeric(column)
	if err != nil {
		return 0, err
	}
	xs := make([]float64, 0, len(vals))
	for i, v := range vals {
		if valid[i] {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return 0, &dataset.UndefinedError{Op: "mean of " + column, Reason: "no numeric values"}
	}
	return stat.Mean(xs, nil), nil
}

// CountByGroup counts non-null occurrences of valueColumn per distinct
// groupColumn value. Rows where either cell is null are skipped.
func CountByGroup(t *dataset.Table, groupColumn, valueColumn string) (map[string]int, error) {
	g, err := t.Column(groupColumn)
	if err != nil {
		return nil, err
	}
	v, err := t.Column(valueColumn)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		if !g.IsValid(i) || !v.IsValid(i) {
			continue
		}
		counts[g.Cell(i)]++
	}
	return counts, nil
}

// CountMatching counts, per group, the rows whose valueColumn cell equals
// match. Used for downtime-event counting per assembly line.
func CountMatching(t *dataset.Table, groupColumn, valueColumn, match string) (map[string]int, error) {
	g, err := t.Column(groupColumn)
	if err != nil {
		return nil, err
	}
	v, err := t.Column(valueColumn)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		if !g.IsValid(i) || !v.IsValid(i) {
			continue
		}
		key := g.Cell(i)
		if _, ok := counts[key]; !ok {
			counts[key] = 0
		}
		if v.Cell(i) == match {
			counts[key]++
		}
	}
	return counts, nil
}

// TopGroups returns the groups holding the highest count. Tied groups are all
// reported, sorted by name.
func TopGroups(counts map[string]int) ([]string, int) {
	best := -1
	var keys []string
	for k, n := range counts {
		switch {
		case n > best:
			best = n
			keys = []string{k}
		case n == best:
			keys = append(keys, k)
		}
	}
	if best < 0 {
		return nil, 0
	}
	sort.Strings(keys)
	return keys, best
}
