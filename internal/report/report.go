package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/plantpulse/downtimer/internal/analysis"
)

// Summary holds the computed figures for one run. Zero-valued sections are
// omitted from the rendered text, so the stats-only command can reuse it.
type Summary struct {
	Input   string
	Rows    int
	Columns int

	DateColumn string
	DateFrom   time.Time
	DateTo     time.Time

	TorqueColumn string
	MeanTorque   float64
	HasTorque    bool

	GroupColumn string
	Downtime    map[string]int
	TopLines    []string
	TopCount    int

	Corr     *analysis.CorrMatrix
	TopPairs int

	Artifacts []string
}

// Text renders the sectioned plain-text report.
func (s *Summary) Text() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if s.Input != "" {
		fmt.Fprintf(&b, "File: %s\n", s.Input)
	}
	fmt.Fprintf(&b, "Rows: %d\n", s.Rows)
	fmt.Fprintf(&b, "Columns: %d\n", s.Columns)

	if !s.DateFrom.IsZero() {
		b.WriteString("\n[DATE RANGE]\n")
		fmt.Fprintf(&b, "%s: %s .. %s\n", s.DateColumn, s.DateFrom.Format("2006-01-02"), s.DateTo.Format("2006-01-02"))
	}

	if s.HasTorque {
		b.WriteString("\n[MEAN TORQUE]\n")
		fmt.Fprintf(&b, "%s: %.4g\n", s.TorqueColumn, s.MeanTorque)
	}

	if len(s.Downtime) > 0 {
		b.WriteString("\n[DOWNTIME BY " + strings.ToUpper(s.GroupColumn) + "]\n")
		keys := make([]string, 0, len(s.Downtime))
		for k := range s.Downtime {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if s.Downtime[keys[i]] == s.Downtime[keys[j]] {
				return keys[i] < keys[j]
			}
			return s.Downtime[keys[i]] > s.Downtime[keys[j]]
		})
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %d\n", k, s.Downtime[k])
		}
		if len(s.TopLines) > 0 {
			fmt.Fprintf(&b, "Highest: %s (%d)\n", strings.Join(s.TopLines, ", "), s.TopCount)
		}
	}

	if s.Corr != nil {
		limit := s.TopPairs
		if limit <= 0 {
			limit = 10
		}
		pairs := s.Corr.TopPairs(limit)
		if len(pairs) > 0 {
			b.WriteString("\n[TOP CORRELATIONS]\n")
			for _, p := range pairs {
				fmt.Fprintf(&b, "- %s ~ %s: r=%.2f\n", p.A, p.B, p.R)
			}
		}
	}

	if len(s.Artifacts) > 0 {
		b.WriteString("\n[ARTIFACTS]\n")
		for _, a := range s.Artifacts {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	return b.String()
}

// CorrText renders the full matrix with indexed headers and a column legend.
// NaN entries print as "n/a".
func CorrText(m *analysis.CorrMatrix) string {
	var b strings.Builder
	b.WriteString("[CORRELATION MATRIX]\n")
	n := m.Len()

	b.WriteString("     ")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, "%8s", fmt.Sprintf("[%d]", j+1))
	}
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%-5s", fmt.Sprintf("[%d]", i+1))
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				fmt.Fprintf(&b, "%8s", "n/a")
			} else {
				fmt.Fprintf(&b, "%8.2f", v)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, name := range m.Columns {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, name)
	}
	return b.String()
}
