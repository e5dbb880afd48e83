package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plantpulse/downtimer/internal/analysis"
	cfgpkg "github.com/plantpulse/downtimer/internal/config"
	"github.com/plantpulse/downtimer/internal/dataset"
	"github.com/plantpulse/downtimer/internal/render"
	"github.com/plantpulse/downtimer/internal/report"
)

var (
	repScatter  []string
	repTopPairs int
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Run the full pipeline: summaries, correlations, and charts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c := settings()
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		tbl, err := dataset.Load(path, opts)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}

		sum, err := buildSummary(tbl, path, c)
		if err != nil {
			return err
		}

		corr, err := analysis.Correlate(tbl)
		if err != nil {
			return fmt.Errorf("correlate: %w", err)
		}
		sum.Corr = corr
		sum.TopPairs = c.TopPairs
		if repTopPairs > 0 {
			sum.TopPairs = repTopPairs
		}

		if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		heat := filepath.Join(c.OutputDir, "corr_heatmap.png")
		if err := render.Heatmap(corr, heat); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		sum.Artifacts = append(sum.Artifacts, heat)

		bars := filepath.Join(c.OutputDir, "downtime_by_line.png")
		if err := render.CountBars(sum.Downtime, "Downtime by "+c.GroupColumn, bars); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		sum.Artifacts = append(sum.Artifacts, bars)

		pairs, err := scatterPairs(corr, c.ScatterPairs, repScatter)
		if err != nil {
			return err
		}
		for _, pair := range pairs {
			out := filepath.Join(c.OutputDir, fmt.Sprintf("scatter_%s_%s.png", slug(pair[0]), slug(pair[1])))
			if err := render.Scatter(tbl, pair[0], pair[1], out); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			sum.Artifacts = append(sum.Artifacts, out)
		}

		runID, err := report.WriteManifest(c.OutputDir, sum)
		if err != nil {
			return err
		}

		fmt.Println(sum.Text())
		fmt.Printf("✓ Wrote %d charts to %s (run %s)\n", len(sum.Artifacts), c.OutputDir, runID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringArrayVar(&repScatter, "scatter", nil, "numeric column pair \"X,Y\" to scatter (repeatable; defaults to top correlated pairs)")
	reportCmd.Flags().IntVar(&repTopPairs, "top-pairs", 0, "number of correlation pairs to list (overrides config)")
}

// buildSummary computes the scalar sections shared by report and stats.
func buildSummary(tbl *dataset.Table, path string, c *cfgpkg.Settings) (*report.Summary, error) {
	sum := &report.Summary{
		Input:        filepath.Base(path),
		Rows:         tbl.Len(),
		Columns:      len(tbl.ColumnNames()),
		DateColumn:   c.DateColumn,
		TorqueColumn: c.TorqueColumn,
		GroupColumn:  c.GroupColumn,
	}

	from, to, err := analysis.DateRange(tbl, c.DateColumn)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	sum.DateFrom, sum.DateTo = from, to

	meanTorque, err := analysis.Mean(tbl, c.TorqueColumn)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	sum.MeanTorque = meanTorque
	sum.HasTorque = true

	counts, err := analysis.CountMatching(tbl, c.GroupColumn, c.DowntimeColumn, c.DowntimeValue)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	sum.Downtime = counts
	sum.TopLines, sum.TopCount = analysis.TopGroups(counts)
	return sum, nil
}

// scatterPairs picks the pairs to plot: explicit --scatter flags, then the
// configured pairs, then the three strongest correlated pairs.
func scatterPairs(m *analysis.CorrMatrix, configured, flags []string) ([][2]string, error) {
	specs := flags
	if len(specs) == 0 {
		specs = configured
	}
	if len(specs) == 0 {
		var pairs [][2]string
		for _, p := range m.TopPairs(3) {
			pairs = append(pairs, [2]string{p.A, p.B})
		}
		return pairs, nil
	}
	var pairs [][2]string
	for _, s := range specs {
		parts := strings.SplitN(s, ",", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("invalid scatter pair %q (want \"X,Y\")", s)
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
	}
	return pairs, nil
}

// slug makes a column name safe for a file name.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
