package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantpulse/downtimer/internal/analysis"
	"github.com/plantpulse/downtimer/internal/dataset"
	"github.com/plantpulse/downtimer/internal/report"
)

var corrTopPairs int

var corrCmd = &cobra.Command{
	Use:   "corr <file>",
	Short: "Print the correlation matrix over numeric columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		tbl, err := dataset.Load(args[0], opts)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		m, err := analysis.Correlate(tbl)
		if err != nil {
			return fmt.Errorf("correlate: %w", err)
		}
		fmt.Print(report.CorrText(m))

		limit := corrTopPairs
		if limit <= 0 {
			limit = settings().TopPairs
		}
		pairs := m.TopPairs(limit)
		if len(pairs) > 0 {
			fmt.Println("\n[TOP CORRELATIONS]")
			for _, p := range pairs {
				fmt.Printf("- %s ~ %s: r=%.2f\n", p.A, p.B, p.R)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(corrCmd)
	corrCmd.Flags().IntVar(&corrTopPairs, "top-pairs", 0, "number of correlation pairs to list (overrides config)")
}
