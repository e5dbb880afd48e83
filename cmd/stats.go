package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantpulse/downtimer/internal/dataset"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print scalar summaries without rendering charts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		tbl, err := dataset.Load(args[0], opts)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		sum, err := buildSummary(tbl, args[0], c)
		if err != nil {
			return err
		}
		fmt.Println(sum.Text())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
