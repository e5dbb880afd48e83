package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/plantpulse/downtimer/internal/config"
	"github.com/plantpulse/downtimer/internal/dataset"
)

var (
	// Global flags
	cfgFile       string
	flagDelimiter string
	flagOutputDir string

	// Loaded configuration
	cfg *cfgpkg.Settings
)

var rootCmd = &cobra.Command{
	Use:   "downtimer",
	Short: "Downtimer: descriptive analytics for machine telemetry CSVs",
	Long: `Downtimer loads a CSV of manufacturing machine telemetry, computes summary
statistics (date range, mean torque, downtime counts per assembly line),
derives a Pearson correlation matrix over the numeric columns, and renders
heatmap, scatter and bar charts alongside a plain-text report.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.downtimer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' (sniffed from extension if omitted)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output", "o", "", "directory for chart artifacts (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults via settings()
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// settings returns the loaded configuration with flag overrides applied,
// falling back to defaults when no config was loaded.
func settings() *cfgpkg.Settings {
	if cfg == nil {
		cfg = cfgpkg.Defaults()
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	return cfg
}

func loadOptions() (dataset.Options, error) {
	switch flagDelimiter {
	case "":
		return dataset.Options{}, nil
	case ",":
		return dataset.Options{Delimiter: ','}, nil
	case ";":
		return dataset.Options{Delimiter: ';'}, nil
	case "tab", "\t":
		return dataset.Options{Delimiter: '\t'}, nil
	default:
		return dataset.Options{}, fmt.Errorf("unsupported --delimiter: %s", flagDelimiter)
	}
}
