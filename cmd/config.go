package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/plantpulse/downtimer/internal/config"
)

var cfgSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings, optionally saving them",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		b, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		fmt.Print(string(b))
		if cfgSave {
			if err := cfgpkg.Save(c, cfgFile); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "✓ Saved settings")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&cfgSave, "save", false, "write the effective settings to the config file")
}
