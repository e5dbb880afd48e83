package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings drives a report run: which columns carry the date, torque,
// grouping and downtime information, and where chart artifacts land.
type Settings struct {
	DateColumn     string   `mapstructure:"date_column" yaml:"date_column"`
	TorqueColumn   string   `mapstructure:"torque_column" yaml:"torque_column"`
	GroupColumn    string   `mapstructure:"group_column" yaml:"group_column"`
	DowntimeColumn string   `mapstructure:"downtime_column" yaml:"downtime_column"`
	DowntimeValue  string   `mapstructure:"downtime_value" yaml:"downtime_value"`
	OutputDir      string   `mapstructure:"output_dir" yaml:"output_dir"`
	TopPairs       int      `mapstructure:"top_pairs" yaml:"top_pairs"`
	ScatterPairs   []string `mapstructure:"scatter_pairs" yaml:"scatter_pairs"`
}

// Defaults returns the column mapping for the stock machine telemetry export.
func Defaults() *Settings {
	return &Settings{
		DateColumn:     "Date",
		TorqueColumn:   "Torque(Nm)",
		GroupColumn:    "Assembly_Line_No",
		DowntimeColumn: "Downtime",
		DowntimeValue:  "Machine_Failure",
		OutputDir:      "charts",
		TopPairs:       10,
	}
}

// Save writes the given settings to cfgFile. If cfgFile is empty, it writes
// to ~/.downtimer/config.yaml, creating the directory if necessary.
func Save(c *Settings, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".downtimer")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads settings from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("DOWNTIMER")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("date_column", d.DateColumn)
	v.SetDefault("torque_column", d.TorqueColumn)
	v.SetDefault("group_column", d.GroupColumn)
	v.SetDefault("downtime_column", d.DowntimeColumn)
	v.SetDefault("downtime_value", d.DowntimeValue)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("top_pairs", d.TopPairs)
	v.SetDefault("scatter_pairs", []string{})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".downtimer"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Settings
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
