// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ViewConfig is settings for the sequence viewer
type ViewConfig struct {
	// the number of bases in each row
	Width int `mapstructure:"width"`

	// the number of rows on each page
	Rows int `mapstructure:"rows"`
}

// ChartConfig is settings for charts
type ChartConfig struct {
	// the chart method used when none is passed
	Method string `mapstructure:"method"`
}

// Config is the root-level settings struct and is a mix
// of settings available in geneboard.yaml and those
// available from the command line
type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`

	// Verbose logs at the debug level regardless of LogLevel
	Verbose bool `mapstructure:"verbose"`

	// Progress shows a progress bar while reading input files
	Progress bool `mapstructure:"progress"`

	// View settings
	View ViewConfig `mapstructure:"view"`

	// Chart settings
	Chart ChartConfig `mapstructure:"chart"`
}

// SetDefaults sets the default value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("progress", false)
	v.SetDefault("view.width", 60)
	v.SetDefault("view.rows", 20)
	v.SetDefault("chart.method", "squiggle")
}

// Load reads the settings file, if there is one, into v. With an empty path
// geneboard.yaml is looked for in the working directory and in home/.geneboard.
func Load(v *viper.Viper, path, home string) error {
	SetDefaults(v)

	v.SetEnvPrefix("geneboard")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("geneboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".geneboard"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && path == "" {
			return nil
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
// (either from the local geneboard.yaml) and/or command line arguments
func New(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if c.View.Width < 1 {
		return nil, fmt.Errorf("failed to decode settings: view.width must be positive, got %d", c.View.Width)
	}

	return &c, nil
}
