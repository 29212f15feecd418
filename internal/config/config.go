// Package config loads render parameters from flags, environment
// variables, and an optional config file via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RenderConfig holds everything the CLI needs to build an Environment and
// drive the dispatcher.
type RenderConfig struct {
	Scene           string  `mapstructure:"scene"`
	Width           int     `mapstructure:"width"`
	Height          int     `mapstructure:"height"`
	SamplesPerPixel int     `mapstructure:"samples"`
	MaxDepth        int     `mapstructure:"max-depth"`
	Seed            int64   `mapstructure:"seed"`
	Output          string  `mapstructure:"output"`
	Quiet           bool    `mapstructure:"quiet"`
	Verbose         bool    `mapstructure:"verbose"`
	Gamma           float64 `mapstructure:"gamma"`
}

// defaults mirrors a typical interactive preview quality; scenes meant for
// a final render override samples/depth/resolution on the command line.
var defaults = RenderConfig{
	Scene:           "spheres",
	Width:           400,
	Height:          225,
	SamplesPerPixel: 100,
	MaxDepth:        50,
	Seed:            1,
	Output:          "out.png",
	Gamma:           2.0,
}

// Load builds a viper instance layering defaults, an optional config file
// (phototrace.yaml, looked up in the working directory only), and
// PHOTOTRACE_-prefixed environment variables, then binds the result into a
// RenderConfig. Command-line flags should be bound into v by the caller
// before Load runs so they take precedence.
func Load(v *viper.Viper) (RenderConfig, error) {
	v.SetDefault("scene", defaults.Scene)
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("samples", defaults.SamplesPerPixel)
	v.SetDefault("max-depth", defaults.MaxDepth)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("gamma", defaults.Gamma)

	v.SetEnvPrefix("PHOTOTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("phototrace")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return RenderConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg RenderConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
