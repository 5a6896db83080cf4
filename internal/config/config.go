// SPDX-License-Identifier: MIT

// Package config loads the tissuenet command configuration from a YAML file
// and applies key=value overrides given on the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tissuenet/internal/logging"
)

// ErrInvalidOverride indicates an override that is not of the form key=value.
var ErrInvalidOverride = errors.New("config: override must be key=value")

// Config drives one parse or check run.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// RemoveMarginCells drops cells touching the canvas border after building.
	RemoveMarginCells bool `yaml:"remove_margin_cells"`

	// FailOnViolations makes check exit non-zero when violations are found.
	FailOnViolations bool `yaml:"fail_on_violations"`

	// MetricsFile, when set, receives the build metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file"`

	// Frame and Time stamp the built graph.
	Frame int     `yaml:"frame"`
	Time  float64 `yaml:"time"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:         "info",
		FailOnViolations: true,
		Frame:            -1,
	}
}

// Load reads path and applies overrides on top of it. A missing file, or an
// empty path, yields the defaults. Unknown keys are rejected.
func Load(path string, overrides map[string]string) (Config, error) {
	raw := make(map[string]any)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	for k, v := range overrides {
		raw[k] = v
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ParseOverrides turns "key=value" pairs into a map.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOverride, p)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
