package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks that the loaded values are usable
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(ValidLogFormats, strings.ToLower(c.LogFormat)) {
		problems = append(problems, fmt.Sprintf("%s must be one of %v, got %q", EnvLogFormat, ValidLogFormats, c.LogFormat))
	}
	if c.Days < 0 {
		problems = append(problems, fmt.Sprintf("%s must not be negative, got %d", EnvSimulationDays, c.Days))
	}

	if c.Workers < 1 {
		problems = append(problems, fmt.Sprintf("%s must be at least 1, got %d", EnvWorkers, c.Workers))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
