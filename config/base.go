package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/restkit/version"
)

var validEnvironments = []string{"development", "staging", "production"}

// BaseConfig identifies the application a client runs in.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	// UserAgent is sent with every request. Defaults to "<name>/<version>".
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Version == "" {
		c.Version = version.Version
	}
	if c.UserAgent == "" && c.Name != "" {
		c.UserAgent = c.Name + "/" + c.Version
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("base.name is required")
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return fmt.Errorf("base.environment must be one of %v (got: %s)", validEnvironments, c.Environment)
	}
	return nil
}

// IsProduction reports whether the environment is production.
func (c *BaseConfig) IsProduction() bool {
	return c.Environment == "production"
}
