package rest

import (
	"fmt"
	"maps"

	"github.com/kbukum/restkit/config"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
)

// ClientConfig is the loadable configuration of a Client.
type ClientConfig struct {
	Base    config.BaseConfig `yaml:"base" mapstructure:"base"`
	HTTP    httpclient.Config `yaml:"http" mapstructure:"http"`
	Logging logger.Config     `yaml:"logging" mapstructure:"logging"`
	// ValidateRequests enables `validate` struct-tag checks before dispatch.
	ValidateRequests bool `yaml:"validate_requests" mapstructure:"validate_requests"`
}

// ApplyDefaults applies defaults to every section. The HTTP client name
// defaults to the application name.
func (c *ClientConfig) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logging.ApplyDefaults()
	if c.HTTP.Name == "" {
		c.HTTP.Name = c.Base.Name
	}
	c.HTTP.ApplyDefaults()
}

// Validate validates every section.
func (c *ClientConfig) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// LoadClientConfig loads, defaults and validates the configuration called
// name. See config.LoadConfig for file and environment resolution.
func LoadClientConfig(name string, opts ...config.LoaderOption) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := config.LoadConfig(name, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rest: invalid config %s: %w", name, err)
	}
	return &cfg, nil
}

// NewFromConfig creates an HTTP client from a loaded configuration. The
// user agent is sent as a shared header unless one is configured.
func NewFromConfig(cfg ClientConfig, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(cfg.HTTP.Headers)+1)
	maps.Copy(headers, cfg.HTTP.Headers)
	if _, ok := headers["User-Agent"]; !ok && cfg.Base.UserAgent != "" {
		headers["User-Agent"] = cfg.Base.UserAgent
	}
	cfg.HTTP.Headers = headers

	base := []Option{WithLogger(logger.New(&cfg.Logging, cfg.Base.Name))}
	if cfg.ValidateRequests {
		base = append(base, WithValidation())
	}
	return New(cfg.HTTP, append(base, opts...)...)
}
