package httpclient

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	defaultScheme  = "https"
)

// Config configures the HTTP transport. The target is either Scheme + Host
// or a BaseURL, which may carry a path prefix.
type Config struct {
	// Name identifies the client in logs and telemetry.
	Name string `yaml:"name" mapstructure:"name"`

	// Scheme is "http" or "https". Defaults to https.
	Scheme string `yaml:"scheme" mapstructure:"scheme"`

	// Host is the target host, optionally with a port.
	Host string `yaml:"host" mapstructure:"host"`

	// BaseURL overrides Scheme and Host, e.g. "https://api.example.com/v3".
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are shared headers applied to every request. Request headers
	// with the same name take precedence.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Compression advertises zstd and gzip and decodes compressed responses.
	Compression bool `yaml:"compression" mapstructure:"compression"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Scheme == "" && c.BaseURL == "" {
		c.Scheme = defaultScheme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if _, err := c.target(); err != nil {
		return err
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// target returns the URL every request path is resolved against.
func (c *Config) target() (*url.URL, error) {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("httpclient: invalid base_url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("httpclient: base_url %q must be absolute", c.BaseURL)
		}
		return u, nil
	}
	if c.Host == "" {
		return nil, fmt.Errorf("httpclient: host or base_url is required")
	}
	switch c.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("httpclient: unsupported scheme %q", c.Scheme)
	}
	return &url.URL{Scheme: c.Scheme, Host: c.Host}, nil
}
