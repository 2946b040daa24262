package rest

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
)

// Client dispatches endpoints through a Transport. A Client is immutable
// after construction and safe for concurrent use.
type Client struct {
	name      string
	transport Transport
	log       *logger.Logger
	validate  bool
	headers   map[string]string
	inst      *observability.Instrumentation

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures a Client.
type Option func(*Client)

// WithName sets the client name used in logs, spans and metrics.
func WithName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithValidation enables `validate` struct-tag checks on request values
// before they are composed.
func WithValidation() Option {
	return func(c *Client) {
		c.validate = true
	}
}

// WithDefaultHeaders sets headers added to every request before the request's
// own header bindings.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Client) {
		c.meterProvider = mp
	}
}

// New creates a client that sends requests over HTTP as configured by cfg.
func New(cfg httpclient.Config, opts ...Option) (*Client, error) {
	adapter, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(NewHTTPTransport(adapter), append([]Option{WithName(adapter.Name())}, opts...)...)
}

// NewWithTransport creates a client over an arbitrary transport.
func NewWithTransport(t Transport, opts ...Option) (*Client, error) {
	if t == nil {
		return nil, fmt.Errorf("rest: transport is required")
	}
	c := &Client{
		name:      "rest",
		transport: t,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.GetGlobalLogger()
	}
	c.log = c.log.WithComponent(c.name)

	inst, err := observability.NewInstrumentation(c.name, c.tracerProvider, c.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("rest: instrumentation: %w", err)
	}
	c.inst = inst
	return c, nil
}

// Name returns the client name.
func (c *Client) Name() string { return c.name }

// Transport returns the client's transport.
func (c *Client) Transport() Transport { return c.transport }

// Close releases the underlying HTTP adapter, if any.
func (c *Client) Close(ctx context.Context) error {
	if ht, ok := c.transport.(*HTTPTransport); ok {
		return ht.adapter.Close(ctx)
	}
	return nil
}
