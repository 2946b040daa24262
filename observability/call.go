package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Instrumentation traces and meters endpoint dispatches of one client.
type Instrumentation struct {
	client  string
	tracer  trace.Tracer
	metrics *Metrics
}

// NewInstrumentation creates instrumentation for the named client. Nil
// providers fall back to the globally installed ones.
func NewInstrumentation(client string, tp trace.TracerProvider, mp metric.MeterProvider) (*Instrumentation, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	metrics, err := NewMetrics(mp.Meter(InstrumentationName))
	if err != nil {
		return nil, err
	}
	return &Instrumentation{
		client:  client,
		tracer:  tp.Tracer(InstrumentationName),
		metrics: metrics,
	}, nil
}

// Call is one traced dispatch. End must be called exactly once.
type Call struct {
	inst         *Instrumentation
	span         trace.Span
	method       string
	pathTemplate string
	start        time.Time
}

// Start opens a client span for method and pathTemplate and counts the call
// as in flight. The returned context carries the span.
func (in *Instrumentation) Start(ctx context.Context, method, pathTemplate string) (context.Context, *Call) {
	ctx, span := in.tracer.Start(ctx, SpanPerform,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrClient, in.client),
			attribute.String(AttrMethod, method),
			attribute.String(AttrPathTemplate, pathTemplate),
		),
	)
	in.metrics.RecordCallStart(ctx, in.client)
	return ctx, &Call{
		inst:         in,
		span:         span,
		method:       method,
		pathTemplate: pathTemplate,
		start:        time.Now(),
	}
}

// End closes the span and records metrics. status is 0 when no response was
// received. A non-nil err is recorded under kind.
func (c *Call) End(ctx context.Context, status int, kind string, err error) {
	duration := time.Since(c.start)

	if status > 0 {
		c.span.SetAttributes(attribute.Int(AttrStatusCode, status))
	}
	switch {
	case err != nil:
		c.span.RecordError(err)
		c.span.SetAttributes(attribute.String(AttrErrorKind, kind))
		c.span.SetStatus(codes.Error, err.Error())
		c.inst.metrics.RecordError(ctx, c.inst.client, kind)
	case status >= 400:
		c.span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
	}
	c.span.End()

	c.inst.metrics.RecordCallEnd(ctx, c.inst.client, c.method, c.pathTemplate, status, duration)
}

// Duration returns the elapsed time since the call started.
func (c *Call) Duration() time.Duration {
	return time.Since(c.start)
}
