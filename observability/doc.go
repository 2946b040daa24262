// Package observability provides OpenTelemetry tracing and metrics for
// endpoint dispatches.
//
// Exporters:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
// Per-call instrumentation:
//
//	inst, err := observability.NewInstrumentation("bandsintown", nil, nil)
//	ctx, call := inst.Start(ctx, "GET", "/artists/{artist_name}")
//	defer call.End(ctx, status, kind, err)
package observability
