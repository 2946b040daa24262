// Package logger provides structured logging on top of zerolog.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "bandsintown").WithComponent("rest")
//	log.Debug("dispatching request", logger.Fields("method", "GET", "path", "/artists/{artist_name}"))
//
// WithContext adds the trace and span IDs of the active OpenTelemetry span.
package logger
