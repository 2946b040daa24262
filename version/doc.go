// Package version exposes the build version of an application using
// restkit. It supplies the default version reported in the user agent and
// telemetry resources.
//
//	go build -ldflags "-X github.com/kbukum/restkit/version.Version=1.0.0"
package version
