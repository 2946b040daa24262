// Package errors provides the shared error taxonomy for restkit.
//
// Stage errors (request.BuildError, rest.TransportError, response.DecodeError)
// implement Converter so callers can treat every dispatch failure uniformly:
//
//	if appErr, ok := errors.AsAppError(err); ok && appErr.Retryable {
//	    // caller-side retry policy
//	}
package errors
