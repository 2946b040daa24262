package errors

import (
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the caller may retry the operation.
	Retryable bool `json:"retryable"`
	// StatusCode is the upstream HTTP status, when a response was received.
	StatusCode int `json:"status_code,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithStatusCode records the upstream HTTP status and returns the receiver.
func (e *AppError) WithStatusCode(status int) *AppError {
	e.StatusCode = status
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// MissingMethod creates an AppError for a request built without an HTTP method.
func MissingMethod() *AppError {
	return New(ErrCodeMissingMethod, "HTTP method was never set")
}

// MissingPath creates an AppError for a request built without a path template.
func MissingPath() *AppError {
	return New(ErrCodeMissingPath, "path template was never set")
}

// UnresolvedPlaceholder creates an AppError listing path tokens left without a value.
func UnresolvedPlaceholder(path string, tokens []string) *AppError {
	return New(ErrCodeUnresolvedPlaceholder, fmt.Sprintf("path %q has unresolved placeholders %v", path, tokens)).
		WithDetails(map[string]any{"path": path, "placeholders": tokens})
}

// InvalidInput creates an AppError for a request value that could not be used.
func InvalidInput(field, reason string) *AppError {
	err := New(ErrCodeInvalidInput, fmt.Sprintf("Invalid input: %s", reason))
	if field != "" {
		err.WithDetail("field", field)
	}
	return err
}

// Validation creates an AppError for request validation failures.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// TransportFailed creates an AppError for a request that never produced a response.
func TransportFailed(cause error) *AppError {
	return New(ErrCodeTransportFailed, "The request could not be delivered.").WithCause(cause)
}

// ConnectionFailed creates an AppError for a failed connection to a host.
func ConnectionFailed(host string, cause error) *AppError {
	return New(ErrCodeConnectionFailed, fmt.Sprintf("Unable to connect to %s.", host)).
		WithDetail("host", host).
		WithCause(cause)
}

// Timeout creates an AppError for a request that timed out.
func Timeout(operation string, cause error) *AppError {
	return New(ErrCodeTimeout, "The request took too long.").
		WithDetail("operation", operation).
		WithCause(cause)
}

// DecodeFailed creates an AppError for a response body of unexpected shape.
func DecodeFailed(target string, status int, cause error) *AppError {
	return New(ErrCodeDecodeFailed, fmt.Sprintf("response body is not a valid %s", target)).
		WithStatusCode(status).
		WithDetail("target", target).
		WithCause(cause)
}
