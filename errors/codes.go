package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request composition errors (caller defects, never retryable)
const (
	// ErrCodeBuildFailed indicates the request could not be assembled.
	ErrCodeBuildFailed ErrorCode = "BUILD_FAILED"
	// ErrCodeMissingMethod indicates the request draft has no HTTP method.
	ErrCodeMissingMethod ErrorCode = "MISSING_METHOD"
	// ErrCodeMissingPath indicates the request draft has no path template.
	ErrCodeMissingPath ErrorCode = "MISSING_PATH"
	// ErrCodeUnresolvedPlaceholder indicates a path placeholder had no substitution.
	ErrCodeUnresolvedPlaceholder ErrorCode = "UNRESOLVED_PLACEHOLDER"
	// ErrCodeInvalidInput indicates a request value failed validation or encoding.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Transport errors
const (
	// ErrCodeTransportFailed indicates the request could not be delivered.
	ErrCodeTransportFailed ErrorCode = "TRANSPORT_FAILED"
	// ErrCodeConnectionFailed indicates a failed connection (DNS, refused, TLS).
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Response errors
const (
	// ErrCodeDecodeFailed indicates the response body did not match the expected shape.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
)

// Transport-level failures are the only ones a caller may reasonably retry.
// This package never retries on its own.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransportFailed:  true,
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
