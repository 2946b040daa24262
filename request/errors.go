package request

import (
	stderrors "errors"
	"fmt"

	apperrors "github.com/kbukum/restkit/errors"
)

// BuildError reports a request that could not be assembled. It is always a
// caller defect and is never retried.
type BuildError struct {
	// Code classifies the failure.
	Code apperrors.ErrorCode
	// Message describes the failure.
	Message string
	// Field is the declared request field involved, if any.
	Field string
	// Cause is the underlying error (encoding or validation failure).
	Cause error
}

// Sentinels for the mandatory draft fields. Match with errors.Is.
var (
	ErrMissingMethod = fromAppError(apperrors.MissingMethod())
	ErrMissingPath   = fromAppError(apperrors.MissingPath())
)

// fromAppError carries the code and message of a taxonomy error.
func fromAppError(appErr *apperrors.AppError) *BuildError {
	return &BuildError{Code: appErr.Code, Message: appErr.Message}
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	msg := "request: " + e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("request: field %q: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *BuildError) Unwrap() error { return e.Cause }

// Is matches build errors by code, so wrapped sentinels compare equal.
func (e *BuildError) Is(target error) bool {
	var t *BuildError
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// AppError converts the error into the shared taxonomy.
func (e *BuildError) AppError() *apperrors.AppError {
	appErr := apperrors.New(e.Code, e.Message).WithCause(e.Cause)
	if e.Field != "" {
		appErr.WithDetail("field", e.Field)
	}
	return appErr
}

// NewParamError reports a request field whose binding could not contribute.
func NewParamError(field string, cause error) *BuildError {
	return &BuildError{
		Code:    apperrors.ErrCodeInvalidInput,
		Message: "parameter could not be applied",
		Field:   field,
		Cause:   cause,
	}
}

// NewValidationError reports a request value rejected before dispatch.
func NewValidationError(cause error) *BuildError {
	return &BuildError{
		Code:    apperrors.ErrCodeInvalidInput,
		Message: "request validation failed",
		Cause:   cause,
	}
}

// NewEndpointError reports an unusable endpoint descriptor.
func NewEndpointError(msg string) *BuildError {
	return &BuildError{
		Code:    apperrors.ErrCodeBuildFailed,
		Message: msg,
	}
}

// IsBuildError checks if an error is a build error.
func IsBuildError(err error) bool {
	var e *BuildError
	return stderrors.As(err, &e)
}
