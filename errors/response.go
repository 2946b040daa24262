package errors

import (
	stderrors "errors"
)

// Converter is implemented by stage errors that map onto the shared taxonomy.
type Converter interface {
	AppError() *AppError
}

// IsAppError checks if an error is, or converts to, an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// AsAppError converts an error to an AppError if possible.
// Errors implementing Converter are converted on the fly.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	var conv Converter
	if stderrors.As(err, &conv) {
		if appErr = conv.AppError(); appErr != nil {
			return appErr, true
		}
	}
	return nil, false
}

// CodeOf returns the error code of err, or "" when err does not belong to the
// taxonomy.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
