package httpclient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/kbukum/restkit/errors"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeInvalidRequest, "invalid_request"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{Code: ErrCodeConnection, Message: "connection refused"}
	want := "httpclient: connection: connection refused"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("dial tcp: refused")
	e := NewConnectionError("example.com", inner)
	if !errors.Is(e, inner) {
		t.Error("Unwrap did not return inner error")
	}
}

func TestError_Classification(t *testing.T) {
	timeout := NewTimeoutError(context.DeadlineExceeded)
	conn := NewConnectionError("example.com", fmt.Errorf("refused"))
	invalid := NewInvalidRequestError("bad url", nil)

	if !IsTimeout(timeout) || IsConnection(timeout) {
		t.Error("timeout misclassified")
	}
	if !IsConnection(conn) || IsTimeout(conn) {
		t.Error("connection misclassified")
	}
	if !IsInvalidRequest(invalid) {
		t.Error("invalid request misclassified")
	}
	if !IsRetryable(timeout) || !IsRetryable(conn) || IsRetryable(invalid) {
		t.Error("unexpected retryable flags")
	}
	if IsTimeout(fmt.Errorf("plain")) {
		t.Error("foreign errors must not classify")
	}
}

func TestError_AppError(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		code      apperrors.ErrorCode
		retryable bool
	}{
		{"timeout", NewTimeoutError(context.DeadlineExceeded), apperrors.ErrCodeTimeout, true},
		{"connection", NewConnectionError("example.com", fmt.Errorf("refused")), apperrors.ErrCodeConnectionFailed, true},
		{"invalid", NewInvalidRequestError("bad url", nil), apperrors.ErrCodeTransportFailed, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			appErr := tc.err.AppError()
			if appErr.Code != tc.code {
				t.Errorf("code = %s, want %s", appErr.Code, tc.code)
			}
			if appErr.Retryable != tc.retryable {
				t.Errorf("retryable = %v, want %v", appErr.Retryable, tc.retryable)
			}
			if apperrors.CodeOf(tc.err) != tc.code {
				t.Errorf("CodeOf = %s", apperrors.CodeOf(tc.err))
			}
		})
	}
}
