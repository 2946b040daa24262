package rest

import (
	"context"
	stderrors "errors"
	"fmt"

	apperrors "github.com/kbukum/restkit/errors"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/request"
	"github.com/kbukum/restkit/response"
)

// Transport sends a resolved request and returns the raw response. A
// response with any status code, including 4xx and 5xx, is a success at
// this level; only failures to obtain a response are errors.
type Transport interface {
	Send(ctx context.Context, req *request.Resolved) (*response.Raw, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *request.Resolved) (*response.Raw, error)

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, req *request.Resolved) (*response.Raw, error) {
	return f(ctx, req)
}

// TransportError wraps a failure to obtain a response.
type TransportError struct {
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("rest: transport: %v", e.Cause)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Cause }

// AppError converts the error into the shared taxonomy, keeping the
// classification of the cause when it has one.
func (e *TransportError) AppError() *apperrors.AppError {
	if appErr, ok := apperrors.AsAppError(e.Cause); ok {
		return appErr
	}
	return apperrors.TransportFailed(e.Cause)
}

// IsTransportError checks if an error is a transport error.
func IsTransportError(err error) bool {
	var e *TransportError
	return stderrors.As(err, &e)
}

// HTTPTransport sends resolved requests through an httpclient.Adapter.
type HTTPTransport struct {
	adapter  *httpclient.Adapter
	boundary func() string
}

// NewHTTPTransport creates a transport over adapter.
func NewHTTPTransport(adapter *httpclient.Adapter) *HTTPTransport {
	return &HTTPTransport{adapter: adapter, boundary: httpclient.NewBoundary}
}

// Adapter returns the underlying HTTP adapter.
func (t *HTTPTransport) Adapter() *httpclient.Adapter {
	return t.adapter
}

// Send implements Transport.
func (t *HTTPTransport) Send(ctx context.Context, req *request.Resolved) (*response.Raw, error) {
	resp, err := t.adapter.Do(ctx, t.toRequest(req))
	if err != nil {
		return nil, err
	}
	return &response.Raw{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

func (t *HTTPTransport) toRequest(req *request.Resolved) httpclient.Request {
	out := httpclient.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: req.Headers,
		Query:   req.Query,
	}
	if !req.IsMultipart() {
		out.Body = req.Body
		return out
	}

	form := &httpclient.MultipartBody{Boundary: t.boundary()}
	for _, f := range req.FormFields {
		form.Fields = append(form.Fields, httpclient.FormField{Name: f.Name, Value: f.Value})
	}
	for _, f := range req.FormFiles {
		form.Files = append(form.Files, httpclient.FormFile{
			Name:        f.Name,
			FileName:    f.FileName,
			ContentType: f.MIMEType,
			Data:        f.Content,
		})
	}
	out.Form = form
	return out
}
