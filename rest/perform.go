package rest

import (
	"context"
	"errors"
	"maps"
	"strings"

	apperrors "github.com/kbukum/restkit/errors"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
	"github.com/kbukum/restkit/param"
	"github.com/kbukum/restkit/request"
	"github.com/kbukum/restkit/response"
	"github.com/kbukum/restkit/validation"
)

var errNoResponse = errors.New("transport returned no response")

// CallOption configures a single dispatch.
type CallOption func(*callOptions)

type callOptions struct {
	headers map[string]string
}

// WithHeaders adds headers to one call. They are applied after the request's
// header bindings and win over them.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string, len(headers))
		}
		maps.Copy(o.headers, headers)
	}
}

// SelfValidator is implemented by request types that check their own values
// before dispatch.
type SelfValidator interface {
	Validate() error
}

// Perform composes req for endpoint, sends it through the client's transport
// and decodes the response as Res. Every stage is fatal: the first error is
// returned with the zero Res.
//
// Errors are a *request.BuildError (endpoint, validation or composition),
// a *TransportError (no response obtained) or a *response.DecodeError.
func Perform[Res any](ctx context.Context, c *Client, endpoint Endpoint, req param.Provider, opts ...CallOption) (Res, error) {
	var zero Res

	ctx, call := c.inst.Start(ctx, strings.ToUpper(endpoint.Method), endpoint.Path)
	log := c.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldMethod, strings.ToUpper(endpoint.Method),
		logger.FieldPath, endpoint.Path,
	))

	resolved, err := c.compose(endpoint, req, opts)
	if err != nil {
		return zero, c.fail(ctx, call, log, 0, err)
	}

	log.Debug("dispatching request", logger.Fields("url_path", resolved.Path))
	raw, err := c.transport.Send(ctx, resolved)
	if err == nil && raw == nil {
		err = errNoResponse
	}
	if err != nil {
		var te *TransportError
		if !errors.As(err, &te) {
			te = &TransportError{Cause: err}
		}
		return zero, c.fail(ctx, call, log, 0, te)
	}

	out, err := response.Decode[Res](raw)
	if err != nil {
		return zero, c.fail(ctx, call, log, raw.StatusCode, err)
	}

	call.End(ctx, raw.StatusCode, "", nil)
	log.Debug("response received", logger.Fields(
		logger.FieldStatus, raw.StatusCode,
		logger.FieldDuration, call.Duration().Milliseconds(),
	))
	return out, nil
}

// compose validates the inputs and builds the wire-ready request.
func (c *Client) compose(endpoint Endpoint, req param.Provider, opts []CallOption) (*request.Resolved, error) {
	if err := endpoint.Validate(); err != nil {
		return nil, err
	}
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}

	d := request.NewDraft()
	d.SetMethod(endpoint.Method)
	d.SetPathTemplate(endpoint.Path)
	if len(c.headers) > 0 {
		d.AddHeaders(c.headers)
	}
	if err := param.Apply(d, req); err != nil {
		return nil, err
	}

	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	if len(co.headers) > 0 {
		d.AddHeaders(co.headers)
	}
	return d.Build()
}

func (c *Client) validateRequest(req param.Provider) error {
	if req == nil {
		return nil
	}
	if c.validate {
		if err := validation.Validate(req); err != nil {
			return request.NewValidationError(err)
		}
	}
	if v, ok := req.(SelfValidator); ok {
		if err := v.Validate(); err != nil {
			return request.NewValidationError(err)
		}
	}
	return nil
}

// fail closes the call with err and logs it.
func (c *Client) fail(ctx context.Context, call *observability.Call, log *logger.Logger, status int, err error) error {
	kind := errorKind(err)
	call.End(ctx, status, kind, err)

	fields := logger.Fields(
		logger.FieldError, err.Error(),
		logger.FieldErrorCode, kind,
		logger.FieldDuration, call.Duration().Milliseconds(),
	)
	if status > 0 {
		fields[logger.FieldStatus] = status
	}
	log.Warn("request failed", fields)
	return err
}

// errorKind is the lower-case error code of err.
func errorKind(err error) string {
	if code := apperrors.CodeOf(err); code != "" {
		return strings.ToLower(string(code))
	}
	return "unknown"
}

// Action is a callable endpoint bound to a client. Tests may replace an
// Action with any function of the same type.
type Action[Req param.Provider, Res any] func(ctx context.Context, req Req, opts ...CallOption) (Res, error)

// Bind returns an Action dispatching endpoint through c.
//
//	var findArtist = rest.Bind[FindArtistRequest, Artist](client, rest.Get("/artists/{artist_name}"))
//	artist, err := findArtist(ctx, FindArtistRequest{Name: "Doma", AppID: "123"})
func Bind[Req param.Provider, Res any](c *Client, endpoint Endpoint) Action[Req, Res] {
	return func(ctx context.Context, req Req, opts ...CallOption) (Res, error) {
		return Perform[Res](ctx, c, endpoint, req, opts...)
	}
}
