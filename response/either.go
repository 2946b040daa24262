package response

// Either is a response that is one of two shapes: the success payload S or
// the domain error payload F. It lets an endpoint return its structured error
// bodies as values instead of errors.
//
// The variant is chosen by status code: 2xx decodes S, anything else
// (including an absent status) decodes F. The one exception is an Empty S with
// an empty body, which is always a success since empty bytes never decode F.
type Either[S, F any] struct {
	success S
	failure F
	isError bool
}

// Success returns the response variant.
func Success[S, F any](s S) Either[S, F] {
	return Either[S, F]{success: s}
}

// Failure returns the errorResponse variant.
func Failure[S, F any](f F) Either[S, F] {
	return Either[S, F]{failure: f, isError: true}
}

// IsResponse reports whether e holds the success payload.
func (e Either[S, F]) IsResponse() bool { return !e.isError }

// IsErrorResponse reports whether e holds the error payload.
func (e Either[S, F]) IsErrorResponse() bool { return e.isError }

// Response returns the success payload and whether e holds it.
func (e Either[S, F]) Response() (S, bool) {
	return e.success, !e.isError
}

// ErrorResponse returns the error payload and whether e holds it.
func (e Either[S, F]) ErrorResponse() (F, bool) {
	return e.failure, e.isError
}

// Match calls exactly one of the callbacks with the held payload.
func (e Either[S, F]) Match(onResponse func(S), onError func(F)) {
	if e.isError {
		onError(e.failure)
		return
	}
	onResponse(e.success)
}

// DecodeResponse implements Decoder.
func (e *Either[S, F]) DecodeResponse(raw *Raw) error {
	*e = Either[S, F]{}

	if len(raw.Body) == 0 {
		if _, ok := any(e.success).(Empty); ok {
			return nil
		}
	}

	if raw.IsSuccess() {
		return decodeInto(raw, &e.success)
	}
	e.isError = true
	return decodeInto(raw, &e.failure)
}

// Fold reduces e to a single value.
func Fold[S, F, R any](e Either[S, F], onResponse func(S) R, onError func(F) R) R {
	if e.isError {
		return onError(e.failure)
	}
	return onResponse(e.success)
}
