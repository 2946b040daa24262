package response

import (
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/kbukum/restkit/errors"
)

// ErrEmptyBody is the cause of a DecodeError when a value was expected but the
// body was empty.
var ErrEmptyBody = errors.New("empty response body")

// Decoder is implemented by response types that decode themselves from the
// raw transport result instead of being JSON-decoded from the body.
type Decoder interface {
	DecodeResponse(raw *Raw) error
}

// Empty is the response type of endpoints with no meaningful body.
// It decodes successfully from any body, including none.
type Empty struct{}

// DecodeResponse implements Decoder.
func (*Empty) DecodeResponse(*Raw) error { return nil }

// DecodeError reports a body that does not match the expected shape.
type DecodeError struct {
	// Target is the Go type the body was decoded into.
	Target     string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("response: decode %s (status %d): %v", e.Target, e.StatusCode, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error { return e.Err }

// AppError converts the error into the shared taxonomy.
func (e *DecodeError) AppError() *apperrors.AppError {
	return apperrors.DecodeFailed(e.Target, e.StatusCode, e.Err)
}

// IsDecodeError reports whether err is or wraps a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// Decode turns raw into a T. A *T implementing Decoder decodes itself;
// anything else is JSON-decoded from the body.
func Decode[T any](raw *Raw) (T, error) {
	var v T
	if err := decodeInto(raw, &v); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return v, de
		}
		return v, newDecodeError(raw, &v, err)
	}
	return v, nil
}

func decodeInto(raw *Raw, target any) error {
	if raw == nil {
		return newDecodeError(nil, target, errors.New("no transport result"))
	}
	if d, ok := target.(Decoder); ok {
		return d.DecodeResponse(raw)
	}
	if len(raw.Body) == 0 {
		return newDecodeError(raw, target, ErrEmptyBody)
	}
	if err := json.Unmarshal(raw.Body, target); err != nil {
		return newDecodeError(raw, target, err)
	}
	return nil
}

func newDecodeError(raw *Raw, target any, err error) *DecodeError {
	de := &DecodeError{Target: typeName(target), Err: err}
	if raw != nil {
		de.StatusCode = raw.StatusCode
		de.Body = raw.Body
	}
	return de
}

// typeName renders the pointed-to type of target.
func typeName(target any) string {
	name := fmt.Sprintf("%T", target)
	if len(name) > 0 && name[0] == '*' {
		return name[1:]
	}
	return name
}
