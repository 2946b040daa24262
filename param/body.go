package param

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kbukum/restkit/request"
)

// Encoder serializes a body value.
type Encoder interface {
	// ContentType is the media type of the encoded bytes.
	ContentType() string
	// Encode serializes v.
	Encode(v any) ([]byte, error)
}

// JSON encodes bodies with encoding/json. It is the default body encoder.
var JSON Encoder = jsonEncoder{}

// FormURLEncoded encodes struct bodies as application/x-www-form-urlencoded
// using `schema` struct tags.
var FormURLEncoded Encoder = formEncoder{}

type jsonEncoder struct{}

func (jsonEncoder) ContentType() string { return "application/json" }

func (jsonEncoder) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

type formEncoder struct{}

func (formEncoder) ContentType() string { return "application/x-www-form-urlencoded" }

func (formEncoder) Encode(v any) ([]byte, error) {
	values := url.Values{}
	if err := encodeSchema(v, values); err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// BodyParam sets the request body from an encoded value.
type BodyParam struct {
	Value   any
	Encoder Encoder
}

// Body creates a JSON body binding.
func Body(v any) BodyParam { return BodyParam{Value: v, Encoder: JSON} }

// EncodedWith replaces the body encoder.
func (b BodyParam) EncodedWith(e Encoder) BodyParam {
	b.Encoder = e
	return b
}

// Kind implements Binding.
func (BodyParam) Kind() Kind { return KindBody }

// Contribute implements Binding. The field name is ignored.
func (b BodyParam) Contribute(_ string, d *request.Draft) error {
	enc := b.Encoder
	if enc == nil {
		enc = JSON
	}
	data, err := enc.Encode(b.Value)
	if err != nil {
		return fmt.Errorf("param: encode body: %w", err)
	}
	d.SetBody(data, enc.ContentType())
	return nil
}

// RawBodyParam sets pre-encoded body bytes.
type RawBodyParam struct {
	Data        []byte
	ContentType string
}

// RawBody creates a binding for already encoded bytes.
func RawBody(data []byte, contentType string) RawBodyParam {
	return RawBodyParam{Data: data, ContentType: contentType}
}

// Kind implements Binding.
func (RawBodyParam) Kind() Kind { return KindBody }

// Contribute implements Binding.
func (r RawBodyParam) Contribute(_ string, d *request.Draft) error {
	ct := r.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	d.SetBody(r.Data, ct)
	return nil
}
