package param

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/kbukum/restkit/request"
)

var schemaEncoder = schema.NewEncoder()

// encodeSchema flattens a struct (or pointer to struct) into values using its
// `schema` tags.
func encodeSchema(v any, dst url.Values) error {
	if v == nil {
		return nil
	}
	if err := schemaEncoder.Encode(v, dst); err != nil {
		return fmt.Errorf("param: encode %T: %w", v, err)
	}
	return nil
}

// QueryObjectParam flattens a struct into query parameters.
// Multi-valued fields are joined with commas.
type QueryObjectParam struct {
	Value any
}

// QueryObject creates a binding that expands v's `schema`-tagged fields into
// query parameters:
//
//	type Filter struct {
//	    Date  string `schema:"date,omitempty"`
//	    Limit int    `schema:"limit"`
//	}
func QueryObject(v any) QueryObjectParam { return QueryObjectParam{Value: v} }

// Kind implements Binding.
func (QueryObjectParam) Kind() Kind { return KindQuery }

// Contribute implements Binding. The field name is ignored.
func (q QueryObjectParam) Contribute(_ string, d *request.Draft) error {
	values := url.Values{}
	if err := encodeSchema(q.Value, values); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	params := make(map[string]string, len(values))
	for k, vs := range values {
		params[k] = strings.Join(vs, ",")
	}
	d.AddQueryParams(params)
	return nil
}
