package param

import (
	"fmt"
	"strings"

	"github.com/kbukum/restkit/request"
)

// Kind identifies how a binding contributes to a request.
type Kind int

const (
	// KindPath substitutes a `{name}` token in the path template.
	KindPath Kind = iota
	// KindQuery adds a URL query parameter.
	KindQuery
	// KindHeader adds a request header.
	KindHeader
	// KindFormField adds a multipart text field.
	KindFormField
	// KindFormFile adds a multipart file part.
	KindFormFile
	// KindBody sets the request body.
	KindBody
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindQuery:
		return "query"
	case KindHeader:
		return "header"
	case KindFormField:
		return "form_field"
	case KindFormFile:
		return "form_file"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// Binding is a request field's declared role in request composition.
type Binding interface {
	// Kind reports the contribution kind.
	Kind() Kind
	// Contribute writes the binding into the draft. name is the field's
	// declared name; an explicit wire name on the binding takes precedence.
	Contribute(name string, d *request.Draft) error
}

// Field pairs a declared field name with its binding.
type Field struct {
	Name    string
	Binding Binding
}

// F is shorthand for constructing a Field.
func F(name string, b Binding) Field {
	return Field{Name: name, Binding: b}
}

// Provider is implemented by request types. Params returns the request's
// bindings in field declaration order.
type Provider interface {
	Params() []Field
}

// None is a request with no parameters.
type None struct{}

// Params implements Provider.
func (None) Params() []Field { return nil }

// namePrefix is the marker some request types put in front of a field name to
// avoid clashing with a method or keyword.
const namePrefix = "_"

// FieldName returns the default wire name for a declared field name.
func FieldName(declared string) string {
	return strings.TrimPrefix(declared, namePrefix)
}

// Apply contributes every field of p to d in order and stops at the first
// failure, which is returned as a *request.BuildError.
func Apply(d *request.Draft, p Provider) error {
	if p == nil {
		return nil
	}
	for _, f := range p.Params() {
		if f.Binding == nil {
			continue
		}
		if err := f.Binding.Contribute(FieldName(f.Name), d); err != nil {
			return request.NewParamError(f.Name, err)
		}
	}
	return nil
}

// resolveName picks the explicit name when set, the declared one otherwise.
func resolveName(explicit, declared string) (string, error) {
	name := explicit
	if name == "" {
		name = declared
	}
	if name == "" {
		return "", fmt.Errorf("param: binding has no name")
	}
	return name, nil
}

// stringify renders a value the way it appears on the wire.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
