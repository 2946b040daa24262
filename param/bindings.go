package param

import (
	"github.com/kbukum/restkit/request"
)

// PathParam substitutes the `{name}` token of the path template.
type PathParam struct {
	Value any
	Name  string
}

// Path creates a path binding named after its field.
func Path(v any) PathParam { return PathParam{Value: v} }

// Named overrides the token name.
func (p PathParam) Named(name string) PathParam {
	p.Name = name
	return p
}

// Kind implements Binding.
func (PathParam) Kind() Kind { return KindPath }

// Contribute implements Binding.
func (p PathParam) Contribute(name string, d *request.Draft) error {
	n, err := resolveName(p.Name, name)
	if err != nil {
		return err
	}
	d.AddPathSubstitution(n, stringify(p.Value))
	return nil
}

// QueryParam adds a URL query parameter.
type QueryParam struct {
	Value any
	Name  string
}

// Query creates a query binding named after its field.
func Query(v any) QueryParam { return QueryParam{Value: v} }

// Named overrides the parameter name.
func (q QueryParam) Named(name string) QueryParam {
	q.Name = name
	return q
}

// Kind implements Binding.
func (QueryParam) Kind() Kind { return KindQuery }

// Contribute implements Binding.
func (q QueryParam) Contribute(name string, d *request.Draft) error {
	n, err := resolveName(q.Name, name)
	if err != nil {
		return err
	}
	d.AddQueryParams(map[string]string{n: stringify(q.Value)})
	return nil
}

// HeaderParam adds a request header.
type HeaderParam struct {
	Value any
	Name  string
}

// Header creates a header binding named after its field.
func Header(v any) HeaderParam { return HeaderParam{Value: v} }

// Named overrides the header name.
func (h HeaderParam) Named(name string) HeaderParam {
	h.Name = name
	return h
}

// Kind implements Binding.
func (HeaderParam) Kind() Kind { return KindHeader }

// Contribute implements Binding.
func (h HeaderParam) Contribute(name string, d *request.Draft) error {
	n, err := resolveName(h.Name, name)
	if err != nil {
		return err
	}
	d.AddHeaders(map[string]string{n: stringify(h.Value)})
	return nil
}

// FormFieldParam appends a multipart text field.
type FormFieldParam struct {
	Value any
	Name  string
}

// FormField creates a multipart field binding named after its field.
func FormField(v any) FormFieldParam { return FormFieldParam{Value: v} }

// Named overrides the form field name.
func (f FormFieldParam) Named(name string) FormFieldParam {
	f.Name = name
	return f
}

// Kind implements Binding.
func (FormFieldParam) Kind() Kind { return KindFormField }

// Contribute implements Binding.
func (f FormFieldParam) Contribute(name string, d *request.Draft) error {
	n, err := resolveName(f.Name, name)
	if err != nil {
		return err
	}
	d.AddFormField(request.FormField{Name: n, Value: stringify(f.Value)})
	return nil
}

// File is the content of a multipart file upload.
type File struct {
	FileName string
	MIMEType string
	Content  []byte
}

// FormFileParam appends a multipart file part.
type FormFileParam struct {
	File File
	Name string
}

// FormFile creates a multipart file binding named after its field.
func FormFile(f File) FormFileParam { return FormFileParam{File: f} }

// Named overrides the form field name.
func (f FormFileParam) Named(name string) FormFileParam {
	f.Name = name
	return f
}

// Kind implements Binding.
func (FormFileParam) Kind() Kind { return KindFormFile }

// Contribute implements Binding.
func (f FormFileParam) Contribute(name string, d *request.Draft) error {
	n, err := resolveName(f.Name, name)
	if err != nil {
		return err
	}
	d.AddFormFile(request.FormFile{
		Name:     n,
		FileName: f.File.FileName,
		MIMEType: f.File.MIMEType,
		Content:  f.File.Content,
	})
	return nil
}
