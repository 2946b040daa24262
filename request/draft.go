package request

import (
	"maps"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strings"

	apperrors "github.com/kbukum/restkit/errors"
)

// placeholderPattern matches `{name}` tokens in a path template.
var placeholderPattern = regexp.MustCompile(`\{[^{}/]+\}`)

// FormField is one ordered multipart text field.
type FormField struct {
	Name  string
	Value string
}

// FormFile is one ordered multipart file part.
type FormFile struct {
	Name     string
	FileName string
	MIMEType string
	Content  []byte
}

// Draft accumulates the contributions of a request's parameters.
// A Draft is call-scoped and not safe for concurrent use.
type Draft struct {
	method          string
	path            string
	substitutions   map[string]string
	headers         map[string]string
	query           map[string]string
	formFields      []FormField
	formFiles       []FormFile
	body            []byte
	bodyContentType string
	hasBody         bool
}

// NewDraft creates an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// SetMethod sets the HTTP method.
func (d *Draft) SetMethod(method string) {
	d.method = strings.ToUpper(method)
}

// SetPathTemplate sets the path template, e.g. "/artists/{artist_name}".
func (d *Draft) SetPathTemplate(path string) {
	d.path = path
}

// AddPathSubstitution registers the value for the `{name}` token.
func (d *Draft) AddPathSubstitution(name, value string) {
	if d.substitutions == nil {
		d.substitutions = make(map[string]string)
	}
	d.substitutions["{"+name+"}"] = value
}

// AddHeaders merges headers into the draft. Keys are canonicalized, so a later
// write to the same header overwrites an earlier one regardless of case.
func (d *Draft) AddHeaders(headers map[string]string) {
	if d.headers == nil {
		d.headers = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		d.headers[http.CanonicalHeaderKey(k)] = v
	}
}

// AddQueryParams merges query parameters into the draft; later writes win.
func (d *Draft) AddQueryParams(params map[string]string) {
	if d.query == nil {
		d.query = make(map[string]string, len(params))
	}
	maps.Copy(d.query, params)
}

// AddFormField appends a multipart text field.
func (d *Draft) AddFormField(f FormField) {
	d.formFields = append(d.formFields, f)
}

// AddFormFile appends a multipart file part.
func (d *Draft) AddFormFile(f FormFile) {
	d.formFiles = append(d.formFiles, f)
}

// SetBody sets the raw body and the content type it was encoded with.
// The content type is applied at build time unless a Content-Type header was
// set explicitly.
func (d *Draft) SetBody(body []byte, contentType string) {
	d.body = body
	d.bodyContentType = contentType
	d.hasBody = true
}

// Build resolves the draft into a transport-ready request.
func (d *Draft) Build() (*Resolved, error) {
	if d.method == "" {
		return nil, ErrMissingMethod
	}
	if d.path == "" {
		return nil, ErrMissingPath
	}

	// Tokens are read from the template only, so a value that looks like a
	// placeholder is never substituted again.
	var unresolved []string
	path := placeholderPattern.ReplaceAllStringFunc(d.path, func(token string) string {
		value, ok := d.substitutions[token]
		if !ok {
			unresolved = append(unresolved, token)
			return token
		}
		return url.PathEscape(value)
	})
	if len(unresolved) > 0 {
		return nil, fromAppError(apperrors.UnresolvedPlaceholder(d.path, unresolved))
	}

	r := &Resolved{
		Method:  d.method,
		Path:    path,
		Headers: maps.Clone(d.headers),
		Query:   maps.Clone(d.query),
	}
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	if r.Query == nil {
		r.Query = make(map[string]string)
	}

	if len(d.formFields) > 0 || len(d.formFiles) > 0 {
		// Form encoding wins; the raw body and its implicit content type are dropped.
		r.FormFields = slices.Clone(d.formFields)
		r.FormFiles = slices.Clone(d.formFiles)
		return r, nil
	}

	if d.hasBody {
		r.Body = slices.Clone(d.body)
		if _, ok := r.Headers["Content-Type"]; !ok && d.bodyContentType != "" {
			r.Headers["Content-Type"] = d.bodyContentType
		}
	}
	return r, nil
}
