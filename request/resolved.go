package request

// Resolved is a fully substituted, transport-ready request.
// Body and FormFields/FormFiles are mutually exclusive: when the form is
// non-empty, Body is nil.
type Resolved struct {
	// Method is the upper-case HTTP method.
	Method string
	// Path is the substituted path in escaped form: every substituted value
	// is percent-encoded as a single path segment.
	Path string
	// Headers are request headers keyed by canonical name.
	Headers map[string]string
	// Query are unescaped query parameters.
	Query map[string]string
	// Body is the encoded request body, nil when absent.
	Body []byte
	// FormFields are ordered multipart text fields.
	FormFields []FormField
	// FormFiles are ordered multipart file parts.
	FormFiles []FormFile
}

// IsMultipart reports whether the request must be sent as multipart/form-data.
func (r *Resolved) IsMultipart() bool {
	return len(r.FormFields) > 0 || len(r.FormFiles) > 0
}
