package httpclient

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is an escaped URL path, resolved against the configured target.
	// Percent-encoded octets are kept as sent.
	Path string
	// Headers are request-specific headers (merged over the shared headers).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the raw request body. Ignored when Form is set.
	Body []byte
	// Form sends a multipart/form-data body instead of Body.
	Form *MultipartBody
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body, already content-decoded.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
