package response

import "net/http"

// Raw is what the transport captured for one call.
type Raw struct {
	// StatusCode is the HTTP status, or 0 when the transport reported none.
	StatusCode int
	// Headers holds the response headers keyed by canonical name.
	Headers map[string]string
	// Body is the undecoded response body.
	Body []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Raw) IsSuccess() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Header returns the value of the named header, matching case-insensitively.
func (r *Raw) Header(name string) string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers[http.CanonicalHeaderKey(name)]
}
