package rest

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/kbukum/restkit/request"
)

var supportedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodHead,
	http.MethodPatch,
}

// Endpoint describes one remote operation: an HTTP method and a path
// template with `{name}` placeholders.
type Endpoint struct {
	Method string
	Path   string
}

// Get returns a GET endpoint.
func Get(path string) Endpoint { return Endpoint{Method: http.MethodGet, Path: path} }

// Post returns a POST endpoint.
func Post(path string) Endpoint { return Endpoint{Method: http.MethodPost, Path: path} }

// Put returns a PUT endpoint.
func Put(path string) Endpoint { return Endpoint{Method: http.MethodPut, Path: path} }

// Delete returns a DELETE endpoint.
func Delete(path string) Endpoint { return Endpoint{Method: http.MethodDelete, Path: path} }

// Head returns a HEAD endpoint.
func Head(path string) Endpoint { return Endpoint{Method: http.MethodHead, Path: path} }

// Patch returns a PATCH endpoint.
func Patch(path string) Endpoint { return Endpoint{Method: http.MethodPatch, Path: path} }

// Validate reports an unsupported method or an empty path as a
// *request.BuildError.
func (e Endpoint) Validate() error {
	if !slices.Contains(supportedMethods, strings.ToUpper(e.Method)) {
		return request.NewEndpointError(fmt.Sprintf("unsupported method %q", e.Method))
	}
	if strings.TrimSpace(e.Path) == "" {
		return request.NewEndpointError("endpoint path is empty")
	}
	return nil
}

// String returns "METHOD path".
func (e Endpoint) String() string {
	return strings.ToUpper(e.Method) + " " + e.Path
}
