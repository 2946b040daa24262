// Package httpclient is the HTTP transport: it puts one resolved request on
// the wire and returns the status, headers and raw body it got back.
//
// The adapter is configured once with the target (scheme + host, or a base
// URL), a timeout, shared headers, TLS and optional response compression:
//
//	a, err := httpclient.New(httpclient.Config{
//	    Scheme:  "https",
//	    Host:    "rest.bandsintown.com",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := a.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/artists/Doma",
//	    Query:  map[string]string{"app_id": "123"},
//	})
//
// Error statuses are returned as responses. Only failures to obtain a
// response (timeouts, connection errors, unbuildable requests) are errors,
// and a request is never retried.
//
// Multipart bodies are produced by EncodeMultipart, which is deterministic
// for a given boundary.
package httpclient
