package rest

import (
	"context"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/kbukum/restkit/errors"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/request"
	"github.com/kbukum/restkit/response"
)

func newAdapter(t *testing.T, url string) *httpclient.Adapter {
	t.Helper()
	a, err := httpclient.New(httpclient.Config{BaseURL: url})
	if err != nil {
		t.Fatalf("httpclient.New: %v", err)
	}
	return a
}

func TestHTTPTransport_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artists/Doma" || r.URL.Query().Get("app_id") != "123" {
			t.Errorf("unexpected request %s", r.URL)
		}
		w.Header().Set("X-Request-Id", "abc")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(newAdapter(t, srv.URL))
	raw, err := tr.Send(context.Background(), &request.Resolved{
		Method: http.MethodGet,
		Path:   "/artists/Doma",
		Query:  map[string]string{"app_id": "123"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if raw.StatusCode != http.StatusTeapot || string(raw.Body) != "short and stout" {
		t.Errorf("unexpected raw response %+v", raw)
	}
	if raw.Header("x-request-id") != "abc" {
		t.Errorf("expected response headers, got %v", raw.Headers)
	}
}

func TestClient_ExposesHTTPTransport(t *testing.T) {
	srv := newBandsInTown(t)
	c, _ := newTestClient(t, srv)

	ht, ok := c.Transport().(*HTTPTransport)
	if !ok {
		t.Fatalf("expected *HTTPTransport, got %T", c.Transport())
	}
	if ht.Adapter().Name() != "bandsintown" {
		t.Errorf("expected adapter name bandsintown, got %q", ht.Adapter().Name())
	}
}

func TestHTTPTransport_MultipartMapping(t *testing.T) {
	tr := &HTTPTransport{boundary: func() string { return "Boundary-fixed" }}
	req := tr.toRequest(&request.Resolved{
		Method:     http.MethodPost,
		Path:       "/upload",
		Body:       []byte("ignored"),
		FormFields: []request.FormField{{Name: "title", Value: "demo"}},
		FormFiles:  []request.FormFile{{Name: "file", FileName: "a.wav", MIMEType: "audio/wav", Content: []byte("RIFF")}},
	})
	if req.Body != nil {
		t.Errorf("body must not be sent with a form, got %q", req.Body)
	}
	if req.Form == nil || req.Form.Boundary != "Boundary-fixed" {
		t.Fatalf("unexpected form %+v", req.Form)
	}
	if len(req.Form.Fields) != 1 || req.Form.Fields[0] != (httpclient.FormField{Name: "title", Value: "demo"}) {
		t.Errorf("unexpected fields %+v", req.Form.Fields)
	}
	f := req.Form.Files[0]
	if f.Name != "file" || f.FileName != "a.wav" || f.ContentType != "audio/wav" || string(f.Data) != "RIFF" {
		t.Errorf("unexpected file %+v", f)
	}
}

func TestHTTPTransport_SendsMultipartWithGeneratedBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
			return
		}
		if !strings.HasPrefix(params["boundary"], "Boundary-") {
			t.Errorf("unexpected boundary %q", params["boundary"])
		}
		part, err := multipart.NewReader(r.Body, params["boundary"]).NextPart()
		if err != nil || part.FormName() != "title" {
			t.Errorf("unexpected first part: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(newAdapter(t, srv.URL))
	raw, err := tr.Send(context.Background(), &request.Resolved{
		Method:     http.MethodPost,
		Path:       "/upload",
		FormFields: []request.FormField{{Name: "title", Value: "demo"}},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if raw.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", raw.StatusCode)
	}
}

func TestHTTPTransport_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := NewHTTPTransport(newAdapter(t, url))
	_, err := tr.Send(context.Background(), &request.Resolved{Method: http.MethodGet, Path: "/"})
	if !httpclient.IsConnection(err) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	cause := httpclient.NewTimeoutError(context.DeadlineExceeded)
	err := error(&TransportError{Cause: cause})

	if !strings.Contains(err.Error(), "rest: transport") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected cause chain to reach context.DeadlineExceeded")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeTimeout || !appErr.Retryable {
		t.Errorf("unexpected app error %+v", appErr)
	}
	if IsTransportError(cause) {
		t.Error("a bare httpclient error is not a TransportError")
	}
}

func TestNewWithTransport_RequiresTransport(t *testing.T) {
	if _, err := NewWithTransport(nil); err == nil {
		t.Fatal("expected error for nil transport")
	}
}

func TestTransportFunc(t *testing.T) {
	called := false
	var tr Transport = TransportFunc(func(context.Context, *request.Resolved) (*response.Raw, error) {
		called = true
		return &response.Raw{StatusCode: 200}, nil
	})
	if _, err := tr.Send(context.Background(), &request.Resolved{}); err != nil || !called {
		t.Errorf("TransportFunc not invoked: %v", err)
	}
}
