package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/param"
	"github.com/kbukum/restkit/validation"
)

type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Event struct {
	ID       string `json:"id"`
	Datetime string `json:"datetime"`
	Venue    struct {
		Name string `json:"name"`
		City string `json:"city"`
	} `json:"venue"`
}

type APIError struct {
	Message string `json:"Message"`
}

type FindArtistRequest struct {
	Name  string
	AppID string
}

func (r FindArtistRequest) Params() []param.Field {
	return []param.Field{
		param.F("artist_name", param.Path(r.Name)),
		param.F("app_id", param.Query(r.AppID)),
	}
}

type ArtistEventsRequest struct {
	Name  string
	AppID string
	Date  string
}

func (r ArtistEventsRequest) Params() []param.Field {
	return []param.Field{
		param.F("artist_name", param.Path(r.Name)),
		param.F("app_id", param.Query(r.AppID)),
		param.F("_date", param.Query(r.Date)),
	}
}

// Validate rejects requests without an app id.
func (r ArtistEventsRequest) Validate() error {
	return validation.New().Required("app_id", r.AppID).Err()
}

type TaggedRequest struct {
	Name  string `json:"artist_name" validate:"required"`
	AppID string `json:"app_id" validate:"required,min=3"`
}

func (r TaggedRequest) Params() []param.Field {
	return []param.Field{
		param.F("artist_name", param.Path(r.Name)),
		param.F("app_id", param.Query(r.AppID)),
	}
}

type UploadRequest struct {
	Title string
	Audio []byte
}

func (r UploadRequest) Params() []param.Field {
	return []param.Field{
		param.F("title", param.FormField(r.Title)),
		param.F("audio", param.FormFile(param.File{FileName: "take1.wav", MIMEType: "audio/wav", Content: r.Audio}).Named("file")),
	}
}

type UploadResult struct {
	Title string `json:"title"`
	Size  int    `json:"size"`
	Type  string `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newBandsInTown serves a small subset of the Bands in Town API.
func newBandsInTown(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /artists/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("app_id") != "123" {
			writeJSON(w, http.StatusForbidden, APIError{Message: "Forbidden"})
			return
		}
		if r.PathValue("name") != "Doma" {
			writeJSON(w, http.StatusNotFound, APIError{Message: "Not found"})
			return
		}
		writeJSON(w, http.StatusOK, Artist{ID: "510", Name: "Doma", URL: "https://bandsintown.com/a/510"})
	})
	mux.HandleFunc("GET /artists/{name}/events", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != "Doma" {
			writeJSON(w, http.StatusNotFound, APIError{Message: "Not found"})
			return
		}
		date := r.URL.Query().Get("date")
		if date == "" {
			date = "upcoming"
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "1", "datetime": "2024-05-01T20:00:00", "venue": map[string]string{"name": "Paradiso", "city": "Amsterdam"}},
			{"id": "2", "datetime": date},
		})
	})
	mux.HandleFunc("POST /upload", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, APIError{Message: err.Error()})
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, APIError{Message: err.Error()})
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		writeJSON(w, http.StatusCreated, UploadResult{
			Title: r.FormValue("title"),
			Size:  len(data),
			Type:  hdr.Header.Get("Content-Type"),
		})
	})
	mux.HandleFunc("DELETE /artists/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /names/{name}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Artist{Name: r.PathValue("name"), URL: r.URL.RawQuery})
	})
	mux.HandleFunc("GET /echo-headers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"source":     r.Header.Get("X-Source"),
			"user_agent": r.Header.Get("User-Agent"),
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestClient builds a client against srv with a span recorder attached.
func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) (*Client, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	base := []Option{
		WithLogger(logger.NewNop()),
		WithTracerProvider(tp),
		WithMeterProvider(noop.NewMeterProvider()),
	}
	c, err := New(httpclient.Config{Name: "bandsintown", BaseURL: srv.URL}, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c, recorder
}

func loggerDisabled() logger.Config {
	return logger.Config{Level: "disabled"}
}
