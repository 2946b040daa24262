package response

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/kbukum/restkit/errors"
)

type artist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type apiError struct {
	Message string `json:"Message"`
}

type event struct {
	ID       string `json:"id"`
	Datetime string `json:"datetime"`
}

func TestDecode_JSON(t *testing.T) {
	raw := &Raw{StatusCode: 200, Body: []byte(`{"name":"Doma","id":"510"}`)}
	got, err := Decode[artist](raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Name != "Doma" || got.ID != "510" {
		t.Errorf("unexpected artist %+v", got)
	}
}

func TestDecode_TopLevelArray(t *testing.T) {
	raw := &Raw{StatusCode: 200, Body: []byte(`[{"id":"1","datetime":"2024-05-01T20:00:00"},{"id":"2"}]`)}
	got, err := Decode[[]event](raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" {
		t.Errorf("unexpected events %+v", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  *Raw
	}{
		{"malformed", &Raw{StatusCode: 200, Body: []byte(`{"name":`)}},
		{"wrong shape", &Raw{StatusCode: 200, Body: []byte(`[1,2]`)}},
		{"empty body", &Raw{StatusCode: 200}},
		{"nil raw", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[artist](tc.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if de.Target != "response.artist" {
				t.Errorf("unexpected target %q", de.Target)
			}
			if apperrors.CodeOf(err) != apperrors.ErrCodeDecodeFailed {
				t.Errorf("expected DECODE_FAILED, got %q", apperrors.CodeOf(err))
			}
		})
	}
}

func TestDecode_EmptyBodyError(t *testing.T) {
	_, err := Decode[artist](&Raw{StatusCode: 204})
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, raw := range []*Raw{
		{StatusCode: 204},
		{StatusCode: 200, Body: []byte("ignored")},
		{},
	} {
		if _, err := Decode[Empty](raw); err != nil {
			t.Errorf("Decode[Empty](%+v): %v", raw, err)
		}
	}
}

func TestEither_StatusDriven(t *testing.T) {
	type result = Either[artist, apiError]

	t.Run("2xx decodes response", func(t *testing.T) {
		got, err := Decode[result](&Raw{StatusCode: 200, Body: []byte(`{"name":"Doma"}`)})
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		a, ok := got.Response()
		if !ok || a.Name != "Doma" {
			t.Errorf("expected response variant, got %+v", got)
		}
		if got.IsErrorResponse() {
			t.Error("IsErrorResponse must be false")
		}
	})

	t.Run("404 decodes error response", func(t *testing.T) {
		got, err := Decode[result](&Raw{StatusCode: 404, Body: []byte(`{"Message":"Not found"}`)})
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		e, ok := got.ErrorResponse()
		if !ok || e.Message != "Not found" {
			t.Errorf("expected error variant, got %+v", got)
		}
		if got.IsResponse() {
			t.Error("IsResponse must be false")
		}
	})

	t.Run("failure body on 2xx is not probed", func(t *testing.T) {
		got, err := Decode[result](&Raw{StatusCode: 200, Body: []byte(`{"Message":"x"}`)})
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !got.IsResponse() {
			t.Error("2xx must always select the response variant")
		}
	})

	t.Run("missing status is not success", func(t *testing.T) {
		got, err := Decode[result](&Raw{Body: []byte(`{"Message":"offline"}`)})
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !got.IsErrorResponse() {
			t.Error("expected error variant for absent status")
		}
	})

	t.Run("undecodable error body", func(t *testing.T) {
		_, err := Decode[result](&Raw{StatusCode: 500, Body: []byte(`<html>`)})
		if !IsDecodeError(fmt.Errorf("perform: %w", err)) {
			t.Fatalf("expected wrapped decode error to match, got %v", err)
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("expected *DecodeError, got %v", err)
		}
		if de.Target != "response.apiError" || de.StatusCode != 500 {
			t.Errorf("unexpected decode error %+v", de)
		}
	})
}

func TestEither_EmptySuccess(t *testing.T) {
	type result = Either[Empty, apiError]

	for _, status := range []int{0, 204, 404} {
		got, err := Decode[result](&Raw{StatusCode: status})
		if err != nil {
			t.Fatalf("status %d: %v", status, err)
		}
		if !got.IsResponse() {
			t.Errorf("status %d: empty body must resolve to response", status)
		}
	}

	got, err := Decode[result](&Raw{StatusCode: 404, Body: []byte(`{"Message":"gone"}`)})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if e, ok := got.ErrorResponse(); !ok || e.Message != "gone" {
		t.Errorf("expected error variant, got %+v", got)
	}
}

func TestEither_Accessors(t *testing.T) {
	s := Success[int, string](7)
	f := Failure[int, string]("bad")

	describe := func(e Either[int, string]) string {
		return Fold(e,
			func(n int) string { return "ok" },
			func(msg string) string { return "err:" + msg },
		)
	}
	if got := describe(s); got != "ok" {
		t.Errorf("Fold(success) = %q", got)
	}
	if got := describe(f); got != "err:bad" {
		t.Errorf("Fold(failure) = %q", got)
	}

	var seen string
	f.Match(func(int) { seen = "response" }, func(string) { seen = "error" })
	if seen != "error" {
		t.Errorf("Match called %q", seen)
	}
	if _, ok := s.ErrorResponse(); ok {
		t.Error("success must not expose an error payload")
	}
}

func TestRaw(t *testing.T) {
	r := &Raw{StatusCode: 201, Headers: map[string]string{"Content-Type": "application/json"}}
	if !r.IsSuccess() {
		t.Error("201 must be success")
	}
	if r.Header("content-type") != "application/json" {
		t.Errorf("expected case-insensitive header lookup")
	}
	var none *Raw
	if none.IsSuccess() || none.Header("x") != "" {
		t.Error("nil Raw must be empty")
	}
}
