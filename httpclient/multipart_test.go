package httpclient

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEncodeMultipart_Deterministic(t *testing.T) {
	fields := []FormField{{Name: "model", Value: "large-v3"}, {Name: "lang", Value: "en"}}
	files := []FormFile{{Name: "file", FileName: "a.wav", ContentType: "audio/wav", Data: []byte("RIFF")}}

	first, ct1, err := EncodeMultipart(fields, files, "Boundary-fixed")
	if err != nil {
		t.Fatalf("EncodeMultipart() error: %v", err)
	}
	second, ct2, err := EncodeMultipart(fields, files, "Boundary-fixed")
	if err != nil {
		t.Fatalf("EncodeMultipart() error: %v", err)
	}
	if !bytes.Equal(first, second) || ct1 != ct2 {
		t.Error("same input and boundary must produce identical bytes")
	}
	if ct1 != "multipart/form-data; boundary=Boundary-fixed" {
		t.Errorf("content type = %q", ct1)
	}

	want := "--Boundary-fixed\r\n" +
		"Content-Disposition: form-data; name=\"model\"\r\n\r\n" +
		"large-v3\r\n" +
		"--Boundary-fixed\r\n" +
		"Content-Disposition: form-data; name=\"lang\"\r\n\r\n" +
		"en\r\n" +
		"--Boundary-fixed\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"a.wav\"\r\n" +
		"Content-Type: audio/wav\r\n\r\n" +
		"RIFF\r\n" +
		"--Boundary-fixed--\r\n"
	if string(first) != want {
		t.Errorf("unexpected body:\n%q\nwant:\n%q", first, want)
	}
}

func TestEncodeMultipart_RoundTrip(t *testing.T) {
	fields := []FormField{{Name: "first", Value: "1"}, {Name: "second", Value: "2"}}
	files := []FormFile{
		{Name: "doc", FileName: `re"port.txt`, Data: []byte("text")},
		{Name: "img", FileName: "p.png", ContentType: "image/png", Data: []byte{0x89, 0x50}},
	}

	data, contentType, err := EncodeMultipart(fields, files, NewBoundary())
	if err != nil {
		t.Fatalf("EncodeMultipart() error: %v", err)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("media type = %q, want multipart/form-data", mediaType)
	}

	mr := multipart.NewReader(bytes.NewReader(data), params["boundary"])
	var names []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		names = append(names, part.FormName())
		body, _ := io.ReadAll(part)
		switch part.FormName() {
		case "doc":
			if part.FileName() != `re"port.txt` {
				t.Errorf("filename = %q", part.FileName())
			}
			if ct := part.Header.Get("Content-Type"); ct != "application/octet-stream" {
				t.Errorf("default part content type = %q", ct)
			}
		case "img":
			if !bytes.Equal(body, []byte{0x89, 0x50}) {
				t.Errorf("img data = %v", body)
			}
		}
	}
	if got := strings.Join(names, ","); got != "first,second,doc,img" {
		t.Errorf("part order = %s, want fields then files in order", got)
	}
}

func TestEncodeMultipart_InvalidBoundary(t *testing.T) {
	if _, _, err := EncodeMultipart(nil, nil, "bad boundary\n"); err == nil {
		t.Fatal("expected error for invalid boundary")
	}
}

func TestNewBoundary_Unique(t *testing.T) {
	a, b := NewBoundary(), NewBoundary()
	if a == b {
		t.Error("boundaries must be unique")
	}
	if !strings.HasPrefix(a, "Boundary-") {
		t.Errorf("boundary = %q", a)
	}
}

func TestAdapter_Do_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm error: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got := r.FormValue("model"); got != "large-v3" {
			t.Errorf("model field = %q, want %q", got, "large-v3")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile error: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "audio.wav" {
			t.Errorf("filename = %q, want %q", header.Filename, "audio.wav")
		}
		data, _ := io.ReadAll(file)
		if string(data) != "audio bytes" {
			t.Errorf("file data = %q, want %q", data, "audio bytes")
		}
		w.Write([]byte(`{"text":"hello world"}`))
	}))
	defer srv.Close()

	adapter, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := adapter.Do(t.Context(), Request{
		Method:  http.MethodPost,
		Path:    "/transcribe",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(`{"ignored":true}`),
		Form: &MultipartBody{
			Fields: []FormField{{Name: "model", Value: "large-v3"}},
			Files:  []FormFile{{Name: "file", FileName: "audio.wav", Data: []byte("audio bytes")}},
		},
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if got := string(resp.Body); got != `{"text":"hello world"}` {
		t.Errorf("body = %q, want json", got)
	}
}
