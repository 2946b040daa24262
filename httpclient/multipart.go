package httpclient

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"

	"github.com/google/uuid"
)

const defaultFileContentType = "application/octet-stream"

// MultipartBody represents a multipart/form-data request body.
type MultipartBody struct {
	// Fields are text fields, written first and in order.
	Fields []FormField
	// Files are file parts, written after the fields and in order.
	Files []FormFile
	// Boundary is the part delimiter. A fresh one is generated when empty.
	Boundary string
}

// FormField is a multipart text field.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a multipart file part.
type FormFile struct {
	// Name is the form field name (e.g., "file", "audio").
	Name string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. If empty, uses application/octet-stream.
	ContentType string
	// Data is the file content.
	Data []byte
}

// NewBoundary returns a unique multipart boundary token.
func NewBoundary() string {
	return "Boundary-" + uuid.NewString()
}

// EncodeMultipart serializes fields and files into a multipart/form-data
// body delimited by boundary and returns it with its Content-Type value.
// The output is byte-for-byte deterministic for a given boundary.
func EncodeMultipart(fields []FormField, files []FormFile, boundary string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(boundary); err != nil {
		return nil, "", err
	}

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range files {
		ct := f.ContentType
		if ct == "" {
			ct = defaultFileContentType
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(f.Name)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
		header.Set("Content-Type", ct)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// encode builds the multipart body and returns the reader and content-type header.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	boundary := m.Boundary
	if boundary == "" {
		boundary = NewBoundary()
	}
	data, contentType, err := EncodeMultipart(m.Fields, m.Files, boundary)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), contentType, nil
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
