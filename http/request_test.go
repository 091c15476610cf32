package http

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

func parseRequest(t *testing.T, raw []byte) (*Request, error) {
	t.Helper()

	var req Request
	err := req.Parse(bufio.NewReader(bytes.NewReader(raw)))
	return &req, err
}

func TestParseRequest(t *testing.T) {
	req, err := parseRequest(t, []byte("GET /test HTTP/1.1\r\nAccept: text/css\r\nConnection: keep-alive\r\nContent-Length: 0\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}

	if req.Method != MethodGet {
		t.Errorf("expected GET, got %s", req.Method)
	}
	if req.URL != "/test" {
		t.Errorf("expected /test, got %s", req.URL)
	}
	if req.Version != Version1_1 {
		t.Errorf("expected HTTP/1.1, got %s", req.Version)
	}
	if got := req.Headers.Get("connection"); got != "keep-alive" {
		t.Errorf("expected keep-alive, got %s", got)
	}
	if !req.KeepAlive() {
		t.Error("expected keep-alive request")
	}
	if len(req.Body) != 0 {
		t.Errorf("expected empty body, got %d bytes", len(req.Body))
	}
}

func TestParseRequestBody(t *testing.T) {
	body := "name=gopher&mood=fine"
	raw := "POST /submit HTTP/1.1\r\nContent-Length: 21\r\n\r\n" + body

	req, err := parseRequest(t, []byte(raw))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(req.Body, []byte(body)) {
		t.Errorf("expected body %q, got %q", body, req.Body)
	}
}

func TestParseRequestBodyTruncated(t *testing.T) {
	_, err := parseRequest(t, []byte("POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nabc"))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}

func TestParseEmptyStream(t *testing.T) {
	_, err := parseRequest(t, nil)
	if err != io.EOF {
		t.Errorf("expected io.EOF for an empty stream, got %v", err)
	}
}

func TestParseIncompleteHeader(t *testing.T) {
	_, err := parseRequest(t, []byte("GET / HTTP/1.1\r\nAccept: text"))
	if !errors.Is(err, ErrIncompleteHeader) {
		t.Errorf("expected ErrIncompleteHeader, got %v", err)
	}
}

func TestParseMalformedRequestLine(t *testing.T) {
	for _, raw := range []string{
		"GET /\r\n\r\n",
		"GET / HTTP/1.1 EXTRA\r\n\r\n",
		"BAD\r\n\r\n",
	} {
		_, err := parseRequest(t, []byte(raw))
		if !errors.Is(err, ErrMalformedRequestLine) {
			t.Errorf("%q: expected ErrMalformedRequestLine, got %v", raw, err)
		}
	}
}

func TestParseInvalidEncoding(t *testing.T) {
	_, err := parseRequest(t, []byte("GET / HTTP/1.1\r\nx-bad: \xff\xfe\r\n\r\n"))
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestParseContentLength(t *testing.T) {
	// Unparsable values are tolerated and treated as zero.
	req, err := parseRequest(t, []byte("GET / HTTP/1.1\r\nContent-Length: banana\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(req.Body) != 0 {
		t.Errorf("expected empty body, got %d bytes", len(req.Body))
	}

	// A negative integer is a protocol violation.
	_, err = parseRequest(t, []byte("GET / HTTP/1.1\r\nContent-Length: -5\r\n\r\n"))
	if !errors.Is(err, ErrInvalidContentLength) {
		t.Errorf("expected ErrInvalidContentLength, got %v", err)
	}
}

func TestParseSkipsStrayLines(t *testing.T) {
	req, err := parseRequest(t, []byte("GET / HTTP/1.1\r\nno-colon-here\r\nAccept: text/css\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}

	if got := req.Headers.Get("Accept"); got != "text/css" {
		t.Errorf("expected text/css, got %q", got)
	}
	if req.Headers.Has("no-colon-here") {
		t.Error("stray line should have been skipped")
	}
}

func TestParseHeaderValueWithColon(t *testing.T) {
	req, err := parseRequest(t, []byte("GET / HTTP/1.1\r\nHost: localhost:3000\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}

	if got := req.Headers.Get("Host"); got != "localhost:3000" {
		t.Errorf("expected localhost:3000, got %q", got)
	}
}

func TestParseUnknownMethodAndVersion(t *testing.T) {
	req, err := parseRequest(t, []byte("PATCH / HTTP/0.9\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}

	if req.Method != MethodUnknown {
		t.Errorf("expected unknown method, got %s", req.Method)
	}
	if req.Version != VersionUnknown {
		t.Errorf("expected unknown version, got %s", req.Version)
	}
}

func BenchmarkParseRequest(b *testing.B) {
	raw := []byte("GET /test HTTP/1.1\r\nAccept: text/css\r\nConnection: keep-alive\r\nContent-Length: 0\r\n\r\n")

	reader := bytes.NewReader(raw)
	br := bufio.NewReader(reader)

	for i := 0; i < b.N; i++ {
		reader.Reset(raw)
		br.Reset(reader)

		var req Request
		if err := req.Parse(br); err != nil {
			b.Error(err)
		}
	}
}
