package http

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Method uint8

const (
	MethodUnknown Method = iota
	MethodGet
	MethodPost
	MethodPut
	MethodDelete
)

func ParseMethod(word string) Method {
	switch word {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	case "PUT":
		return MethodPut
	case "DELETE":
		return MethodDelete
	default:
		return MethodUnknown
	}
}

func (method Method) String() string {
	switch method {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

type Version uint8

const (
	VersionUnknown Version = iota
	Version1_1
	Version2
)

func ParseVersion(word string) Version {
	switch strings.TrimPrefix(word, "HTTP/") {
	case "1.1":
		return Version1_1
	case "2":
		return Version2
	default:
		return VersionUnknown
	}
}

func (version Version) String() string {
	switch version {
	case Version1_1:
		return "HTTP/1.1"
	case Version2:
		return "HTTP/2"
	default:
		return "HTTP/unknown"
	}
}

// Request is a single parsed request. It is immutable once Parse returns
// and owned by the connection that parsed it.
type Request struct {
	Method  Method
	URL     string
	Version Version
	Headers Headers
	Body    []byte
}

// KeepAlive reports whether the client asked for the connection to stay
// open after this exchange. Anything other than an explicit keep-alive
// means close.
func (req *Request) KeepAlive() bool {
	return strings.EqualFold(req.Headers.Get("Connection"), "keep-alive")
}

// Parse reads one request from the stream.
//
// A stream that closes before producing a single byte returns io.EOF;
// that is the normal way a peer ends a keep-alive connection and not an
// error. A stream that closes mid-header returns ErrIncompleteHeader.
func (req *Request) Parse(reader *bufio.Reader) error {
	terminator := []byte(doubleCRLF)
	header := make([]byte, 0, 512)
	for !bytes.HasSuffix(header, terminator) {
		b, err := reader.ReadByte()
		if err == io.EOF {
			if len(header) == 0 {
				return io.EOF
			}
			return ErrIncompleteHeader
		}
		if err != nil {
			return err
		}
		header = append(header, b)
	}

	if !utf8.Valid(header) {
		return ErrInvalidEncoding
	}

	lines := strings.Split(string(header), crlf)

	words := strings.Split(lines[0], " ")
	if len(words) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedRequestLine, lines[0])
	}
	req.Method = ParseMethod(words[0])
	req.URL = words[1]
	req.Version = ParseVersion(words[2])

	req.Headers = make(Headers, len(lines))
	for _, line := range lines[1:] {
		name, value, found := strings.Cut(line, ":")
		if !found {
			// Tolerate stray lines, including the blank ones left over
			// from splitting on the terminator.
			continue
		}
		req.Headers.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	contentLength := 0
	if raw := req.Headers.Get("Content-Length"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			slog.Warn("http: ignoring unparsable content-length", "value", raw)
		case n < 0:
			return fmt.Errorf("%w: %d", ErrInvalidContentLength, n)
		default:
			contentLength = n
		}
	}

	req.Body = make([]byte, contentLength)
	if _, err := io.ReadFull(reader, req.Body); err != nil {
		return err
	}

	return nil
}
