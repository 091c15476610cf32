package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wazahm/shale/filesystem"
	"github.com/wazahm/shale/mime"
)

// ResponseState tracks header commitment. Transitions only move forward:
// Unsent -> HeadersCommitted -> Finalized.
type ResponseState uint8

const (
	ResponseUnsent ResponseState = iota
	ResponseHeadersCommitted
	ResponseFinalized
)

// Response writes one HTTP/1.1 response to the socket it is bound to.
//
// A response emits its body in exactly one of two framings: Send writes a
// Content-Length delimited body and finalizes in one call, while Write
// emits chunked-transfer chunks until End appends the zero-length
// terminator. The two are mutually exclusive per response; Send after any
// header commitment returns ErrHeaderSent.
type Response struct {
	Headers Headers

	status  uint16
	reason  string
	state   ResponseState
	chunked bool

	writer *bufio.Writer
	conn   net.Conn
	fs     filesystem.Filesystem
}

// NewResponse binds a response to a writer, usually the connection the
// request arrived on. The Connection header mirrors the request's
// keep-alive preference; with no request (or no preference) it is close.
func NewResponse(w io.Writer, req *Request) *Response {
	res := &Response{
		Headers: make(Headers),
		status:  StatusOK,
		reason:  StatusReason(StatusOK),
		writer:  bufio.NewWriterSize(w, DefaultWriteBufferSize),
		fs:      filesystem.NewLocalFileSystem(),
	}
	if conn, ok := w.(net.Conn); ok {
		res.conn = conn
	}
	if req != nil && req.KeepAlive() {
		res.Headers.Set("Connection", "keep-alive")
	} else {
		res.Headers.Set("Connection", "close")
	}
	return res
}

func (res *Response) State() ResponseState {
	return res.state
}

func (res *Response) Finalized() bool {
	return res.state == ResponseFinalized
}

func (res *Response) StatusCode() uint16 {
	return res.status
}

// Status sets the status code and looks up its reason phrase. Like all
// header mutations it is a no-op once headers are committed.
func (res *Response) Status(code uint16) *Response {
	if res.state != ResponseUnsent {
		return res
	}
	res.status = code
	res.reason = StatusReason(code)
	return res
}

// StatusMessage overrides the reason phrase chosen by Status.
func (res *Response) StatusMessage(message string) *Response {
	if res.state != ResponseUnsent {
		return res
	}
	res.reason = message
	return res
}

func (res *Response) ContentType(value string) *Response {
	return res.SetHeader("Content-Type", value)
}

func (res *Response) SetHeader(name, value string) *Response {
	if res.state != ResponseUnsent {
		return res
	}
	res.Headers.Set(name, value)
	return res
}

func (res *Response) DelHeader(name string) *Response {
	if res.state != ResponseUnsent {
		return res
	}
	res.Headers.Del(name)
	return res
}

func (res *Response) sendHeader() error {
	if _, err := fmt.Fprintf(res.writer, "HTTP/1.1 %d %s%s", res.status, res.reason, crlf); err != nil {
		return err
	}
	for name, value := range res.Headers {
		if name == "" || value == "" {
			continue
		}
		if _, err := fmt.Fprintf(res.writer, "%s: %s%s", name, value, crlf); err != nil {
			return err
		}
	}
	if _, err := res.writer.WriteString(crlf); err != nil {
		return err
	}
	res.state = ResponseHeadersCommitted
	return nil
}

// Write emits data as one chunk. The first call sets Transfer-Encoding:
// chunked and commits the headers. The zero-length terminator is written
// by End, never by Write.
func (res *Response) Write(data []byte) error {
	if res.state == ResponseFinalized {
		return ErrResponseFinalized
	}
	if res.state == ResponseUnsent {
		res.Headers.Set("Transfer-Encoding", "chunked")
		if err := res.sendHeader(); err != nil {
			return err
		}
	}
	res.chunked = true
	if len(data) == 0 {
		// A zero-length chunk reads as the terminator; only End emits it.
		return nil
	}
	if _, err := fmt.Fprintf(res.writer, "%X%s", len(data), crlf); err != nil {
		return err
	}
	if _, err := res.writer.Write(data); err != nil {
		return err
	}
	if _, err := res.writer.WriteString(crlf); err != nil {
		return err
	}
	return nil
}

// Send emits data as a fixed-length body and finalizes the response. It
// is only legal while the headers are uncommitted.
func (res *Response) Send(data []byte) error {
	if res.state == ResponseFinalized {
		return ErrResponseFinalized
	}
	if res.state != ResponseUnsent {
		return ErrHeaderSent
	}
	res.Headers.Set("Content-Length", strconv.Itoa(len(data)))
	if err := res.sendHeader(); err != nil {
		return err
	}
	if _, err := res.writer.Write(data); err != nil {
		return err
	}
	return res.finish()
}

// End finalizes the response: commits headers if needed, terminates a
// chunked body, flushes, and half-closes the socket when the negotiated
// Connection header is close.
func (res *Response) End() error {
	if res.state == ResponseFinalized {
		return ErrResponseFinalized
	}
	if res.state == ResponseUnsent {
		if err := res.sendHeader(); err != nil {
			return err
		}
	}
	if res.chunked {
		if _, err := res.writer.WriteString("0" + doubleCRLF); err != nil {
			return err
		}
	}
	return res.finish()
}

func (res *Response) finish() error {
	res.state = ResponseFinalized
	if err := res.writer.Flush(); err != nil {
		return err
	}
	if strings.EqualFold(res.Headers.Get("Connection"), "close") {
		if conn, ok := res.conn.(interface{ CloseWrite() error }); ok {
			return conn.CloseWrite()
		}
	}
	return nil
}

// Redirect responds 302 with a Location header.
func (res *Response) Redirect(location string) error {
	res.Status(StatusFound).SetHeader("Location", location)
	return res.End()
}

// Json encodes payload and sends it as a fixed-length body.
func (res *Response) Json(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	res.ContentType("application/json")
	return res.Send(data)
}

// SendFile reads the file at path and sends it with a content type
// inferred from the file extension.
func (res *Response) SendFile(path string) error {
	isFile, err := res.fs.IsFile(path)
	if err != nil {
		return err
	}
	if !isFile {
		return fmt.Errorf("%w: %s", filesystem.ErrFileNotFound, path)
	}

	res.ContentType(mime.TypeByPath(path))

	data, err := res.fs.ReadFile(path)
	if err != nil {
		return err
	}
	return res.Send(data)
}

// Download sends the file as an attachment named after its basename.
func (res *Response) Download(path string) error {
	res.SetHeader("Content-Disposition", "attachment; filename="+filepath.Base(path))
	return res.SendFile(path)
}
