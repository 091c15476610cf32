// Package http implements a small HTTP/1.1 server engine on top of raw
// stream sockets: request parsing, response writing (fixed-length or
// chunked), routing with static file paths, and per-connection keep-alive.
package http

const (
	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096
)

const (
	crlf       = "\r\n"
	doubleCRLF = "\r\n\r\n"
)

// Handler serves one request/response exchange. The handler owns the
// response until it finalizes it with Send or End; a handler that returns
// without finalizing gets an implicit End from the connection loop.
type Handler func(req *Request, res *Response)

// StaticHandler serves a file that was resolved through a static path.
type StaticHandler func(path string, res *Response)
