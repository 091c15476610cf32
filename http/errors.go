package http

import "errors"

var (
	// Parse failures. A connection that produces one of these is closed
	// without a response.
	ErrIncompleteHeader     = errors.New("http: connection closed before header was complete")
	ErrMalformedRequestLine = errors.New("http: malformed request line")
	ErrInvalidEncoding      = errors.New("http: header is not valid utf-8")
	ErrInvalidContentLength = errors.New("http: invalid content-length")

	// Response misuse. Returned to the handler, never fatal to the server.
	ErrHeaderSent        = errors.New("http: header already sent")
	ErrResponseFinalized = errors.New("http: response already finalized")
)
