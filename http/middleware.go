package http

import (
	"log/slog"
	"time"
)

type Middleware func(next Handler) Handler

// RecoverMiddleware turns a handler panic into a 500 response when the
// headers are still uncommitted, and otherwise just terminates the
// exchange. The connection survives either way.
func RecoverMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			defer func() {
				if recovered := recover(); recovered != nil {
					slog.Error("http: handler panic", "url", req.URL, "panic", recovered)

					if res.State() == ResponseUnsent {
						if err := res.Status(StatusInternalServerError).End(); err != nil {
							slog.Error("http: writing panic response failed", "error", err)
						}
					}
				}
			}()

			next(req, res)
		}
	}
}

// LoggingMiddleware logs one line per served request.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			start := time.Now()

			next(req, res)

			logger.Info("http: request served",
				"method", req.Method.String(),
				"url", req.URL,
				"status", res.StatusCode(),
				"duration", time.Since(start),
			)
		}
	}
}
