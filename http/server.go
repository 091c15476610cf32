package http

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wazahm/shale/filesystem"
)

// NotFoundHandler answers requests that matched neither an endpoint nor a
// static path.
var NotFoundHandler Handler = func(req *Request, res *Response) {
	if err := res.Status(StatusNotFound).End(); err != nil {
		slog.Error("http: writing not-found response failed", "error", err)
	}
}

// Server accepts connections and runs the per-connection request loop.
// One goroutine is spawned per accepted connection with no upper bound;
// connection count is limited only by the runtime. Router and FS must not
// change once serving starts.
type Server struct {
	Name   string
	Router *Router
	Logger *slog.Logger
	FS     filesystem.Filesystem

	// IdleTimeout bounds the wait for the next request on a kept-alive
	// connection. Zero means wait forever.
	IdleTimeout time.Duration

	listener net.Listener
}

func NewServer(name string) *Server {
	return &Server{
		Name:   name,
		Router: NewRouter(),
		Logger: slog.Default(),
		FS:     filesystem.NewLocalFileSystem(),
	}
}

// Run listens on ip:port and serves until the listener fails.
func (server *Server) Run(ip string, port uint16) error {
	return server.ListenAndServe(net.JoinHostPort(ip, strconv.Itoa(int(port))))
}

func (server *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return server.Serve(listener)
}

func (server *Server) Serve(listener net.Listener) error {
	server.listener = listener

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			server.Logger.Error("http: accepting connection failed", "error", err)
			continue
		}

		go server.ServeConn(conn)
	}
}

// ServeConn runs the request loop for one connection: parse, dispatch,
// write, then loop while the request asked for keep-alive. Failures here
// only ever terminate this connection.
func (server *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	logger := server.Logger.With("conn", uuid.NewString(), "remote", conn.RemoteAddr().String())
	reader := bufio.NewReaderSize(conn, DefaultReadBufferSize)

	for {
		var req Request
		if err := req.Parse(reader); err != nil {
			if err != io.EOF {
				// Protocol violations close the connection without a
				// response; the peer sees the close, not a 400.
				logger.Error("http: request parse failed", "error", err)
			}
			return
		}

		res := NewResponse(conn, &req)
		res.fs = server.FS

		handler := NotFoundHandler
		if endpointHandler, found := server.Router.resolveEndpoint(req.Method, req.URL); found {
			handler = endpointHandler
		} else if target, found := server.Router.resolveStatic(server.FS, req.URL); found {
			staticHandler := server.Router.StaticHandler
			handler = func(req *Request, res *Response) {
				staticHandler(target, res)
			}
		}

		for i := len(server.Router.Middleware) - 1; i >= 0; i-- {
			handler = server.Router.Middleware[i](handler)
		}

		handler(&req, res)

		if !res.Finalized() {
			if err := res.End(); err != nil {
				logger.Error("http: finalizing response failed", "error", err)
				return
			}
		}

		if !req.KeepAlive() {
			return
		}

		if server.IdleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(server.IdleTimeout)); err != nil {
				return
			}
		}
	}
}

// Shutdown stops accepting connections. Exchanges already in flight run
// to completion on their own goroutines.
func (server *Server) Shutdown(ctx context.Context) error {
	if server.listener == nil {
		return nil
	}
	return server.listener.Close()
}
