package http

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/wazahm/shale/filesystem"
)

// Endpoint binds an exact (method, path) pair to a handler. Endpoints are
// immutable once registered.
type Endpoint struct {
	Method  Method
	Path    string
	Handler Handler
}

// StaticPath maps a URL prefix onto a filesystem root. The prefix always
// ends with a slash.
type StaticPath struct {
	Prefix string
	Root   string
}

// Router resolves requests against registered endpoints first and static
// paths second, both in registration order. It must not be mutated after
// the server starts serving; the connection goroutines read it without
// locking.
type Router struct {
	Endpoints     []Endpoint
	StaticPaths   []StaticPath
	StaticHandler StaticHandler
	Middleware    []Middleware
}

func NewRouter() *Router {
	return &Router{
		StaticHandler: func(path string, res *Response) {
			if err := res.SendFile(path); err != nil {
				slog.Error("http: serving static file failed", "path", path, "error", err)

				if res.State() == ResponseUnsent {
					if err := res.Status(StatusNotFound).End(); err != nil {
						slog.Error("http: writing not-found response failed", "error", err)
					}
				}
			}
		},
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) {
	router.Any(MethodGet, path, handler, middleware...)
}

func (router *Router) POST(path string, handler Handler, middleware ...Middleware) {
	router.Any(MethodPost, path, handler, middleware...)
}

func (router *Router) PUT(path string, handler Handler, middleware ...Middleware) {
	router.Any(MethodPut, path, handler, middleware...)
}

func (router *Router) DELETE(path string, handler Handler, middleware ...Middleware) {
	router.Any(MethodDelete, path, handler, middleware...)
}

func (router *Router) Any(method Method, path string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Endpoints = append(router.Endpoints, Endpoint{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// Group registers a set of endpoints under a shared path prefix.
func (router *Router) Group(prefix string, groupFunc func(group *Router), middlewareList ...Middleware) {
	group := NewRouter()

	groupFunc(group)

	for _, endpoint := range group.Endpoints {
		endpoint.Path = prefix + endpoint.Path
		for _, middleware := range middlewareList {
			endpoint.Handler = middleware(endpoint.Handler)
		}

		router.Endpoints = append(router.Endpoints, endpoint)
	}
}

// Static maps a URL prefix onto a filesystem root directory.
func (router *Router) Static(prefix, root string) {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	router.StaticPaths = append(router.StaticPaths, StaticPath{
		Prefix: prefix,
		Root:   root,
	})
}

// StaticServe overrides the default static file responder.
func (router *Router) StaticServe(handler StaticHandler) {
	router.StaticHandler = handler
}

func (router *Router) resolveEndpoint(method Method, path string) (Handler, bool) {
	for _, endpoint := range router.Endpoints {
		if endpoint.Method == method && endpoint.Path == path {
			return endpoint.Handler, true
		}
	}
	return nil, false
}

// resolveStatic walks the static paths in registration order and returns
// the first existing file target. A prefix whose target is missing, or
// whose target would escape its root, does not stop the walk.
func (router *Router) resolveStatic(fs filesystem.Filesystem, path string) (string, bool) {
	for _, staticPath := range router.StaticPaths {
		if !strings.HasPrefix(path, staticPath.Prefix) {
			continue
		}

		target := filepath.Join(staticPath.Root, path[len(staticPath.Prefix):])

		rel, err := filepath.Rel(staticPath.Root, target)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}

		exists, err := fs.FileExists(target)
		if err != nil || !exists {
			continue
		}

		return target, true
	}
	return "", false
}
