package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"

	"github.com/wazahm/shale/http"
	"github.com/wazahm/shale/telemetry"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const name = "github.com/wazahm/shale"

var (
	tracer     = otel.Tracer(name)
	meter      = otel.Meter(name)
	logger     = otelslog.NewLogger(name)
	requestCnt metric.Int64Counter
)

type helloRequest struct {
	Name string `json:"name"`
}

type helloResponse struct {
	Message string `json:"message"`
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, "shale")
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Printf("Telemetry shutdown: %v", err)
		}
	}()

	requestCnt, err = meter.Int64Counter("shale.requests",
		metric.WithDescription("The number of requests served"),
		metric.WithUnit("{request}"))
	if err != nil {
		return err
	}

	server := http.NewServer("shale")
	server.Logger = logger
	server.Router.Middleware = append(server.Router.Middleware,
		http.RecoverMiddleware(),
		traceRequests(),
		http.LoggingMiddleware(logger),
	)

	server.Router.Static("/public", "public")

	server.Router.GET("/", func(req *http.Request, res *http.Response) {
		if err := res.Redirect("/hi"); err != nil {
			logger.Error("redirect failed", "error", err)
		}
	})

	server.Router.GET("/hi", func(req *http.Request, res *http.Response) {
		res.ContentType("text/html")
		if err := res.Status(http.StatusOK).Send([]byte("<h1>Hello!</h1>")); err != nil {
			logger.Error("send failed", "error", err)
		}
	})

	server.Router.GET("/hello-world", func(req *http.Request, res *http.Response) {
		handler := func() error {
			res.Status(http.StatusOK)
			if err := res.Write([]byte("Hello ")); err != nil {
				return err
			}
			if err := res.Write([]byte("World")); err != nil {
				return err
			}
			if err := res.Write([]byte("\r\n")); err != nil {
				return err
			}
			return res.End()
		}
		if err := handler(); err != nil {
			logger.Error("chunked write failed", "error", err)
		}
	})

	server.Router.GET("/hello", func(req *http.Request, res *http.Response) {
		if err := res.Json(helloResponse{Message: "Hello"}); err != nil {
			logger.Error("json response failed", "error", err)
		}
	})

	server.Router.POST("/hello", func(req *http.Request, res *http.Response) {
		var hello helloRequest
		if err := json.Unmarshal(req.Body, &hello); err != nil {
			if err := res.Status(http.StatusBadRequest).End(); err != nil {
				logger.Error("bad request response failed", "error", err)
			}
			return
		}

		if err := res.Json(helloResponse{Message: "Hi, " + hello.Name + "!"}); err != nil {
			logger.Error("json response failed", "error", err)
		}
	})

	server.Router.GET("/file/json", func(req *http.Request, res *http.Response) {
		if err := res.SendFile("public/test.json"); err != nil {
			logger.Error("send file failed", "error", err)
		}
	})

	server.Router.GET("/download", func(req *http.Request, res *http.Response) {
		if err := res.Download("public/report.pdf"); err != nil {
			logger.Error("download failed", "error", err)
		}
	})

	serverErrCh := make(chan error, 1)

	go func() {
		logger.Info("listening and serving", "ip", "0.0.0.0", "port", 3000)
		serverErrCh <- server.Run("0.0.0.0", 3000)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(ctx)
}

func traceRequests() http.Middleware {
	return func(next http.Handler) http.Handler {
		return func(req *http.Request, res *http.Response) {
			ctx, span := tracer.Start(context.Background(), req.Method.String()+" "+req.URL)
			defer span.End()

			next(req, res)

			methodAttr := attribute.String("http.request.method", req.Method.String())
			span.SetAttributes(methodAttr,
				attribute.String("url.path", req.URL),
				attribute.Int("http.response.status_code", int(res.StatusCode())),
			)
			requestCnt.Add(ctx, 1, metric.WithAttributes(methodAttr))
		}
	}
}
