package service

import (
	"microservice/config"
	"time"

	"github.com/buaazp/fasthttprouter"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	maxBodySize = 1 << 20 // 1 MB

	requestIDHeader = "X-Request-Id"
	maxRequestIDLen = 128
)

var greetingPaths = []string{"/", "/microservice", "/microservice/"}

func NewServer(config *config.Config) *fasthttp.Server {
	router := newRouter(config.Message, time.Now)
	s := &fasthttp.Server{
		Handler: accessLog(router.Handler),

		Logger:             zap.NewStdLog(zap.L().Named("fasthttp")),
		MaxRequestBodySize: maxBodySize,
		ReadTimeout:        config.ServerConfig.ReadTimeout,
		WriteTimeout:       config.ServerConfig.WriteTimeout,
		IdleTimeout:        config.ServerConfig.IdleTimeout,
		Concurrency:        config.ServerConfig.Concurrency,
	}

	return s
}

// newRouter builds the route table. Anything not registered here gets the
// router's plain 404.
func newRouter(message string, now func() time.Time) *fasthttprouter.Router {
	g := &greeter{message: message, now: now}

	r := fasthttprouter.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false
	r.PanicHandler = panicHandler

	for _, path := range greetingPaths {
		r.GET(path, g.greet)
		r.HEAD(path, g.greet)
	}

	r.GET("/healthz", healthCheckHandler)
	r.HEAD("/healthz", healthCheckHandler)

	return r
}

// accessLog tags every response with a request id and logs it at debug level.
func accessLog(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		requestID := string(ctx.Request.Header.Peek(requestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		next(ctx)

		// set after the handler, ctx.Error resets response headers
		ctx.Response.Header.Set(requestIDHeader, requestID)

		zap.L().Debug("request served",
			zap.String("request_id", requestID),
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(start)))
	}
}
