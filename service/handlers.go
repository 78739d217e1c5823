package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"microservice/types"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	timestampLayout = "2006-01-02T15:04:05.000Z"

	contentTypeJSON  = "application/json; charset=utf-8"
	contentTypePlain = "text/plain; charset=utf-8"
)

var ErrInternal = errors.New("internal error")

type greeter struct {
	message string
	now     func() time.Time
}

// healthz godoc
//
//	@Summary		health check
//	@Description	liveness probe for orchestration tooling
//	@Tags			health
//	@Produce		plain
//	@Success		200	{string}	string	"ok"
//	@Router			/healthz [get]
func healthCheckHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypePlain)
	ctx.WriteString("ok")
}

// greet godoc
//
//	@Summary		greeting
//	@Description	configured message with the current time and the requested host
//	@Tags			greeting
//	@Produce		json
//	@Success		200	{object}	types.Greeting
//	@Failure		500	{object}	types.HTTPError
//	@Router			/ [get]
//	@Router			/microservice [get]
//	@Router			/microservice/ [get]
func (g *greeter) greet(ctx *fasthttp.RequestCtx) {
	greeting := types.Greeting{
		Message:   g.message,
		Timestamp: g.now().UTC().Format(timestampLayout),
		Hostname:  hostname(ctx.Request.Header.Host()),
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeJSON)
	if err := json.NewEncoder(ctx).Encode(greeting); err != nil {
		zap.L().Error("encode greeting", zap.Error(err))
	}
}

// hostname strips the port from a Host header value. Bracketed IPv6
// literals keep their brackets.
func hostname(host []byte) string {
	offset := 0
	if len(host) > 0 && host[0] == '[' {
		offset = bytes.IndexByte(host, ']') + 1
	}

	if i := bytes.IndexByte(host[offset:], ':'); i >= 0 {
		return string(host[:offset+i])
	}

	return string(host)
}

func panicHandler(ctx *fasthttp.RequestCtx, rcv interface{}) {
	zap.L().Error("handler panicked",
		zap.Any("panic", rcv),
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()))
	ctx.ResetBody()
	handleError(ctx, ErrInternal, fasthttp.StatusInternalServerError)
}

func handleError(ctx *fasthttp.RequestCtx, err error, status int) {
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	if encErr := json.NewEncoder(ctx).Encode(types.HTTPError{
		Error: err.Error(),
	}); encErr != nil {
		zap.L().Error("encode error response", zap.Error(encErr))
	}
}
