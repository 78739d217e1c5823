package service

import (
	"context"
	"fmt"
	"microservice/config"
	"net"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Run serves config's routes on ln until ctx is cancelled. The startup line
// is the service's one observable side effect and is logged at info level,
// which config.Validate keeps enabled.
func Run(ctx context.Context, config *config.Config, ln net.Listener) error {
	server := NewServer(config)

	zap.L().Info("Microservice running on port "+config.ListenPort, zap.String("addr", ln.Addr().String()))

	return Serve(ctx, server, ln, config.ServerConfig.ShutdownTimeout)
}

// Serve runs s on ln until ctx is cancelled, then stops accepting new
// connections and waits up to shutdownTimeout for open ones to finish.
func Serve(ctx context.Context, s *fasthttp.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		zap.L().Info("terminating: context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return <-errCh
}
