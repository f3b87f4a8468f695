// Package server runs the HTTP listener, and the gRPC health server when a
// port is configured, until the context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/shashiranjanraj/storefront/pkg/grpc"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// Options configure Run.
type Options struct {
	Addr            string // e.g. ":8000"
	GRPCPort        string // empty disables gRPC
	Health          grpc.Checker
	ShutdownTimeout time.Duration // default 10s
}

// Run listens on opts.Addr and serves handler until ctx is done, then shuts
// down gracefully.
func Run(ctx context.Context, handler http.Handler, opts Options) error {
	lis, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", opts.Addr, err)
	}
	return Serve(ctx, lis, handler, opts)
}

// Serve is Run on an existing listener. It closes lis.
func Serve(ctx context.Context, lis net.Listener, handler http.Handler, opts Options) error {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if opts.GRPCPort != "" {
		grpcSrv, err := grpc.Start(opts.GRPCPort, opts.Health)
		if err != nil {
			_ = lis.Close()
			return err
		}
		defer grpc.Stop(grpcSrv)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", lis.Addr().String())
		errCh <- srv.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
