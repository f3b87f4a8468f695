// Package logger provides the process-wide structured logger built on log/slog.
//
// Handlers should log through WithCtx so every line carries the request ID
// injected by the access-log middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID)
//	// → time=... level=INFO msg="order placed" request_id=7f0c... order_id=12
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/shashiranjanraj/storefront/config"
)

var L *slog.Logger

var (
	sinkMu sync.Mutex
	sink   *MongoHandler
)

func init() {
	L = slog.New(baseHandler(config.AppEnv()))
	slog.SetDefault(L)
}

// baseHandler is JSON in production and human-readable text everywhere else.
func baseHandler(env string) slog.Handler {
	switch env {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// EnableMongo fans every log record out to a MongoDB collection in addition
// to stdout. Call Close on shutdown to flush the queue.
func EnableMongo(uri, database, collection string) error {
	h, err := NewMongoHandler(uri, database, collection)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	sinkMu.Lock()
	sink = h
	sinkMu.Unlock()

	L = slog.New(NewMultiHandler(baseHandler(config.AppEnv()), h))
	slog.SetDefault(L)
	return nil
}

// Close flushes and disconnects the MongoDB sink, if one is enabled.
func Close() {
	sinkMu.Lock()
	h := sink
	sink = nil
	sinkMu.Unlock()

	if h != nil {
		h.Close()
	}
}

type ctxKey struct{}

// WithCtx returns the per-request logger stored in ctx, or the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped logger into ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
