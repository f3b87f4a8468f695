// Package grpc serves the standard gRPC health service for the storefront.
//
// The health status follows a Checker, normally a database ping, so load
// balancers stop routing to an instance that has lost its store.
//
//	srv, err := grpc.Start(config.GRPCPort(), func(ctx context.Context) error {
//	    return sqlDB.PingContext(ctx)
//	})
//	// ...run until signal...
//	grpc.Stop(srv)
package grpc

import (
	"context"
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "grpc",
		Name:      "handled_total",
		Help:      "Total number of gRPC calls completed by method and code.",
	}, []string{"grpc_method", "grpc_code"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: "grpc",
		Name:      "handling_seconds",
		Help:      "Histogram of gRPC response latency in seconds.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"grpc_method"})
)

func init() {
	metrics.MustRegister(requestsTotal, requestDuration)
}

// Checker reports whether the service can do useful work.
type Checker func(ctx context.Context) error

const checkTimeout = 2 * time.Second

// recoveryInterceptor turns a panic in a handler into codes.Internal.
func recoveryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("grpc: panic recovered",
				"method", info.FullMethod,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}

// observeInterceptor logs each unary call and records its metrics.
func observeInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	dur := time.Since(start)

	code := status.Code(err)
	requestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
	requestDuration.WithLabelValues(info.FullMethod).Observe(dur.Seconds())

	logger.Debug("grpc: request",
		"method", info.FullMethod,
		"duration_ms", dur.Milliseconds(),
		"code", code.String(),
	)
	return resp, err
}

// healthServer implements grpc_health_v1.HealthServer.
type healthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	check Checker
}

// NewHealthServer returns a health service backed by check. A nil check
// always reports SERVING.
func NewHealthServer(check Checker) grpc_health_v1.HealthServer {
	return &healthServer{check: check}
}

func (h *healthServer) status(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if h.check == nil {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	if err := h.check(ctx); err != nil {
		logger.Warn("grpc: health check failed", "error", err)
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}

func (h *healthServer) Check(
	ctx context.Context,
	_ *grpc_health_v1.HealthCheckRequest,
) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{Status: h.status(ctx)}, nil
}

func (h *healthServer) Watch(
	_ *grpc_health_v1.HealthCheckRequest,
	stream grpc_health_v1.Health_WatchServer,
) error {
	return stream.Send(&grpc_health_v1.HealthCheckResponse{Status: h.status(stream.Context())})
}

// NewServer builds a gRPC server with the interceptors and health service
// registered, without listening.
func NewServer(check Checker) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(recoveryInterceptor, observeInterceptor),
		grpc.MaxRecvMsgSize(4*1024*1024),
		grpc.MaxSendMsgSize(4*1024*1024),
	)
	grpc_health_v1.RegisterHealthServer(srv, NewHealthServer(check))
	// Reflection lets grpcurl work without proto files.
	reflection.Register(srv)
	return srv
}

// Start listens on port and serves in the background.
func Start(port string, check Checker) (*grpc.Server, error) {
	addr := ":" + port

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("grpc: listen on %s: %w", addr, err)
	}

	srv := NewServer(check)
	logger.Info("gRPC server starting", "addr", addr)

	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc: serve error", "error", err)
		}
	}()

	return srv, nil
}

// Stop gracefully shuts down the gRPC server, waiting for in-flight RPCs.
func Stop(srv *grpc.Server) {
	if srv == nil {
		return
	}
	logger.Info("gRPC server shutting down")
	srv.GracefulStop()
}
