package app

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// KernelOptions tune the global middleware.
type KernelOptions struct {
	CORSOrigins        []string
	RateLimitPerMinute int // 0 disables rate limiting
}

// DefaultKernelOptions reads the options from config.
func DefaultKernelOptions() KernelOptions {
	return KernelOptions{
		CORSOrigins:        config.CORSAllowedOrigins(),
		RateLimitPerMinute: config.RateLimitPerMinute(),
	}
}

// Handler builds the full HTTP handler.
func (a *Application) Handler() (http.Handler, error) {
	r, err := buildRouter(a)
	if err != nil {
		return nil, err
	}
	return r.Handler(), nil
}

func buildRouter(a *Application) (*router.Router, error) {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics (outermost, sees total latency)
	//  2. Recovery
	//  3. Request ID, before anything logs
	//  4. Logger
	//  5. CORS
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(a.opts.CORSOrigins)))
	r.Use(middleware.RateLimit(a.opts.RateLimitPerMinute, time.Minute))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// Prometheus /metrics endpoint.
	r.HandleFunc("/metrics", metrics.Handler())

	for _, fn := range a.routesFns {
		if err := fn(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}
