// Package middleware provides the storefront's HTTP middleware.
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/shashiranjanraj/storefront/pkg/response"
)

// bucket tracks a fixed-window request count for one client IP.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

func (b *bucket) expired(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.After(b.resetAt)
}

type limiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	buckets  map[string]*bucket
	lastScan time.Time
}

func (l *limiter) get(ip string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastScan) > l.window {
		for key, b := range l.buckets {
			if b.expired(now) {
				delete(l.buckets, key)
			}
		}
		l.lastScan = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{resetAt: now.Add(l.window)}
		l.buckets[ip] = b
	}
	return b
}

// RateLimit limits each client IP to max requests per window. A max of zero
// or less disables limiting.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return rateLimit(max, window, time.Now)
}

func rateLimit(max int, window time.Duration, now func() time.Time) func(http.Handler) http.Handler {
	if max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	l := &limiter{max: max, window: window, now: now, buckets: map[string]*bucket{}}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.get(clientIP(r)).allow(l.max, l.window, l.now()) {
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the connection's peer address without port. Forwarding
// headers are client-controlled and ignored; behind a trusted proxy, mount
// chi's middleware.RealIP ahead of the limiter to rewrite RemoteAddr.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
