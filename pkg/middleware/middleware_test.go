package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
)

var noop = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestRecoveryWritesFaultBody(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("database exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":true,"message":"database exploded","status_code":500}`, rec.Body.String())
}

func TestRecoveryPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	Recovery(noop).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoggerInjectsRequestLogger(t *testing.T) {
	var injected bool
	h := reqid.Middleware()(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		injected = logger.WithCtx(r.Context()) != logger.L
		w.WriteHeader(http.StatusCreated)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/checkout", nil))

	assert.True(t, injected)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCORSEchoesOriginWithCredentials(t *testing.T) {
	h := CORS(DefaultCORSOptions([]string{"http://localhost:3000", "*"}))(noop)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(DefaultCORSOptions([]string{"http://localhost:3000"}))(noop)

	req := httptest.NewRequest(http.MethodOptions, "/api/checkout", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	h := CORS(DefaultCORSOptions([]string{"http://localhost:3000"}))(noop)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := rateLimit(2, time.Minute, func() time.Time { return now })(noop)

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusTeapot, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTeapot, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTeapot, hit("10.0.0.2"))

	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusTeapot, hit("10.0.0.1"))
}

func TestRateLimitIgnoresForwardedFor(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := rateLimit(2, time.Minute, func() time.Time { return now })(noop)

	codes := make([]int, 0, 3)
	for _, fwd := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusTeapot, http.StatusTeapot, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	h := RateLimit(0, time.Minute)(noop)
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}
}
