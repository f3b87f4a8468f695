// Package ctx provides a request context for storefront handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context:
//
//	func (c *ProductController) Show(cx *ctx.Context) {
//	    id, ok := cx.ParamUint("id")
//	    ...
//	    cx.OK(product)
//	}
//
//	router.Get("/api/products/{id}", "products.show", ctx.Wrap(c.Show))
package ctx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter (e.g. "/orders/{id}" → c.Param("id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamUint parses a numeric path parameter. ok is false when the value is
// missing, not a number, or out of range.
func (c *Context) ParamUint(key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// Query returns a query-string value. Returns "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

func (c *Context) Method() string { return c.R.Method }

func (c *Context) Path() string { return c.R.URL.Path }

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Log returns the request-scoped logger.
func (c *Context) Log() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// BindJSON decodes the JSON body into dest. On failure it sends a 400 and
// returns false.
//
//	var req CheckoutRequest
//	if !c.BindJSON(&req) {
//	    return
//	}
func (c *Context) BindJSON(dest any) bool {
	if err := bind.JSON(c.W, c.R, dest); err != nil {
		c.BadRequest(err.Error())
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes v as the response body with the given status code.
func (c *Context) JSON(code int, v any) {
	c.status = code
	response.JSON(c.W, code, v)
}

// OK sends v with status 200.
func (c *Context) OK(v any) {
	c.JSON(http.StatusOK, v)
}

// Error sends {"detail": message} with the given status.
func (c *Context) Error(code int, message string) {
	c.status = code
	response.Error(c.W, code, message)
}

func (c *Context) BadRequest(message string) {
	c.Error(http.StatusBadRequest, message)
}

func (c *Context) NotFound(message string) {
	c.Error(http.StatusNotFound, message)
}

func (c *Context) InternalError(message string) {
	c.Error(http.StatusInternalServerError, message)
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
