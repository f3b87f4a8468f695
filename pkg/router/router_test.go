package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/router"
)

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestGroupsAndNamedRoutes(t *testing.T) {
	r := router.New()
	api := r.Group("/api/")
	api.Get("/orders", "orders.index", ok("index"))
	api.Get("/orders/{id:[0-9]+}", "orders.show", ok("show"))
	r.Get("health", "health", ok("up"))

	path, found := r.Path("orders.show")
	require.True(t, found)
	assert.Equal(t, "/api/orders/{id:[0-9]+}", path)

	url, err := r.URL("orders.show", map[string]string{"id": "12"})
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/12", url)

	_, err = r.URL("orders.show", nil)
	assert.Error(t, err)
	_, err = r.URL("missing", nil)
	assert.Error(t, err)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/12", nil))
	assert.Equal(t, "show", rec.Body.String())

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "up", rec.Body.String())
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Post("/api/checkout", "checkout", ok(""))
	r.Get("/api/checkout", "", ok(""))
	r.Get("/", "home", ok(""))

	routes := r.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, router.RouteInfo{Method: "GET", Path: "/", Name: "home"}, routes[0])
	assert.Equal(t, "GET", routes[1].Method)
	assert.Equal(t, "POST", routes[2].Method)
}

func TestGroupMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	g := r.Group("/api", mw("group")).Group("/v1", mw("nested"))
	g.Get("/ping", "ping", ok("pong"), mw("route"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, []string{"group", "nested", "route"}, order)
}
