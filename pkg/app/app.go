// Package app builds the storefront's HTTP kernel: the global middleware
// stack, the /metrics endpoint and the application routes.
//
//	handler, err := app.New().
//	    Routes(func(r *router.Router) error {
//	        return routes.RegisterAPI(r, container)
//	    }).
//	    Handler()
package app

import (
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// RoutesFunc registers routes on r.
type RoutesFunc func(r *router.Router) error

// Application collects route registrations and kernel options.
type Application struct {
	routesFns []RoutesFunc
	opts      KernelOptions
}

// New creates an Application whose kernel options come from config.
func New() *Application {
	return &Application{opts: DefaultKernelOptions()}
}

// Routes adds a route-registration callback. Callbacks run in the order
// they were added.
func (a *Application) Routes(fn RoutesFunc) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// WithOptions replaces the kernel options.
func (a *Application) WithOptions(opts KernelOptions) *Application {
	a.opts = opts
	return a
}

// Router builds the router with middleware and routes mounted.
func (a *Application) Router() (*router.Router, error) {
	return buildRouter(a)
}
