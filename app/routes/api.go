package routes

import (
	"fmt"

	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/app/graph"
	"github.com/shashiranjanraj/storefront/app/providers"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
	"github.com/shashiranjanraj/storefront/pkg/graphql"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// RegisterAPI mounts every storefront route on r.
func RegisterAPI(r *router.Router, c *providers.Container) error {
	home := controllers.NewHomeController()
	products := controllers.NewProductController(c.Catalog)
	checkout := controllers.NewCheckoutController(c.Checkout)
	orders := controllers.NewOrderController(c.History)

	r.Get("/health", "health", ctx.Wrap(home.Health))
	r.Get("/", "home", ctx.Wrap(home.Root))

	api := r.Group("/api")
	api.Get("/products", "products.index", ctx.Wrap(products.Index))
	api.Get("/products/{id:[0-9]+}", "products.show", ctx.Wrap(products.Show))
	api.Post("/checkout", "checkout.store", ctx.Wrap(checkout.Store))
	api.Get("/orders", "orders.index", ctx.Wrap(orders.Index))
	api.Get("/orders/{id:[0-9]+}", "orders.show", ctx.Wrap(orders.Show))
	api.Get("/orders/{id:[0-9]+}/items", "orders.items", ctx.Wrap(orders.Items))

	schema, err := graph.Schema(c.Catalog, c.History)
	if err != nil {
		return fmt.Errorf("routes: graphql schema: %w", err)
	}
	gql := graphql.Handler(schema)
	r.Get("/graphql", "graphql.query", gql)
	r.Post("/graphql", "graphql.post", gql)

	if c.Feed != nil {
		r.Get("/ws/orders", "ws.orders", c.Feed.ServeHTTP)
	}
	return nil
}
