// Package providers assembles the storefront's object graph from explicit
// dependencies. Nothing here is global.
package providers

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/listeners"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
	"github.com/shashiranjanraj/storefront/pkg/ws"
)

// Container holds every long-lived component a request may need.
type Container struct {
	DB     *gorm.DB
	Cache  cache.Store
	Events *event.Dispatcher
	Feed   *ws.Hub // nil disables /ws/orders

	Products *repositories.ProductRepository
	Orders   *repositories.OrderRepository

	Catalog  *services.CatalogService
	Checkout *services.CheckoutService
	History  *services.OrderService

	pool *workerpool.Pool
}

// Options are the optional parts of a Container.
type Options struct {
	Cache    cache.Store // nil means no caching
	CacheTTL time.Duration
	Feed     *ws.Hub
	Workers  int // order.placed listener workers, default 4
}

// New wires repositories, services and event listeners around db.
func New(db *gorm.DB, opts Options) *Container {
	store := opts.Cache
	if store == nil {
		store = cache.Nop{}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	pool := workerpool.New(workers)

	events := event.New(event.WithPool(pool))
	// A nil *ws.Hub must reach Register as a nil Publisher, not a typed nil.
	var feed listeners.Publisher
	if opts.Feed != nil {
		feed = opts.Feed
	}
	listeners.Register(events, feed)

	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)

	return &Container{
		DB:       db,
		Cache:    store,
		Events:   events,
		Feed:     opts.Feed,
		Products: products,
		Orders:   orders,
		Catalog:  services.NewCatalogService(products, store, opts.CacheTTL),
		Checkout: services.NewCheckoutService(orders, events),
		History:  services.NewOrderService(orders),
		pool:     pool,
	}
}

// Close waits for pending event listeners and stops their workers.
func (c *Container) Close() {
	c.Events.Wait()
	c.pool.Shutdown()
}
