package controllers

import (
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Index handles GET /api/orders, newest first.
func (h *OrderController) Index(c *ctx.Context) {
	orders, err := h.orders.List(c.Context())
	if err != nil {
		fail(c, err, "Error fetching orders: ")
		return
	}
	c.OK(orders)
}

// Show handles GET /api/orders/{id}.
func (h *OrderController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		c.NotFound("Not Found")
		return
	}
	order, err := h.orders.Get(c.Context(), id)
	if err != nil {
		fail(c, err, "Error fetching order: ")
		return
	}
	c.OK(order)
}

// Items handles GET /api/orders/{id}/items.
func (h *OrderController) Items(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		c.NotFound("Not Found")
		return
	}
	items, err := h.orders.Items(c.Context(), id)
	if err != nil {
		fail(c, err, "Error fetching order items: ")
		return
	}
	c.OK(items)
}
