package controllers

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Store handles POST /api/checkout and answers with the placed order.
func (h *CheckoutController) Store(c *ctx.Context) {
	var req models.Checkout
	if !c.BindJSON(&req) {
		return
	}

	order, err := h.checkout.Place(c.Context(), req)
	if err != nil {
		fail(c, err, "Error placing order: ")
		return
	}
	c.OK(order)
}
