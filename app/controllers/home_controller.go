package controllers

import "github.com/shashiranjanraj/storefront/pkg/ctx"

// HomeController serves the liveness and index endpoints.
type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Health reports that the process is up. It does not touch the database.
func (h *HomeController) Health(c *ctx.Context) {
	c.OK(map[string]string{
		"status":      "Backend is running!",
		"api_version": "1.0",
	})
}

// Root lists the main endpoints.
func (h *HomeController) Root(c *ctx.Context) {
	c.OK(map[string]interface{}{
		"message": "Storefront API",
		"endpoints": []string{
			"GET /api/products - Get all products",
			"GET /api/products/{id} - Get one product",
			"POST /api/checkout - Place order",
			"GET /api/orders - Order history",
			"GET /api/orders/{id} - Get one order",
		},
	})
}
