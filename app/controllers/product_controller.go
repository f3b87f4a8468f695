package controllers

import (
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Index handles GET /api/products.
func (h *ProductController) Index(c *ctx.Context) {
	products, err := h.catalog.List(c.Context())
	if err != nil {
		fail(c, err, "Error fetching products: ")
		return
	}
	c.OK(products)
}

// Show handles GET /api/products/{id}.
func (h *ProductController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		c.NotFound("Not Found")
		return
	}
	product, err := h.catalog.Get(c.Context(), id)
	if err != nil {
		fail(c, err, "Error fetching product: ")
		return
	}
	c.OK(product)
}
