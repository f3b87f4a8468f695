// Package graph defines the read-only GraphQL view of the catalog and order
// history.
package graph

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	pkggraphql "github.com/shashiranjanraj/storefront/pkg/graphql"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"category":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"image_url":   &graphql.Field{Type: graphql.String},
		"image_url2":  &graphql.Field{Type: graphql.String},
		"image_url3":  &graphql.Field{Type: graphql.String},
		"stock":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"product_id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"quantity":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"price":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

// Schema builds the schema over the given services.
func Schema(catalog *services.CatalogService, orders *services.OrderService) (graphql.Schema, error) {
	orderType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"total_amount":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"shipping_address": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"created_at":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"items": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(orderItemType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := p.Source.(map[string]interface{})["id"].(uint)
					items, err := orders.Items(p.Context, id)
					if err != nil {
						return nil, err
					}
					return collection.Map(items, orderItemFields), nil
				},
			},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					products, err := catalog.List(p.Context)
					if err != nil {
						return nil, err
					}
					return collection.Map(products, productFields), nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, err := catalog.Get(p.Context, uint(p.Args["id"].(int)))
					if errors.Is(err, services.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return productFields(product), nil
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(orderType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					list, err := orders.List(p.Context)
					if err != nil {
						return nil, err
					}
					return collection.Map(list, orderFields), nil
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					order, err := orders.Get(p.Context, uint(p.Args["id"].(int)))
					if errors.Is(err, services.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return orderFields(order), nil
				},
			},
		},
	})

	return pkggraphql.NewSchema(query)
}

func productFields(p models.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price.InexactFloat64(),
		"category":    p.Category,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"image_url2":  p.ImageURL2,
		"image_url3":  p.ImageURL3,
		"stock":       p.Stock,
	}
}

func orderFields(o models.Order) map[string]interface{} {
	return map[string]interface{}{
		"id":               o.ID,
		"total_amount":     o.TotalAmount.InexactFloat64(),
		"shipping_address": o.ShippingAddress,
		"status":           o.Status,
		"created_at":       o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func orderItemFields(it models.OrderItem) map[string]interface{} {
	return map[string]interface{}{
		"id":         it.ID,
		"product_id": it.ProductID,
		"quantity":   it.Quantity,
		"price":      it.Price.InexactFloat64(),
	}
}
