package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

const productsAllKey = "products:all"

func productKey(id uint) string { return fmt.Sprintf("products:%d", id) }

// CatalogService serves the product catalog, reading through an optional
// cache. Products never change after seeding, so cached entries are only
// expired by TTL.
type CatalogService struct {
	products *repositories.ProductRepository
	cache    cache.Store
	ttl      time.Duration
}

// NewCatalogService builds the service. A nil store disables caching.
func NewCatalogService(products *repositories.ProductRepository, store cache.Store, ttl time.Duration) *CatalogService {
	if store == nil {
		store = cache.Nop{}
	}
	return &CatalogService{products: products, cache: store, ttl: ttl}
}

// List returns every product in id order.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if s.cache.Get(ctx, productsAllKey, &cached) {
		return cached, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	s.remember(ctx, productsAllKey, products)
	return products, nil
}

// Get returns one product or a *NotFoundError.
func (s *CatalogService) Get(ctx context.Context, id uint) (models.Product, error) {
	var cached models.Product
	if s.cache.Get(ctx, productKey(id), &cached) {
		return cached, nil
	}

	product, err := s.products.Find(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &NotFoundError{Resource: "Product", ID: id}
	}
	if err != nil {
		return models.Product{}, err
	}

	s.remember(ctx, productKey(id), product)
	return product, nil
}

func (s *CatalogService) remember(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logger.WithCtx(ctx).Warn("catalog: cache write failed", "key", key, "error", err)
	}
}
