package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
)

// ProductRepository reads the catalog. Products are never written outside
// the seeder.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns every product in id order.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}

// Find looks up a product by primary key. A missing row yields
// gorm.ErrRecordNotFound.
func (r *ProductRepository) Find(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	return product, err
}

// Count returns the number of products in the catalog.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}
