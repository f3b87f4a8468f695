package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/storefront/app/models"
)

// OrderRepository persists orders and their line items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts order and then items in one transaction. Each item's
// OrderID is set to the new order's id. If any insert fails nothing is
// committed and order.ID must not be trusted.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
}

// All returns every order, newest first. Orders created within the same
// clock tick are ordered by id, highest first.
func (r *OrderRepository) All(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&orders).Error
	return orders, err
}

// Find looks up an order by primary key. A missing row yields
// gorm.ErrRecordNotFound.
func (r *OrderRepository) Find(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	return order, err
}

// Items returns the line items of an order in insertion order.
func (r *OrderRepository) Items(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0)
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	return items, err
}

// Count returns the number of orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}
