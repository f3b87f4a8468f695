package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
)

// OrderService reads order history.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService(orders *repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// List returns every order, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// Get returns one order or a *NotFoundError.
func (s *OrderService) Get(ctx context.Context, id uint) (models.Order, error) {
	order, err := s.orders.Find(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, &NotFoundError{Resource: "Order", ID: id}
	}
	return order, err
}

// Items returns the line items of an existing order.
func (s *OrderService) Items(ctx context.Context, id uint) ([]models.OrderItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.orders.Items(ctx, id)
}
