package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// EventOrderPlaced is fired with an OrderPlaced payload after a checkout
// commits.
const EventOrderPlaced = "order.placed"

const minAddressLen = 5

// Money is stored as decimal(20,2): whole cents, below 10^18.
const moneyPlaces = 2

var maxMoney = decimal.New(1, 18)

// Client-facing validation messages.
const (
	MsgAddressRequired  = "Shipping address is required (min 5 chars)"
	MsgTotalNotPositive = "Cart total must be greater than 0"
	MsgTotalTooLarge    = "Cart total is too large"
	MsgPriceTooLarge    = "Item price is too large"
)

// OrderPlaced is the payload of EventOrderPlaced.
type OrderPlaced struct {
	Order models.Order
	Items []models.OrderItem
}

// CheckoutService turns a cart into a persisted order. The cart total is
// taken as supplied; it is never recomputed from the items or checked
// against catalog prices.
type CheckoutService struct {
	orders *repositories.OrderRepository
	events *event.Dispatcher
}

// NewCheckoutService builds the service. events may be nil.
func NewCheckoutService(orders *repositories.OrderRepository, events *event.Dispatcher) *CheckoutService {
	return &CheckoutService{orders: orders, events: events}
}

// Validate applies the checkout rules in order and returns the first
// failure as a *ValidationError. On success it returns req as it will be
// stored: the address trimmed, the total and item prices rounded to cents.
func (s *CheckoutService) Validate(req models.Checkout) (models.Checkout, error) {
	address := strings.TrimSpace(req.ShippingAddress)
	if utf8.RuneCountInString(address) < minAddressLen {
		metrics.CheckoutRejected.WithLabelValues("address").Inc()
		return models.Checkout{}, &ValidationError{Message: MsgAddressRequired}
	}

	total := req.CartTotal.Round(moneyPlaces)
	if !total.IsPositive() {
		metrics.CheckoutRejected.WithLabelValues("total").Inc()
		return models.Checkout{}, &ValidationError{Message: MsgTotalNotPositive}
	}
	if total.Abs().GreaterThanOrEqual(maxMoney) {
		metrics.CheckoutRejected.WithLabelValues("total").Inc()
		return models.Checkout{}, &ValidationError{Message: MsgTotalTooLarge}
	}

	items := make([]models.CartItem, len(req.Items))
	for i, it := range req.Items {
		it.Price = it.Price.Round(moneyPlaces)
		if it.Price.Abs().GreaterThanOrEqual(maxMoney) {
			metrics.CheckoutRejected.WithLabelValues("items").Inc()
			return models.Checkout{}, &ValidationError{Message: MsgPriceTooLarge}
		}
		items[i] = it
	}

	return models.Checkout{ShippingAddress: address, CartTotal: total, Items: items}, nil
}

// Place validates req, then writes the order and one line item per cart
// item in a single transaction. The returned order is re-read from the
// store after commit. Nothing is written when an error is returned.
func (s *CheckoutService) Place(ctx context.Context, req models.Checkout) (models.Order, error) {
	req, err := s.Validate(req)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		TotalAmount:     req.CartTotal,
		ShippingAddress: req.ShippingAddress,
		Status:          models.OrderStatusConfirmed,
	}
	items := collection.Map(req.Items, func(it models.CartItem) models.OrderItem {
		return models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	})

	if err := s.orders.Create(ctx, &order, items); err != nil {
		metrics.CheckoutRejected.WithLabelValues("store").Inc()
		return models.Order{}, err
	}

	placed, err := s.orders.Find(ctx, order.ID)
	if err != nil {
		// Committed but unreadable; report the fault rather than a guess.
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	logger.WithCtx(ctx).Info("checkout: order placed",
		"order_id", placed.ID,
		"total_amount", placed.TotalAmount.String(),
		"items", len(items),
	)

	if s.events != nil {
		s.events.FireAsync(EventOrderPlaced, OrderPlaced{Order: placed, Items: items})
	}
	return placed, nil
}
