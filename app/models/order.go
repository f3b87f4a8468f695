package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusConfirmed is the only status an order ever has.
const OrderStatusConfirmed = "confirmed"

// Order is a placed order. TotalAmount is stored as supplied by the caller;
// it is never derived from Items.
type Order struct {
	ID              uint            `gorm:"primaryKey"                     json:"id"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(20,2);not null"    json:"total_amount"`
	ShippingAddress string          `gorm:"size:300;not null"              json:"shipping_address"`
	Status          string          `gorm:"size:20;not null;default:confirmed" json:"status"`
	CreatedAt       time.Time       `gorm:"index"                          json:"created_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// OrderItem is one line of an order. ProductID is not checked against the
// catalog.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"                  json:"id"`
	OrderID   uint            `gorm:"not null;index"              json:"order_id"`
	ProductID uint            `gorm:"not null"                    json:"product_id"`
	Quantity  int             `gorm:"not null"                    json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"price"`
}

// CartItem is a line of a checkout request. Name is accepted for the
// client's convenience and ignored.
type CartItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Checkout is the body of POST /api/checkout.
type Checkout struct {
	ShippingAddress string          `json:"shipping_address"`
	CartTotal       decimal.Decimal `json:"cart_total"`
	Items           []CartItem      `json:"items"`
}
