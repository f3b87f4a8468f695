// Package listeners reacts to domain events fired by the services.
package listeners

import (
	"encoding/json"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// Publisher is satisfied by *ws.Hub.
type Publisher interface {
	Publish(msg []byte) bool
}

// Register wires the order.placed listeners. feed may be nil.
func Register(d *event.Dispatcher, feed Publisher) {
	d.Listen(services.EventOrderPlaced, AuditOrder)
	if feed != nil {
		d.Listen(services.EventOrderPlaced, PublishOrder(feed))
	}
}

// AuditOrder writes one structured line per placed order, including the
// product ids and quantities of its items. The shipping address is left
// out; order_id links the line to the stored order.
func AuditOrder(payload interface{}) {
	placed, ok := payload.(services.OrderPlaced)
	if !ok {
		return
	}

	lines := collection.Map(placed.Items, func(it models.OrderItem) map[string]interface{} {
		return map[string]interface{}{
			"product_id": it.ProductID,
			"quantity":   it.Quantity,
			"price":      it.Price.String(),
		}
	})

	logger.Info("audit: order placed",
		"order_id", placed.Order.ID,
		"total_amount", placed.Order.TotalAmount.String(),
		"items", lines,
	)
}

// PublishOrder pushes the order, encoded as the API returns it, to feed.
func PublishOrder(feed Publisher) event.Handler {
	return func(payload interface{}) {
		placed, ok := payload.(services.OrderPlaced)
		if !ok {
			return
		}
		msg, err := json.Marshal(placed.Order)
		if err != nil {
			logger.Error("listeners: encode order", "order_id", placed.Order.ID, "error", err)
			return
		}
		feed.Publish(msg)
	}
}
