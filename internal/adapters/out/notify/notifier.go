// Package notify implements the outbound notification port on structured
// logging. Notifications are fire-and-forget status signals for customers
// and partners; a real deployment would swap this for push or SMS delivery
// behind the same port.
package notify

import (
	"context"
	"log/slog"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
)

// LogNotifier implements ports.Notifier by emitting structured log records.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier writing through the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// OrderStatusChanged announces a status transition.
func (n *LogNotifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	n.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"customer_id", o.CustomerID().String(),
		"status", o.Status().String(),
	)
}

// PartnerAssigned announces that a delivery partner took an order.
func (n *LogNotifier) PartnerAssigned(ctx context.Context, o *order.Order, partnerID kernel.ID) {
	n.logger.InfoContext(ctx, "delivery partner assigned",
		"order_id", o.ID().String(),
		"partner_id", partnerID.String(),
	)
}
