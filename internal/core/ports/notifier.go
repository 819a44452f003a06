package ports

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
)

// Notifier pushes order events out to interested parties. Delivery is
// best-effort and fire-and-forget: notification failures never fail the
// business operation that triggered them.
type Notifier interface {
	// OrderStatusChanged announces that the order entered a new status.
	OrderStatusChanged(ctx context.Context, o *order.Order)

	// PartnerAssigned announces that a delivery partner took the order.
	PartnerAssigned(ctx context.Context, o *order.Order, partnerID kernel.ID)
}
