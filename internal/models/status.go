package models

import "time"

// OrderStatus is a derived display label; it is computed on every read and
// never persisted.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// Milestones of the order pipeline, measured as elapsed time since the order
// was created.
const (
	placedDuration      = 2 * time.Minute
	preparationDuration = 10 * time.Minute
	deliveryDuration    = 25 * time.Minute
)

// OrderWithStatus is the read-side projection of an order: the persisted
// aggregate plus its derived status and estimated delivery time.
type OrderWithStatus struct {
	Order
	Status            OrderStatus `json:"status"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}

// OrderStatusAt derives the status for an order created at created, as seen
// at now. Deterministic given both instants.
func OrderStatusAt(created, now time.Time) OrderStatus {
	elapsed := now.Sub(created)
	switch {
	case elapsed < placedDuration:
		return StatusPlaced
	case elapsed < preparationDuration:
		return StatusPreparing
	case elapsed < deliveryDuration:
		return StatusOutForDelivery
	default:
		return StatusDelivered
	}
}

// WithStatus projects an order into its status view at the given instant.
func WithStatus(order Order, now time.Time) OrderWithStatus {
	return OrderWithStatus{
		Order:             order,
		Status:            OrderStatusAt(order.CreatedTime, now),
		EstimatedDelivery: order.CreatedTime.Add(deliveryDuration),
	}
}
