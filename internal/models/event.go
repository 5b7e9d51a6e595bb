package models

import "time"

// OrderEvent публикуется в брокер при смене статуса заказа или подписки.
type OrderEvent struct {
	OrderID   string           `json:"orderId"`
	UserID    string           `json:"userId"`
	Status    OrderStatus      `json:"status"`
	Type      OrderType        `json:"type"`
	Amount    float64          `json:"amount"`
	Plan      SubscriptionPlan `json:"plan,omitempty"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
	At        time.Time        `json:"at"`
}
