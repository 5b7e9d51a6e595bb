package models

import "time"

// OrderStatus - статус заказа.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderFailed    OrderStatus = "failed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderType - тип заказа.
type OrderType string

const (
	OrderSubscription OrderType = "subscription"
	OrderService      OrderType = "service"
)

// Order - заказ пользователя, созданный при оплате тарифа или услуги.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	PaymentID   *string     `json:"paymentId"` // идентификатор платежа YooKassa
	Amount      float64     `json:"amount"`
	Status      OrderStatus `json:"status"`
	Type        OrderType   `json:"type"`
	TariffID    *string     `json:"tariffId"`
	ServiceID   *string     `json:"serviceId"`
	Description *string     `json:"description"`
	Tariff      *Tariff     `json:"tariff"` // заполняется при чтении
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreatePaymentInput - запрос на создание платежа.
type CreatePaymentInput struct {
	UserID      string   `json:"userId" validate:"required,uuid"`
	Amount      *float64 `json:"amount" validate:"required,gt=0,lte=99999999.99"` // NUMERIC(10,2)
	TariffID    *string  `json:"tariffId" validate:"omitempty,uuid"`
	ServiceID   *string  `json:"serviceId" validate:"omitempty,uuid"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
}

// PaymentResult - ответ на создание платежа.
type PaymentResult struct {
	OrderID         string `json:"orderId"`
	PaymentID       string `json:"paymentId"`
	ConfirmationURL string `json:"confirmationUrl"`
	Status          string `json:"status"`
}

// CancellationResult - результат отмены подписки.
type CancellationResult struct {
	Message      string           `json:"message"`
	PreviousPlan SubscriptionPlan `json:"previousPlan"`
	NewPlan      SubscriptionPlan `json:"newPlan"`
	CancelledAt  time.Time        `json:"cancelledAt"`
}
