package rabbitmq

// Ключи маршрутизации событий заказов.
const (
	RoutingOrderPaid             = "order.paid"
	RoutingOrderCancelled        = "order.cancelled"
	RoutingSubscriptionCancelled = "subscription.cancelled"
)

// DefaultExchange - exchange для событий заказов.
const DefaultExchange = "petcare.orders"

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetOrderQueues возвращает очереди, которые слушают внешние обработчики событий.
func GetOrderQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "orders.events", RoutingKey: "order.*"},
		{QueueName: "subscriptions.events", RoutingKey: "subscription.*"},
	}
}
