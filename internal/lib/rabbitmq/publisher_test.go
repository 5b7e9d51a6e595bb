package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueues(t *testing.T) {
	queues := GetOrderQueues()
	require.NotEmpty(t, queues)

	seen := map[string]bool{}
	for _, q := range queues {
		assert.Falsef(t, seen[q.QueueName], "duplicate queue name: %s", q.QueueName)
		seen[q.QueueName] = true
	}
}

func TestPublishMessage_MarshalError(t *testing.T) {
	badMsg := struct {
		Ch chan int `json:"ch"`
	}{
		Ch: make(chan int),
	}

	err := PublishMessage(nil, DefaultExchange, RoutingOrderPaid, badMsg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
}

func TestPublisher_CancelledContext(t *testing.T) {
	p := NewPublisher(nil, DefaultExchange)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, RoutingOrderPaid, map[string]string{"orderId": "1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), RoutingOrderPaid, nil))
}

func TestPublisher_RoutesByTopic(t *testing.T) {
	ctx := context.Background()
	amqpURI, cleanup := amqpURIForTest(ctx, t)
	defer cleanup()

	conn, err := Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	ch, err := SetupChannel(conn, DefaultExchange, GetOrderQueues())
	require.NoError(t, err)

	publisher := NewPublisher(ch, DefaultExchange)
	defer func() {
		if err := publisher.Close(); err != nil {
			t.Errorf("failed to close channel: %v", err)
		}
	}()

	msg := map[string]any{"orderId": "order-1", "status": "paid"}
	require.NoError(t, publisher.Publish(ctx, RoutingOrderPaid, msg))

	consumeCh, err := conn.Channel()
	require.NoError(t, err)
	deliveries, err := consumeCh.Consume("orders.events", "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got map[string]any
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, "order-1", got["orderId"])
		assert.Equal(t, RoutingOrderPaid, d.RoutingKey)
		assert.Equal(t, "application/json", d.ContentType)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message via exchange")
	}
}
