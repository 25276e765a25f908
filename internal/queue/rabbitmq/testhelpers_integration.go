//go:build integration

package rabbitmq

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

// startBroker runs a throwaway RabbitMQ and returns its AMQP URL. The
// container is removed when the test ends.
func startBroker(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := tcrabbitmq.RunContainer(ctx, testcontainers.WithImage("rabbitmq:3.12.11-management-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	url, err := container.AmqpURL(ctx)
	require.NoError(t, err)
	return url
}

// waitForConsumer polls the broker until queueName has a consumer attached.
func waitForConsumer(t *testing.T, amqpURL, queueName string) {
	t.Helper()
	require.Eventually(t, func() bool {
		conn, ch, err := connect(amqpURL)
		if err != nil {
			return false
		}
		defer func() {
			_ = ch.Close()
			_ = conn.Close()
		}()
		q, err := ch.QueueDeclarePassive(queueName, true, false, false, false, nil)
		return err == nil && q.Consumers > 0
	}, 10*time.Second, 200*time.Millisecond)
}

// drainQueue binds a fresh queue to topo and returns its deliveries.
func drainQueue(t *testing.T, amqpURL string, topo topology) <-chan amqp.Delivery {
	t.Helper()
	conn, ch, err := connect(amqpURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = ch.Close()
		_ = conn.Close()
	})

	queueName, err := topo.declare(ch)
	require.NoError(t, err)
	deliveries, err := ch.Consume(queueName, "", true, false, false, false, nil)
	require.NoError(t, err)
	return deliveries
}
