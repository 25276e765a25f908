//go:build integration

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"go.uber.org/zap"
	"pantry/internal/domain"
	"pantry/internal/model"
	"pantry/internal/queue/rabbitmq"
	"pantry/internal/store/memory"
)

func TestPublishFlow(t *testing.T) {
	ctx := context.Background()
	amqpURL, cleanup := setupRabbitMQContainer(t, ctx)
	defer cleanup()

	cfg := testConfig()
	cfg.RabbitMQURL = amqpURL
	cfg.RabbitExchange = "inventory"
	cfg.RabbitQueue = "inventory.commands"
	cfg.RabbitRoutingKey = "inventory.*"
	cfg.RabbitConsumerTag = "pantry-consumer"

	logger := zap.NewNop()
	repo := memory.New(logger)
	publisher := rabbitmq.NewPublisher(cfg, logger)
	server, svc := startServer(t, cfg, repo, publisher)
	consumer := rabbitmq.NewConsumer(cfg, svc, logger)

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- consumer.Start(consumeCtx)
	}()

	require.NoError(t, waitForConsumer(ctx, amqpURL, cfg.RabbitQueue, 5*time.Second))

	sseResp, err := http.Get(server.URL + "/sse/inventory")
	require.NoError(t, err)
	defer sseResp.Body.Close()
	require.Equal(t, http.StatusOK, sseResp.StatusCode)

	body, err := json.Marshal(map[string]string{"op": domain.OpUpsert, "name": "rice", "quantity": "5"})
	require.NoError(t, err)

	postResp, err := http.Post(server.URL+"/api/items/publish", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer postResp.Body.Close()
	require.Equal(t, http.StatusAccepted, postResp.StatusCode)

	data, err := readSSEData(sseResp.Body, 5*time.Second)
	require.NoError(t, err)
	require.Contains(t, data, `"name":"rice"`)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Item{{Name: "rice", Quantity: model.Count(5)}}, items)

	cancel()
	select {
	case <-time.After(3 * time.Second):
		t.Fatalf("consumer did not stop")
	case <-errCh:
	}
}

func setupRabbitMQContainer(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	container, err := tcrabbitmq.RunContainer(ctx, testcontainers.WithImage("rabbitmq:3.12.11-management-alpine"))
	require.NoError(t, err)

	amqpURL, err := container.AmqpURL(ctx)
	require.NoError(t, err)
	return amqpURL, func() {
		_ = container.Terminate(ctx)
	}
}

func waitForConsumer(ctx context.Context, amqpURL, queueName string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if consumers(amqpURL, queueName) > 0 {
				return nil
			}
		}
	}
}

func consumers(amqpURL, queueName string) int {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return 0
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		return 0
	}
	defer ch.Close()
	q, err := ch.QueueDeclarePassive(queueName, true, false, false, false, nil)
	if err != nil {
		return 0
	}
	return q.Consumers
}
