package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/queue"
)

var errNotConfirmed = errors.New("rabbitmq: broker did not confirm the command")

// NewPublisher returns a publisher for cfg.RabbitMQURL, or one that drops
// every command when no broker is configured.
func NewPublisher(cfg *config.Config, logger *zap.Logger) queue.Publisher {
	if cfg.RabbitMQURL == "" {
		return &droppingPublisher{log: logger}
	}
	return &Publisher{
		url:  cfg.RabbitMQURL,
		topo: topology{exchange: cfg.RabbitExchange},
		log:  logger,
	}
}

type droppingPublisher struct {
	log *zap.Logger
}

func (p *droppingPublisher) Publish(_ context.Context, _ []byte, routingKey string) error {
	p.log.Debug("rabbitmq disabled, command dropped", zap.String("routing_key", routingKey))
	return nil
}

// Publisher sends each command on its own connection and returns once the
// broker has confirmed it.
type Publisher struct {
	url  string
	topo topology
	log  *zap.Logger
}

func (p *Publisher) Publish(ctx context.Context, payload []byte, routingKey string) error {
	conn, ch, err := connect(p.url)
	if err != nil {
		return err
	}
	defer func() {
		_ = ch.Close()
		_ = conn.Close()
	}()

	if err := p.topo.declareExchange(ch); err != nil {
		return err
	}
	if err := ch.Confirm(false); err != nil {
		return fmt.Errorf("rabbitmq confirm mode: %w", err)
	}

	headers := amqp.Table{}
	otel.GetTextMapPropagator().Inject(ctx, amqpHeaderCarrier(headers))

	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, p.topo.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Headers:      headers,
		Body:         payload,
	})
	if err != nil {
		p.log.Error("rabbitmq publish failed", zap.String("routing_key", routingKey), zap.Error(err))
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	if !confirm.Wait() {
		p.log.Error("rabbitmq publish nacked", zap.String("routing_key", routingKey))
		return errNotConfirmed
	}
	return nil
}
