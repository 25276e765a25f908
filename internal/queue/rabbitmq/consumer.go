package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/domain"
	"pantry/internal/queue"
	"pantry/internal/service/inventory"
)

const (
	applyTimeout = 5 * time.Second
	prefetch     = 10
	tracerName   = "pantry/rabbitmq"
)

var errDeliveriesClosed = errors.New("rabbitmq deliveries closed")

// NewConsumer returns a consumer that applies queued commands through svc,
// or one that idles until shutdown when no broker is configured.
func NewConsumer(cfg *config.Config, svc *inventory.Service, logger *zap.Logger) queue.Consumer {
	if cfg.RabbitMQURL == "" {
		return idleConsumer{}
	}
	return &Consumer{
		url: cfg.RabbitMQURL,
		topo: topology{
			exchange:   cfg.RabbitExchange,
			queue:      cfg.RabbitQueue,
			routingKey: cfg.RabbitRoutingKey,
		},
		tag: cfg.RabbitConsumerTag,
		svc: svc,
		log: logger,
	}
}

type idleConsumer struct{}

func (idleConsumer) Start(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

type Consumer struct {
	url  string
	topo topology
	tag  string
	svc  *inventory.Service
	log  *zap.Logger
}

func (r *Consumer) messagingAttrs(routingKey string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "rabbitmq"),
		attribute.String("messaging.destination", r.topo.exchange),
		attribute.String("messaging.rabbitmq.routing_key", routingKey),
	)
}

// Start consumes until ctx is done or the broker closes the delivery stream.
func (r *Consumer) Start(ctx context.Context) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "inventory.consume", r.messagingAttrs(r.topo.routingKey))
	defer func() {
		if err != nil && ctx.Err() == nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	conn, ch, err := connect(r.url)
	if err != nil {
		return err
	}
	defer func() {
		_ = ch.Close()
		_ = conn.Close()
	}()

	if err := ch.Qos(prefetch, 0, false); err != nil {
		return err
	}
	queueName, err := r.topo.declare(ch)
	if err != nil {
		return err
	}
	deliveries, err := ch.Consume(queueName, r.tag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	r.log.Info("inventory command consumer started",
		zap.String("exchange", r.topo.exchange),
		zap.String("queue", queueName),
		zap.String("routing_key", r.topo.routingKey),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-deliveries:
			if !ok {
				return errDeliveriesClosed
			}
			if err := r.handleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

// handleMessage applies one command. Commands that can never succeed are
// acked and dropped. A store failure is nacked for one redelivery and dropped
// if the redelivered command fails again.
func (r *Consumer) handleMessage(ctx context.Context, msg amqp.Delivery) error {
	ctx = otel.GetTextMapPropagator().Extract(ctx, amqpHeaderCarrier(msg.Headers))
	ctx, span := otel.Tracer(tracerName).Start(ctx, "inventory.apply_command", r.messagingAttrs(msg.RoutingKey))
	defer span.End()

	drop := func(reason string, fields ...zap.Field) error {
		span.SetStatus(codes.Error, reason)
		r.log.Warn("inventory command dropped", append(fields, zap.String("reason", reason))...)
		return msg.Ack(false)
	}

	var cmd queue.Command
	if err := json.Unmarshal(msg.Body, &cmd); err != nil {
		span.RecordError(err)
		return drop("invalid json", zap.Error(err))
	}
	span.SetAttributes(attribute.String("inventory.op", cmd.Op), attribute.String("inventory.name", cmd.Name))
	if cmd.Op == "" || cmd.Name == "" {
		return drop("missing op or name", zap.String("op", cmd.Op), zap.String("name", cmd.Name))
	}
	if !domain.IsValidOp(cmd.Op) {
		return drop("unknown op", zap.String("op", cmd.Op))
	}

	applyCtx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	var err error
	if cmd.Op == domain.OpUpsert {
		err = r.svc.Upsert(applyCtx, cmd.Name, cmd.Quantity)
	} else {
		err = r.svc.Remove(applyCtx, cmd.Name)
	}
	if err != nil {
		span.RecordError(err)
		if msg.Redelivered {
			return drop("failed after redelivery", zap.String("op", cmd.Op), zap.String("name", cmd.Name), zap.Error(err))
		}
		span.SetStatus(codes.Error, "apply failed")
		r.log.Error("inventory command failed, requeued",
			zap.String("op", cmd.Op),
			zap.String("name", cmd.Name),
			zap.Error(err),
		)
		if nackErr := msg.Nack(false, true); nackErr != nil {
			r.log.Error("rabbitmq nack failed", zap.Error(nackErr))
		}
		return nil
	}
	return msg.Ack(false)
}
