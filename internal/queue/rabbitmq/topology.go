package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// topology names the exchange, queue and binding the inventory commands use.
type topology struct {
	exchange   string
	queue      string
	routingKey string
}

func connect(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	return conn, ch, nil
}

func (t topology) declareExchange(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(t.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq exchange declare %s: %w", t.exchange, err)
	}
	return nil
}

// declare sets up the durable exchange and command queue and binds them.
func (t topology) declare(ch *amqp.Channel) (string, error) {
	if err := t.declareExchange(ch); err != nil {
		return "", err
	}
	q, err := ch.QueueDeclare(t.queue, true, false, false, false, nil)
	if err != nil {
		return "", fmt.Errorf("rabbitmq queue declare %s: %w", t.queue, err)
	}
	if err := ch.QueueBind(q.Name, t.routingKey, t.exchange, false, nil); err != nil {
		return "", fmt.Errorf("rabbitmq queue bind %s: %w", q.Name, err)
	}
	return q.Name, nil
}
