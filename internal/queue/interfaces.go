package queue

import "context"

type Consumer interface {
	Start(ctx context.Context) error
}

type Publisher interface {
	Publish(ctx context.Context, payload []byte, routingKey string) error
}

// Command is the queued form of an inventory mutation.
type Command struct {
	Op       string `json:"op"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}
