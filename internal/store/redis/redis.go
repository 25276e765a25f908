// Package redis keeps the inventory collection in a single Redis hash: one
// field per item name, the quantity as its decimal text.
package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"pantry/internal/model"
)

const nanValue = "NaN"

type Store struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

func New(client *redis.Client, collection string, logger *zap.Logger) *Store {
	return &Store{client: client, key: collection, log: logger}
}

// Dial builds a client for addr and checks it answers PING.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func encodeQuantity(q model.Quantity) string {
	if n, ok := q.Int64(); ok {
		return strconv.FormatInt(n, 10)
	}
	return nanValue
}

func decodeQuantity(v string) (model.Quantity, error) {
	if v == nanValue {
		return model.NaN(), nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return model.Quantity{}, fmt.Errorf("decode quantity %q: %w", v, err)
	}
	return model.Count(n), nil
}
