// Package firestore keeps the inventory in a Cloud Firestore collection: the
// document ID is the item name and the only field is "quantity". Setting
// FIRESTORE_EMULATOR_HOST points the client at a local emulator.
package firestore

import (
	"context"
	"fmt"
	"math"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"pantry/internal/model"
)

const quantityField = "quantity"

type Store struct {
	client     *firestore.Client
	collection string
	log        *zap.Logger
}

func New(client *firestore.Client, collection string, logger *zap.Logger) *Store {
	return &Store{client: client, collection: collection, log: logger}
}

// Dial opens a client for projectID. An empty credentialsFile falls back to
// application default credentials.
func Dial(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore: project id is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return client, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func fieldValue(q model.Quantity) any {
	if n, ok := q.Int64(); ok {
		return n
	}
	return math.NaN()
}

// quantityFromField maps a stored field back to a quantity. Documents written
// by other clients may hold doubles or lack the field entirely.
func quantityFromField(v any) model.Quantity {
	switch n := v.(type) {
	case int64:
		return model.Count(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return model.NaN()
		}
		return model.Count(int64(n))
	default:
		return model.NaN()
	}
}
