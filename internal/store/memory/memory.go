package memory

import (
	"sync"

	"go.uber.org/zap"
	"pantry/internal/model"
)

// Store keeps one collection in process memory. Listing returns items in
// insertion order; an overwrite keeps the item in place.
type Store struct {
	mu    sync.Mutex
	index map[string]int
	items []model.Item
	log   *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{index: make(map[string]int), log: logger}
}
