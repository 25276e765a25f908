package memory

import (
	"context"

	"go.uber.org/zap"
	"pantry/internal/model"
)

func (s *Store) ListItems(_ context.Context) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Item, len(s.items))
	copy(result, s.items)
	return result, nil
}

func (s *Store) UpsertItem(_ context.Context, item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[item.Name]; ok {
		s.items[i] = item
		return nil
	}
	s.index[item.Name] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

func (s *Store) DeleteItem(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[name]
	if !ok {
		s.log.Debug("memory delete of missing item", zap.String("name", name))
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].Name] = j
	}
	return nil
}
