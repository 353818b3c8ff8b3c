package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/kellypool/internal/model"
	"github.com/mcoot/kellypool/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Games are copied on the way in and out so callers never share state.
type Storage struct {
	mu     sync.RWMutex
	tables map[model.TableID]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tables: make(map[model.TableID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Table operations

func (s *Storage) SaveTable(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetTable(ctx context.Context, id model.TableID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.tables[id]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteTable(ctx context.Context, id model.TableID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, id)
	return nil
}

func (s *Storage) TableExists(ctx context.Context, id model.TableID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[id]
	return ok, nil
}

func (s *Storage) ListTables(ctx context.Context) ([]model.TableID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.TableID, 0, len(s.tables))
	for id := range s.tables {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}
