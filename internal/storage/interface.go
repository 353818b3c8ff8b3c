package storage

import (
	"context"

	"github.com/mcoot/kellypool/internal/model"
)

// Storage defines the interface for table persistence
type Storage interface {
	// Table operations
	SaveTable(ctx context.Context, game *model.Game) error
	GetTable(ctx context.Context, id model.TableID) (*model.Game, error)
	DeleteTable(ctx context.Context, id model.TableID) error
	TableExists(ctx context.Context, id model.TableID) (bool, error)
	ListTables(ctx context.Context) ([]model.TableID, error)
}
