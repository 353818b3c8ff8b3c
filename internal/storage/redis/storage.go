package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/kellypool/internal/model"
	"github.com/mcoot/kellypool/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Tables are kept as JSON values that expire after TableTTL. Writers are not
// coordinated across processes, so one server owns a keyspace.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Table operations

func (s *Storage) SaveTable(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tableKey(game.ID), data, s.cfg.TableTTL)
	pipe.SAdd(ctx, tablesIndexKey(), string(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTable(ctx context.Context, id model.TableID) (*model.Game, error) {
	data, err := s.client.Get(ctx, tableKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTableNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteTable(ctx context.Context, id model.TableID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, tableKey(id))
	pipe.SRem(ctx, tablesIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) TableExists(ctx context.Context, id model.TableID) (bool, error) {
	exists, err := s.client.Exists(ctx, tableKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) ListTables(ctx context.Context) ([]model.TableID, error) {
	members, err := s.client.SMembers(ctx, tablesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.TableID, 0, len(members))
	var expired []any
	for _, member := range members {
		exists, err := s.client.Exists(ctx, tableKey(model.TableID(member))).Result()
		if err != nil {
			return nil, err
		}
		if exists == 0 {
			expired = append(expired, member)
			continue
		}
		ids = append(ids, model.TableID(member))
	}

	// Prune index entries whose table has expired
	if len(expired) > 0 {
		if err := s.client.SRem(ctx, tablesIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}

	slices.Sort(ids)
	return ids, nil
}
