package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kellypool/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.TableTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func startedTable(id model.TableID) *model.Game {
	g := model.NewGame(id, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	eight := 8
	g.Players = []model.Player{
		{ID: "player-1", Name: "Alice", Balls: []int{1, 2, 3, 4, 5, 6, 7, 8}, IsActive: true},
		{ID: "player-2", Name: "Bob", Balls: []int{9, 10, 11, 12, 13, 14, 15}, Score: 2, IsActive: false},
	}
	g.AvailableBalls = []int{}
	g.GameStarted = true
	g.CurrentTurn = 1
	g.History = []model.HistoryEvent{
		{Timestamp: g.CreatedAt, PlayerName: "Alice", Action: model.ActionJoined},
		{Timestamp: g.CreatedAt, PlayerName: "Bob", Action: model.ActionScratched, BallNumber: &eight},
	}
	return g
}

func (s *StorageSuite) TestSaveAndGetTable() {
	table := startedTable("ABC123")

	err := s.storage.SaveTable(s.ctx, table)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTable(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(table.ID, retrieved.ID)
	s.Equal(table.Players, retrieved.Players)
	s.Equal(table.CurrentTurn, retrieved.CurrentTurn)
	s.True(retrieved.GameStarted)
	s.Require().Len(retrieved.History, 2)
	s.Nil(retrieved.History[0].BallNumber)
	s.Require().NotNil(retrieved.History[1].BallNumber)
	s.Equal(8, *retrieved.History[1].BallNumber)
	s.True(table.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetTableNotFound() {
	_, err := s.storage.GetTable(s.ctx, "NONEXISTENT")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *StorageSuite) TestTableExists() {
	_ = s.storage.SaveTable(s.ctx, startedTable("ABC123"))

	exists, err := s.storage.TableExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.storage.TableExists(s.ctx, "NONEXISTENT")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestDeleteTable() {
	_ = s.storage.SaveTable(s.ctx, startedTable("ABC123"))

	err := s.storage.DeleteTable(s.ctx, "ABC123")
	s.Require().NoError(err)

	_, err = s.storage.GetTable(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrTableNotFound)

	ids, err := s.storage.ListTables(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestTableTTL() {
	_ = s.storage.SaveTable(s.ctx, startedTable("ABC123"))

	ttl := s.mini.TTL(tableKey("ABC123"))
	s.True(ttl > 0, "Table should have TTL")
}

func (s *StorageSuite) TestListTables() {
	_ = s.storage.SaveTable(s.ctx, startedTable("ZZZ999"))
	_ = s.storage.SaveTable(s.ctx, startedTable("AAA111"))

	ids, err := s.storage.ListTables(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.TableID{"AAA111", "ZZZ999"}, ids)
}

func (s *StorageSuite) TestListTablesPrunesExpired() {
	_ = s.storage.SaveTable(s.ctx, startedTable("AAA111"))
	_ = s.storage.SaveTable(s.ctx, startedTable("BBB222"))

	s.mini.SetTTL(tableKey("AAA111"), time.Minute)
	s.mini.FastForward(2 * time.Minute)

	ids, err := s.storage.ListTables(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.TableID{"BBB222"}, ids)

	members, err := s.mini.Members(tablesIndexKey())
	s.Require().NoError(err)
	s.Equal([]string{"BBB222"}, members)
}
