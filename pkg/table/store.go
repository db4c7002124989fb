package table

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrTableNotFound is returned when a table lookup misses
var ErrTableNotFound = errors.New("table not found")

// ErrPlayerNotFound is returned when a player lookup misses
var ErrPlayerNotFound = errors.New("player not found")

// Store keeps tables and players in memory
type Store struct {
	lock         sync.RWMutex
	tables       map[string]*Table
	players      map[int64]*Player
	lastPlayerID int64
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		tables:  make(map[string]*Table),
		players: make(map[int64]*Player),
	}
}

// CreateTable creates and registers a new table
func (s *Store) CreateTable() *Table {
	t := NewTable()

	s.lock.Lock()
	s.tables[t.UUID] = t
	s.lock.Unlock()

	return t
}

// GetTable returns the table with the UUID
func (s *Store) GetTable(uuid string) (*Table, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	t, ok := s.tables[uuid]
	if !ok {
		return nil, ErrTableNotFound
	}

	return t, nil
}

// CreatePlayer creates and registers a new player
func (s *Store) CreatePlayer(displayName string, isBot bool) *Player {
	player := &Player{
		ID:          atomic.AddInt64(&s.lastPlayerID, 1),
		DisplayName: displayName,
		IsBot:       isBot,
		Created:     time.Now(),
	}

	s.lock.Lock()
	s.players[player.ID] = player
	s.lock.Unlock()

	return player
}

// GetPlayer returns the player with the id
func (s *Store) GetPlayer(id int64) (*Player, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	player, ok := s.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return player, nil
}
