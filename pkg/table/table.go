package table

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"twohundred-server/internal/util"
)

// Seats is how many players a table holds
const Seats = 4

// ErrTableFull is returned when a player joins a table with no open seats
var ErrTableFull = errors.New("table is full")

// ErrAlreadySeated is returned when a player joins a table twice
var ErrAlreadySeated = errors.New("player is already seated at this table")

// Player is someone who can sit at a table
type Player struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"displayName"`
	IsBot       bool      `json:"isBot"`
	Created     time.Time `json:"created"`
}

// Table is a table players gather around to play
type Table struct {
	UUID    string    `json:"uuid"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`

	lock  sync.RWMutex
	seats []*Player
}

// NewTable returns a new table with a random name
func NewTable() *Table {
	return &Table{
		UUID:    uuid.New().String(),
		Name:    util.GetRandomName(),
		Created: time.Now(),
		seats:   make([]*Player, 0, Seats),
	}
}

// AddPlayer seats the player at the next open seat
func (t *Table) AddPlayer(player *Player) (seat int, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	for _, seated := range t.seats {
		if seated.ID == player.ID {
			return 0, ErrAlreadySeated
		}
	}

	if len(t.seats) == Seats {
		return 0, ErrTableFull
	}

	t.seats = append(t.seats, player)
	return len(t.seats) - 1, nil
}

// GetPlayers returns the seated players in seat order
func (t *Table) GetPlayers() []*Player {
	t.lock.RLock()
	defer t.lock.RUnlock()

	players := make([]*Player, len(t.seats))
	copy(players, t.seats)
	return players
}

// GetPlayer returns the seated player with the id, or nil
func (t *Table) GetPlayer(id int64) *Player {
	t.lock.RLock()
	defer t.lock.RUnlock()

	for _, player := range t.seats {
		if player.ID == id {
			return player
		}
	}

	return nil
}

// IsFull returns true once every seat is taken
func (t *Table) IsFull() bool {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return len(t.seats) == Seats
}
