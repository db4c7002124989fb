package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AddPlayer(t *testing.T) {
	s := NewStore()
	tbl := s.CreateTable()
	assert.NotEmpty(t, tbl.UUID)
	assert.NotEmpty(t, tbl.Name)
	assert.False(t, tbl.IsFull())

	p1 := s.CreatePlayer("alpha", false)
	seat, err := tbl.AddPlayer(p1)
	assert.NoError(t, err)
	assert.Equal(t, 0, seat)

	_, err = tbl.AddPlayer(p1)
	assert.Equal(t, ErrAlreadySeated, err)

	for i := 0; i < Seats-1; i++ {
		_, err := tbl.AddPlayer(s.CreatePlayer("bot", true))
		assert.NoError(t, err)
	}

	assert.True(t, tbl.IsFull())
	_, err = tbl.AddPlayer(s.CreatePlayer("late", false))
	assert.Equal(t, ErrTableFull, err)

	players := tbl.GetPlayers()
	assert.Equal(t, Seats, len(players))
	assert.Equal(t, p1, players[0])
	assert.Equal(t, p1, tbl.GetPlayer(p1.ID))
	assert.Nil(t, tbl.GetPlayer(99))
}

func TestStore(t *testing.T) {
	s := NewStore()

	tbl := s.CreateTable()
	got, err := s.GetTable(tbl.UUID)
	assert.NoError(t, err)
	assert.Equal(t, tbl, got)

	_, err = s.GetTable("nope")
	assert.Equal(t, ErrTableNotFound, err)

	p1 := s.CreatePlayer("alpha", false)
	p2 := s.CreatePlayer("bravo", false)
	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)

	got2, err := s.GetPlayer(p2.ID)
	assert.NoError(t, err)
	assert.Equal(t, "bravo", got2.DisplayName)

	_, err = s.GetPlayer(99)
	assert.Equal(t, ErrPlayerNotFound, err)
}
