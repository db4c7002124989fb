package twohundred

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"twohundred-server/pkg/deck"
)

func auctionPlayers() []*Player {
	players := make([]*Player, numPlayers)
	for i := 0; i < numPlayers; i++ {
		players[i] = NewPlayer(int64(i+1), i)
	}

	return players
}

func TestNewAuction(t *testing.T) {
	a := newAuction(3)
	assert.Equal(t, 0, a.turn)
	assert.False(t, a.closed)
	assert.Equal(t, -1, a.contractor)
	assert.Nil(t, a.currentBid)
}

func TestAuction_submitBid(t *testing.T) {
	players := auctionPlayers()
	a := newAuction(0)

	assert.Equal(t, ErrNotYourTurn, a.submitBid(players[0], 50, nil))
	assert.Equal(t, InvalidBidError("must be a multiple of five"), a.submitBid(players[1], 52, nil))
	assert.Equal(t, InvalidBidError("must be between 50 and 100"), a.submitBid(players[1], 45, nil))
	assert.Equal(t, InvalidBidError("must be between 50 and 100"), a.submitBid(players[1], 105, nil))

	assert.NoError(t, a.submitBid(players[1], 50, nil))
	assert.Equal(t, 2, a.turn)
	assert.Equal(t, int64(2), a.currentBid.PlayerID)
	assert.True(t, a.bidders[2])

	assert.Equal(t, InvalidBidError("must be higher than 50"), a.submitBid(players[2], 50, nil))

	hearts := deck.Hearts
	assert.NoError(t, a.submitBid(players[2], 55, &hearts))
	assert.Equal(t, 55, a.currentBid.Points)
	assert.Equal(t, deck.Hearts, *a.currentBid.Trump)
}

func TestAuction_voidAfterFourPasses(t *testing.T) {
	players := auctionPlayers()
	a := newAuction(0)

	assert.NoError(t, a.submitPass(players[1]))
	assert.NoError(t, a.submitPass(players[2]))
	assert.NoError(t, a.submitPass(players[3]))
	assert.False(t, a.closed)
	assert.NoError(t, a.submitPass(players[0]))

	assert.True(t, a.closed)
	assert.True(t, a.void)
	assert.Equal(t, -1, a.contractor)
	assert.Equal(t, ErrAuctionClosed, a.submitBid(players[0], 50, nil))

	assert.Equal(t, []int64{2, 3, 4, 1}, a.passedPlayerIDs(players))
}

func TestAuction_closesOnThreePassesWithBid(t *testing.T) {
	players := auctionPlayers()
	a := newAuction(0)

	assert.NoError(t, a.submitBid(players[1], 60, nil))
	assert.NoError(t, a.submitPass(players[2]))
	assert.NoError(t, a.submitPass(players[3]))
	assert.False(t, a.closed)
	assert.NoError(t, a.submitPass(players[0]))

	assert.True(t, a.closed)
	assert.False(t, a.void)
	assert.Equal(t, 1, a.contractor)
	assert.Equal(t, 60, a.currentBid.Points)
}

func TestAuction_closesOnMaxBid(t *testing.T) {
	players := auctionPlayers()
	a := newAuction(0)

	assert.NoError(t, a.submitPass(players[1]))
	assert.NoError(t, a.submitBid(players[2], 100, nil))

	assert.True(t, a.closed)
	assert.Equal(t, 2, a.contractor)
}

func TestAuction_passedPlayerSkipped(t *testing.T) {
	players := auctionPlayers()
	a := newAuction(0)

	assert.NoError(t, a.submitBid(players[1], 50, nil))
	assert.NoError(t, a.submitPass(players[2]))
	assert.NoError(t, a.submitBid(players[3], 55, nil))
	assert.NoError(t, a.submitBid(players[0], 60, nil))

	// seat 2 (position 2) has passed and stays out
	assert.Equal(t, 1, a.turn)
	assert.Equal(t, ErrAlreadyPassed, a.submitBid(players[2], 65, nil))

	assert.NoError(t, a.submitBid(players[1], 65, nil))
	assert.Equal(t, 3, a.turn)

	// outbid players may re-enter until they pass
	assert.NoError(t, a.submitPass(players[3]))
	assert.NoError(t, a.submitPass(players[0]))
	assert.True(t, a.closed)
	assert.Equal(t, 1, a.contractor)
	assert.True(t, a.bidders[1])
	assert.True(t, a.bidders[2])
	assert.True(t, a.bidders[4])
}
