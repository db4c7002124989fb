package twohundred

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"twohundred-server/pkg/deck"
)

func drainEvents(g *Game) []*Event {
	var events []*Event
	for {
		select {
		case event := <-g.Events():
			events = append(events, event)
		default:
			return events
		}
	}
}

func eventTypes(events []*Event) []EventType {
	types := make([]EventType, len(events))
	for i, event := range events {
		types[i] = event.Type
	}

	return types
}

func TestGame_events(t *testing.T) {
	g := newTestGame(t, Options{DeckVariant: deck.Variant36, ScoreTarget: 200})

	assert.NoError(t, g.playerDidBid(g.players[1], 55, nil))
	events := drainEvents(g)
	assert.Equal(t, []EventType{EventBidMade}, eventTypes(events))
	assert.Equal(t, 55, events[0].GameState.CurrentBid.Points)
	assert.Equal(t, PhaseBidding, events[0].GameState.Phase)

	// passes are silent until the auction resolves
	assert.NoError(t, g.playerDidPass(g.players[2]))
	assert.NoError(t, g.playerDidPass(g.players[3]))
	assert.NoError(t, g.playerDidPass(g.players[0]))
	assert.Equal(t, 0, len(drainEvents(g)))

	setPlaying(g, deck.Hearts, [numPlayers]string{"5d", "14h", "9d", "8c"}, [2]int{30, 55}, tricksPerRound-1)

	assert.NoError(t, g.playerDidPlayCard(g.players[1], deck.CardFromString("14h")))
	assert.Equal(t, []EventType{EventCardPlayed}, eventTypes(drainEvents(g)))

	assert.NoError(t, g.playerDidPlayCard(g.players[2], deck.CardFromString("9d")))
	assert.NoError(t, g.playerDidPlayCard(g.players[3], deck.CardFromString("8c")))
	assert.NoError(t, g.playerDidPlayCard(g.players[0], deck.CardFromString("5d")))

	events = drainEvents(g)
	types := eventTypes(events)
	assert.Equal(t, []EventType{EventCardPlayed, EventCardPlayed, EventCardPlayed, EventTrickCompleted, EventRoundCompleted}, types)

	trickEvent := events[3]
	assert.Equal(t, int64(2), trickEvent.Trick.WinnerID)
	assert.Equal(t, 15, trickEvent.Trick.Points)

	roundEvent := events[4]
	assert.Equal(t, [2]int{30, 70}, roundEvent.RoundSummary.Scores)
	assert.Equal(t, PhaseRoundEnd, roundEvent.GameState.Phase)
}

func TestGame_voidAuctionEvent(t *testing.T) {
	g := newTestGame(t, Options{DeckVariant: deck.Variant36, ScoreTarget: 200})
	for _, pos := range []int{1, 2, 3, 0} {
		assert.NoError(t, g.playerDidPass(g.players[pos]))
	}

	events := drainEvents(g)
	assert.Equal(t, []EventType{EventAuctionVoid}, eventTypes(events))
	assert.Equal(t, PhaseRoundEnd, events[0].GameState.Phase)
}

func TestGame_gameEndedEvent(t *testing.T) {
	g := newTestGame(t, Options{DeckVariant: deck.Variant36, ScoreTarget: 200})
	assert.NoError(t, g.playerDidBid(g.players[0], 60, nil))
	assert.NoError(t, g.playerDidPass(g.players[1]))
	assert.NoError(t, g.playerDidPass(g.players[2]))
	assert.NoError(t, g.playerDidPass(g.players[3]))
	drainEvents(g)

	g.scores = [2]int{150, 40}
	setPlaying(g, deck.Clubs, [numPlayers]string{"14c", "5d", "8c", "9d"}, [2]int{55, 30}, tricksPerRound-1)

	assert.NoError(t, g.playerDidPlayCard(g.players[0], deck.CardFromString("14c")))
	assert.NoError(t, g.playerDidPlayCard(g.players[1], deck.CardFromString("5d")))
	assert.NoError(t, g.playerDidPlayCard(g.players[2], deck.CardFromString("8c")))
	assert.NoError(t, g.playerDidPlayCard(g.players[3], deck.CardFromString("9d")))

	events := drainEvents(g)
	assert.Equal(t, EventGameEnded, events[len(events)-1].Type)
	assert.Equal(t, "team1", events[len(events)-1].WinningTeam)
	assert.Equal(t, map[string]int{"team1": 220, "team2": 70}, events[len(events)-1].FinalScores)
}
