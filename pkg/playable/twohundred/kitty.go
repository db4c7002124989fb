package twohundred

import (
	"twohundred-server/pkg/deck"
	"twohundred-server/pkg/playable"
)

// playerDidTakeKitty merges the four kitty cards into the contractor's hand
func (g *Game) playerDidTakeKitty(player *Player) error {
	if g.phase != PhaseKitty {
		return ErrInvalidPhase
	}

	if player.Position != g.contractor {
		return ErrNotYourTurn
	}

	if len(player.hand) != handSize {
		// the kitty was already taken
		return ErrInvalidPhase
	}

	for _, card := range g.kitty {
		player.AddCard(card)
	}
	g.kitty = nil

	g.sendLogMessages(playable.SimpleLogMessageSlice(player.PlayerID, "{} picks up the kitty")...)
	g.emit(&Event{Type: EventKittyOpened})
	return nil
}

// playerDidDiscardKitty returns four cards from the contractor's hand to
// the kitty, optionally declares trump, and starts play
func (g *Game) playerDidDiscardKitty(player *Player, cards []*deck.Card, trump *deck.Suit) error {
	if g.phase != PhaseKitty {
		return ErrInvalidPhase
	}

	if player.Position != g.contractor {
		return ErrNotYourTurn
	}

	if len(player.hand) != handSize+kittySize {
		// the kitty must be taken first
		return ErrInvalidPhase
	}

	if len(cards) != kittySize {
		return ErrInvalidKittyDiscard
	}

	seen := make(map[string]bool, kittySize)
	for _, card := range cards {
		key := deck.CardToString(card)
		if seen[key] {
			return ErrInvalidKittyDiscard
		}
		seen[key] = true

		if !player.HasCard(card) {
			return ErrInvalidKittyDiscard
		}
	}

	discards := make(deck.Hand, 0, kittySize)
	for _, card := range cards {
		player.hand.Discard(card)
		discards.AddCard(card)
	}
	g.kitty = discards

	if trump != nil {
		g.setTrump(*trump)
	}

	g.sendLogMessages(playable.SimpleLogMessageSlice(player.PlayerID, "{} buries four cards")...)
	g.startPlay()
	g.emit(&Event{Type: EventKittyResolved})
	return nil
}
