package twohundred

import (
	"twohundred-server/pkg/deck"
)

// PlayedCard pairs a card with the player who played it
type PlayedCard struct {
	Card     *deck.Card `json:"card"`
	PlayerID int64      `json:"playerId"`
}

// Trick is up to four cards played in turn order. WinnerID and Points are
// set when the fourth card resolves the trick.
type Trick struct {
	Cards    []*PlayedCard `json:"cards"`
	WinnerID int64         `json:"winnerId,omitempty"`
	Points   int           `json:"points"`
}

func newTrick() *Trick {
	return &Trick{
		Cards: make([]*PlayedCard, 0, numPlayers),
	}
}

// LeadSuit returns the suit of the first card, or nil if nothing has been played
func (t *Trick) LeadSuit() *deck.Suit {
	if len(t.Cards) == 0 {
		return nil
	}

	suit := t.Cards[0].Card.Suit
	return &suit
}

// IsComplete returns true once all four cards are down
func (t *Trick) IsComplete() bool {
	return len(t.Cards) == numPlayers
}

// append adds a card to the trick. Turn order is the caller's concern.
func (t *Trick) append(card *deck.Card, playerID int64) error {
	if t.IsComplete() {
		return ErrTrickComplete
	}

	for _, pc := range t.Cards {
		if pc.PlayerID == playerID {
			return ErrAlreadyPlayed
		}
	}

	t.Cards = append(t.Cards, &PlayedCard{
		Card:     card,
		PlayerID: playerID,
	})

	return nil
}

// resolve determines the winner and point total of a completed trick.
// Trump beats every other suit regardless of rank; otherwise the highest
// card of the lead suit wins. Ranks are unique within a suit, so no
// further tie-break exists.
func (t *Trick) resolve(trump deck.Suit) {
	best := t.Cards[0]
	points := best.Card.PointValue()

	for _, pc := range t.Cards[1:] {
		points += pc.Card.PointValue()
		if beats(pc.Card, best.Card, trump) {
			best = pc
		}
	}

	t.WinnerID = best.PlayerID
	t.Points = points
}

// beats returns true if the card wins over the current best card
func beats(card, best *deck.Card, trump deck.Suit) bool {
	if card.Suit == best.Suit {
		return card.Rank > best.Rank
	}

	return card.Suit == trump
}
