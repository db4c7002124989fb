package twohundred

import (
	"twohundred-server/pkg/deck"
)

// IsPlayable reports whether the card may be played from the hand.
// A nil leadSuit means the card leads the trick and anything goes. A hand
// that can follow the lead suit must; a void hand may play anything,
// including trump (cutting) or a throwaway. There is no obligation to
// trump or to try to win.
func IsPlayable(card *deck.Card, leadSuit *deck.Suit, trumpSuit *deck.Suit, hand deck.Hand) bool {
	if leadSuit == nil {
		return true
	}

	if card.Suit == *leadSuit {
		return true
	}

	return !hand.HasSuit(*leadSuit)
}

// PlayableCards filters the hand down to the cards IsPlayable accepts
func PlayableCards(hand deck.Hand, leadSuit, trumpSuit *deck.Suit) deck.Hand {
	playable := make(deck.Hand, 0, len(hand))
	for _, card := range hand {
		if IsPlayable(card, leadSuit, trumpSuit, hand) {
			playable = append(playable, card)
		}
	}

	return playable
}
