package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if the hand contains at least one card of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// Discard will discard the specified card and return true if it was found
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// PointValue returns the combined point value of the cards in the hand
func (h Hand) PointValue() int {
	total := 0
	for _, c := range h {
		total += c.PointValue()
	}

	return total
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
