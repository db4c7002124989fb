package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	assert.Equal(t, "K♡", (&Card{Rank: King, Suit: Hearts}).String())
	assert.Equal(t, "Q♢", (&Card{Rank: Queen, Suit: Diamonds}).String())
	assert.Equal(t, "J♣", (&Card{Rank: Jack, Suit: Clubs}).String())
	assert.Equal(t, "10♡", (&Card{Rank: 10, Suit: Hearts}).String())
	assert.Equal(t, "5♣", (&Card{Rank: 5, Suit: Clubs}).String())
}

func TestCard_PointValue(t *testing.T) {
	assert.Equal(t, 10, (&Card{Rank: Ace, Suit: Spades}).PointValue())
	assert.Equal(t, 10, (&Card{Rank: 10, Suit: Hearts}).PointValue())
	assert.Equal(t, 5, (&Card{Rank: 5, Suit: Diamonds}).PointValue())
	assert.Equal(t, 0, (&Card{Rank: King, Suit: Clubs}).PointValue())
	assert.Equal(t, 0, (&Card{Rank: 9, Suit: Clubs}).PointValue())
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, (&Card{Rank: 9, Suit: Clubs}).Equal(&Card{Rank: 9, Suit: Clubs}))
	assert.False(t, (&Card{Rank: 9, Suit: Clubs}).Equal(&Card{Rank: 9, Suit: Spades}))
	assert.False(t, (&Card{Rank: 9, Suit: Clubs}).Equal(&Card{Rank: 10, Suit: Clubs}))
}

func TestCardFromString(t *testing.T) {
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, *CardFromString("14s"))
	assert.Equal(t, Card{Rank: 5, Suit: Hearts}, *CardFromString("5h"))
	assert.Equal(t, Card{Rank: 10, Suit: Diamonds}, *CardFromString("10D"))
	assert.Nil(t, CardFromString(""))

	assert.Panics(t, func() { CardFromString("4c") })
	assert.Panics(t, func() { CardFromString("15c") })
	assert.Panics(t, func() { CardFromString("10x") })
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("14s,10h,5c")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, *cards[0])
	assert.Equal(t, Card{Rank: 10, Suit: Hearts}, *cards[1])
	assert.Equal(t, Card{Rank: 5, Suit: Clubs}, *cards[2])

	assert.Equal(t, 0, len(CardsFromString("")))
}

func TestCardToString(t *testing.T) {
	assert.Equal(t, "14s", CardToString(&Card{Rank: Ace, Suit: Spades}))
	assert.Equal(t, "", CardToString(nil))
	assert.Equal(t, "14s,10h", CardsToString(CardsFromString("14s,10h")))
}

func TestSuitFromString(t *testing.T) {
	for _, s := range []string{"hearts", "h", "H"} {
		suit, ok := SuitFromString(s)
		assert.True(t, ok)
		assert.Equal(t, Hearts, suit)
	}

	_, ok := SuitFromString("x")
	assert.False(t, ok)

	_, ok = SuitFromString("")
	assert.False(t, ok)
}
