package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	hand := Hand{}
	hand.AddCard(CardFromString("14s"))
	hand.AddCard(CardFromString("10h"))
	hand.AddCard(CardFromString("5h"))

	assert.True(t, hand.HasCard(CardFromString("10h")))
	assert.False(t, hand.HasCard(CardFromString("10c")))

	assert.True(t, hand.HasSuit(Hearts))
	assert.True(t, hand.HasSuit(Spades))
	assert.False(t, hand.HasSuit(Clubs))

	assert.Equal(t, 25, hand.PointValue())

	assert.True(t, hand.Discard(CardFromString("10h")))
	assert.False(t, hand.Discard(CardFromString("10h")))
	assert.Equal(t, 2, hand.Len())
	assert.Equal(t, 15, hand.PointValue())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("14s,10h"))
	clone := hand.Clone()

	assert.True(t, hand.Discard(CardFromString("14s")))
	assert.Equal(t, 1, hand.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestHand_Sort(t *testing.T) {
	hand := Hand(CardsFromString("14s,5c,10h,7c"))
	sort.Sort(hand)

	assert.Equal(t, "5c,7c,10h,14s", hand.String())
}
