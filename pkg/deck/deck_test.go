package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := New(Variant40)
	assert.Equal(t, 40, d.CardsLeft())
	assert.Equal(t, Card{Rank: 5, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, *d.Cards[39])

	d = New(Variant36)
	assert.Equal(t, 36, d.CardsLeft())
	for _, card := range d.Cards {
		assert.NotEqual(t, 6, card.Rank)
	}
}

func TestDeck_PointTotal(t *testing.T) {
	// every valid deck counts exactly 100
	assert.Equal(t, 100, New(Variant36).PointTotal())
	assert.Equal(t, 100, New(Variant40).PointTotal())
}

func TestDeck_Shuffle(t *testing.T) {
	a := New(Variant40)
	a.SetSeed(1)
	a.Shuffle()
	assert.Equal(t, int64(1), a.Seed())

	b := New(Variant40)
	b.SetSeed(1)
	b.Shuffle()

	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.NotEqual(t, New(Variant40).HashCode(), a.HashCode())

	// a second shuffle continues the stream and produces a new order
	prev := a.HashCode()
	a.Shuffle()
	assert.NotEqual(t, prev, a.HashCode())
	assert.Equal(t, 40, a.CardsLeft())
	assert.Equal(t, 100, a.PointTotal())
}

func TestDeck_Draw(t *testing.T) {
	d := New(Variant36)

	assert.True(t, d.CanDraw(36))
	assert.False(t, d.CanDraw(37))

	for i := 0; i < 36; i++ {
		card, err := d.Draw()
		assert.NotNil(t, card)
		assert.NoError(t, err)
	}

	assert.False(t, d.CanDraw(1))

	card, err := d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)

	d.Shuffle()
	assert.True(t, d.CanDraw(36))
}

func TestVariant(t *testing.T) {
	assert.True(t, Variant36.Valid())
	assert.True(t, Variant40.Valid())
	assert.False(t, Variant(52).Valid())

	assert.Equal(t, 9, len(Variant36.Ranks()))
	assert.Equal(t, 10, len(Variant40.Ranks()))
}
