package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"

	"twohundred-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Variant selects the deck size for a game of Two Hundred
type Variant int

// deck variants
const (
	Variant36 Variant = 36
	Variant40 Variant = 40
)

// Valid returns true if the variant is a known deck size
func (v Variant) Valid() bool {
	return v == Variant36 || v == Variant40
}

// Ranks returns the rank set for the variant, low to high
func (v Variant) Ranks() []int {
	if v == Variant36 {
		// the sixes are stripped
		return []int{5, 7, 8, 9, 10, Jack, Queen, King, Ace}
	}

	return []int{5, 6, 7, 8, 9, 10, Jack, Queen, King, Ace}
}

// Deck represents a playing deck
type Deck struct {
	Cards   []*Card `json:"cards"`
	variant Variant
	seed    int64
	rng     *rand.Rand
}

// New returns a new deck of cards for the given variant.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(variant Variant) *Deck {
	d := &Deck{
		variant: variant,
		seed:    -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildDeck() {
	ranks := d.variant.Ranks()
	cards := make([]*Card, 0, int(d.variant))
	for _, suit := range Suits {
		for _, rank := range ranks {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle a freshly built deck of cards
// Call SetSeed() first for a deterministic order, otherwise a
// crypto-random seed is chosen.
func (d *Deck) Shuffle() {
	d.buildDeck()

	if d.rng == nil {
		d.SetSeed(rng.Crypto{}.Int63())
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed used to shuffle the deck
func (d *Deck) Seed() int64 {
	return d.seed
}

// Variant returns the deck variant
func (d *Deck) Variant() Variant {
	return d.variant
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// PointTotal returns the sum of the point values of all cards left in the deck.
// A full deck always totals 100 regardless of variant.
func (d *Deck) PointTotal() int {
	total := 0
	for _, card := range d.Cards {
		total += card.PointValue()
	}

	return total
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
