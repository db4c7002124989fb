package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits contains every suit in deck-building order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// SuitFromString returns the suit for a string like "hearts" or "h"
func SuitFromString(s string) (Suit, bool) {
	switch strings.ToLower(s) {
	case "clubs", "c":
		return Clubs, true
	case "diamonds", "d":
		return Diamonds, true
	case "hearts", "h":
		return Hearts, true
	case "spades", "s":
		return Spades, true
	}

	return "", false
}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// PointValue returns the counting value of the card.
// Aces and tens count ten, fives count five, everything else is worthless.
func (c *Card) PointValue() int {
	switch c.Rank {
	case Ace, 10:
		return 10
	case 5:
		return 5
	}

	return 0
}

var cardRx = regexp.MustCompile(`(?i)^([5-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 5 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	suit, ok := SuitFromString(match[2])
	if !ok {
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c).
// The string doubles as the card's identity since ranks are unique
// within a suit in a single deck.
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 5c,10h,14s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
