package twohundred

import (
	"twohundred-server/pkg/deck"
)

// Team identifies one of the two partnerships
type Team int

// the two teams; partners sit across from each other
const (
	Team1 Team = iota // positions 0 and 2
	Team2             // positions 1 and 3
)

func (t Team) String() string {
	if t == Team1 {
		return "team1"
	}

	return "team2"
}

// Other returns the opposing team
func (t Team) Other() Team {
	return 1 - t
}

// TeamForPosition returns the team for a seat position
func TeamForPosition(position int) Team {
	return Team(position % 2)
}

// Player is a seat in the game
type Player struct {
	PlayerID int64
	Position int
	IsBot    bool
	hand     deck.Hand
}

// NewPlayer returns a new player in the given seat
func NewPlayer(pid int64, position int) *Player {
	return &Player{
		PlayerID: pid,
		Position: position,
		hand:     make(deck.Hand, 0, handSize),
	}
}

// Team returns the player's team, derived from the seat position
func (p *Player) Team() Team {
	return TeamForPosition(p.Position)
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// AddCard add a card to the players hand
func (p *Player) AddCard(card *deck.Card) {
	p.hand.AddCard(card)
}

// HasCard returns true if the player has the card in their hand
func (p *Player) HasCard(card *deck.Card) bool {
	return p.hand.HasCard(card)
}

// playCard removes the card from the player's hand
func (p *Player) playCard(card *deck.Card) error {
	if !p.hand.Discard(card) {
		return ErrCardNotInHand
	}

	return nil
}

// newDeal resets the player for a fresh deal
func (p *Player) newDeal() {
	p.hand = make(deck.Hand, 0, handSize)
}
