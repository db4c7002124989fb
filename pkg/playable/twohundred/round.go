package twohundred

import (
	"twohundred-server/pkg/deck"
)

// Round is the record of one deal. It is created when an auction closes
// with a contractor and sealed into the game history once scored.
type Round struct {
	RoundNumber    int           `json:"roundNumber"`
	WinningBid     *Bid          `json:"winningBid"`
	ContractorTeam Team          `json:"contractorTeam"`
	Trump          *deck.Suit    `json:"trump,omitempty"`
	Tricks         []*Trick      `json:"tricks"`
	KittyDiscards  deck.Hand     `json:"kittyDiscards,omitempty"`
	TrickPoints    [2]int        `json:"trickPoints"`
	Summary        *RoundSummary `json:"summary,omitempty"`
}

// tricksWonBy counts the tricks in this round taken by the player
func (r *Round) tricksWonBy(playerID int64) int {
	count := 0
	for _, trick := range r.Tricks {
		if trick.WinnerID == playerID {
			count++
		}
	}

	return count
}
