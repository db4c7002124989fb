package twohundred

import (
	"fmt"

	"twohundred-server/pkg/deck"
)

// auction bid limits
const (
	minBid  = 50
	maxBid  = 100
	bidStep = 5
)

// Bid is a standing auction bid
type Bid struct {
	PlayerID int64      `json:"playerId"`
	Points   int        `json:"points"`
	Trump    *deck.Suit `json:"trump,omitempty"`
}

// auction tracks the bidding for one deal.
// The turn starts left of the dealer and rotates clockwise, skipping
// players who have passed. Membership in passed only grows until the
// next deal replaces the auction.
type auction struct {
	dealer     int
	turn       int
	currentBid *Bid
	bidderPos  int
	passed     []int          // positions, in pass order
	bidders    map[int64]bool // players who placed at least one bid
	closed     bool
	void       bool
	contractor int // position, -1 until the auction closes with a winner
}

func newAuction(dealer int) *auction {
	return &auction{
		dealer:     dealer,
		turn:       (dealer + 1) % numPlayers,
		bidderPos:  -1,
		bidders:    make(map[int64]bool),
		contractor: -1,
	}
}

func (a *auction) hasPassed(position int) bool {
	for _, p := range a.passed {
		if p == position {
			return true
		}
	}

	return false
}

// submitBid validates and applies a bid. The auction is not touched on a rejection.
func (a *auction) submitBid(player *Player, points int, trump *deck.Suit) error {
	if a.closed {
		return ErrAuctionClosed
	}

	if player.Position != a.turn {
		return ErrNotYourTurn
	}

	if a.hasPassed(player.Position) {
		return ErrAlreadyPassed
	}

	if points%bidStep != 0 {
		return InvalidBidError("must be a multiple of five")
	}

	if points < minBid || points > maxBid {
		return InvalidBidError(fmt.Sprintf("must be between %d and %d", minBid, maxBid))
	}

	if a.currentBid != nil && points <= a.currentBid.Points {
		return InvalidBidError(fmt.Sprintf("must be higher than %d", a.currentBid.Points))
	}

	a.currentBid = &Bid{
		PlayerID: player.PlayerID,
		Points:   points,
		Trump:    trump,
	}
	a.bidderPos = player.Position
	a.bidders[player.PlayerID] = true

	a.advance()
	return nil
}

// submitPass validates and applies a pass
func (a *auction) submitPass(player *Player) error {
	if a.closed {
		return ErrAuctionClosed
	}

	if player.Position != a.turn {
		return ErrNotYourTurn
	}

	if a.hasPassed(player.Position) {
		return ErrAlreadyPassed
	}

	a.passed = append(a.passed, player.Position)

	a.advance()
	return nil
}

// advance closes the auction when a close condition is met, otherwise
// moves the turn to the next player who has not passed.
// Close conditions: all four passed (void), a bid of the maximum, or
// three passes with a standing bid. When the auction closes with a bid,
// the holder of the bid is always the one player who has not passed.
func (a *auction) advance() {
	if len(a.passed) == numPlayers {
		a.closed = true
		a.void = true
		return
	}

	if a.currentBid != nil && (a.currentBid.Points == maxBid || len(a.passed) == numPlayers-1) {
		a.closed = true
		a.contractor = a.bidderPos
		return
	}

	for next := (a.turn + 1) % numPlayers; ; next = (next + 1) % numPlayers {
		if !a.hasPassed(next) {
			a.turn = next
			return
		}
	}
}

// passedPlayerIDs maps the pass set to player ids in pass order
func (a *auction) passedPlayerIDs(players []*Player) []int64 {
	ids := make([]int64, len(a.passed))
	for i, pos := range a.passed {
		ids[i] = players[pos].PlayerID
	}

	return ids
}
