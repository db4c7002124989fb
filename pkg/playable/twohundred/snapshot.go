package twohundred

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"twohundred-server/pkg/deck"
	"twohundred-server/pkg/playable"
)

// PlayerSnapshot captures one seat, private cards included
type PlayerSnapshot struct {
	PlayerID int64     `json:"playerId"`
	Position int       `json:"position"`
	IsBot    bool      `json:"isBot"`
	Hand     deck.Hand `json:"hand"`
}

// AuctionSnapshot captures the bidding state of the deal in progress
type AuctionSnapshot struct {
	Dealer     int     `json:"dealer"`
	Turn       int     `json:"turn"`
	CurrentBid *Bid    `json:"currentBid"`
	BidderPos  int     `json:"bidderPos"`
	Passed     []int   `json:"passed"`
	Bidders    []int64 `json:"bidders"`
	Closed     bool    `json:"closed"`
	Void       bool    `json:"void"`
	Contractor int     `json:"contractor"`
}

// pending dealer actions by name, for the snapshot wire format
const (
	pendingActionNextDeal  = "nextDeal"
	pendingActionClearGame = "clearGame"
)

// Snapshot is the full game state in a serializable form. Restoring a
// snapshot yields a game indistinguishable from the original except for
// its clocks, which restart.
type Snapshot struct {
	Options       Options           `json:"options"`
	Phase         Phase             `json:"phase"`
	RoundNumber   int               `json:"roundNumber"`
	Dealer        int               `json:"dealer"`
	CurrentPlayer int               `json:"currentPlayer"`
	Players       []*PlayerSnapshot `json:"players"`
	Auction       *AuctionSnapshot  `json:"auction"`
	Trump         *deck.Suit        `json:"trump"`
	Contractor    int               `json:"contractor"`
	Kitty         deck.Hand         `json:"kitty"`
	CurrentTrick  *Trick            `json:"currentTrick"`
	Round         *Round            `json:"round"`
	Rounds        []*Round          `json:"rounds"`
	Scores        [2]int            `json:"scores"`
	Result        *Result           `json:"result"`
	PendingAction string            `json:"pendingAction,omitempty"`
}

// Snapshot returns a serializable copy of the game state
func (g *Game) Snapshot() *Snapshot {
	players := make([]*PlayerSnapshot, len(g.players))
	for i, player := range g.players {
		players[i] = &PlayerSnapshot{
			PlayerID: player.PlayerID,
			Position: player.Position,
			IsBot:    player.IsBot,
			Hand:     player.Hand(),
		}
	}

	var a *AuctionSnapshot
	if g.auction != nil {
		passed := make([]int, len(g.auction.passed))
		copy(passed, g.auction.passed)

		bidders := make([]int64, 0, len(g.auction.bidders))
		for _, player := range g.players {
			if g.auction.bidders[player.PlayerID] {
				bidders = append(bidders, player.PlayerID)
			}
		}

		a = &AuctionSnapshot{
			Dealer:     g.auction.dealer,
			Turn:       g.auction.turn,
			CurrentBid: g.auction.currentBid,
			BidderPos:  g.auction.bidderPos,
			Passed:     passed,
			Bidders:    bidders,
			Closed:     g.auction.closed,
			Void:       g.auction.void,
			Contractor: g.auction.contractor,
		}
	}

	pending := ""
	if pda := g.pendingDealerAction; pda != nil {
		switch pda.Action {
		case dealerActionNextDeal:
			pending = pendingActionNextDeal
		case dealerActionClearGame:
			pending = pendingActionClearGame
		}
	}

	return &Snapshot{
		Options:       g.options,
		Phase:         g.phase,
		RoundNumber:   g.roundNo,
		Dealer:        g.dealer,
		CurrentPlayer: g.currentPlayer,
		Players:       players,
		Auction:       a,
		Trump:         g.trump,
		Contractor:    g.contractor,
		Kitty:         g.kitty.Clone(),
		CurrentTrick:  g.currentTrick,
		Round:         g.round,
		Rounds:        g.rounds,
		Scores:        g.scores,
		Result:        g.result,
		PendingAction: pending,
	}
}

// RestoreGame rebuilds a game from a snapshot. Turn deadlines and
// dealer pauses restart from now.
func RestoreGame(logger logrus.FieldLogger, snapshot *Snapshot) (*Game, error) {
	if err := snapshot.Options.Validate(); err != nil {
		return nil, err
	}

	if len(snapshot.Players) != numPlayers {
		return nil, PlayerCountError(len(snapshot.Players))
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	players := make([]*Player, numPlayers)
	idToPlayer := make(map[int64]*Player)
	for _, ps := range snapshot.Players {
		if ps.Position < 0 || ps.Position >= numPlayers {
			return nil, fmt.Errorf("invalid position: %d", ps.Position)
		}

		if players[ps.Position] != nil {
			return nil, fmt.Errorf("duplicate position: %d", ps.Position)
		}

		if _, found := idToPlayer[ps.PlayerID]; found {
			return nil, fmt.Errorf("duplicate player id: %d", ps.PlayerID)
		}

		player := NewPlayer(ps.PlayerID, ps.Position)
		player.IsBot = ps.IsBot
		player.hand = ps.Hand.Clone()
		players[ps.Position] = player
		idToPlayer[ps.PlayerID] = player
	}

	g := &Game{
		options:       snapshot.Options,
		players:       players,
		idToPlayer:    idToPlayer,
		phase:         snapshot.Phase,
		dealer:        snapshot.Dealer,
		currentPlayer: snapshot.CurrentPlayer,
		roundNo:       snapshot.RoundNumber,
		trump:         snapshot.Trump,
		contractor:    snapshot.Contractor,
		kitty:         snapshot.Kitty.Clone(),
		currentTrick:  snapshot.CurrentTrick,
		round:         snapshot.Round,
		rounds:        snapshot.Rounds,
		scores:        snapshot.Scores,
		result:        snapshot.Result,
		logger:        logger,
		logChan:       make(chan []*playable.LogMessage, 256),
		eventChan:     make(chan *Event, 256),
	}

	if as := snapshot.Auction; as != nil {
		bidders := make(map[int64]bool, len(as.Bidders))
		for _, pid := range as.Bidders {
			if _, found := idToPlayer[pid]; !found {
				return nil, fmt.Errorf("unknown bidder id: %d", pid)
			}

			bidders[pid] = true
		}

		passed := make([]int, len(as.Passed))
		copy(passed, as.Passed)

		g.auction = &auction{
			dealer:     as.Dealer,
			turn:       as.Turn,
			currentBid: as.CurrentBid,
			bidderPos:  as.BidderPos,
			passed:     passed,
			bidders:    bidders,
			closed:     as.Closed,
			void:       as.Void,
			contractor: as.Contractor,
		}
	}

	switch snapshot.PendingAction {
	case "":
	case pendingActionNextDeal:
		g.schedule(dealerActionNextDeal)
	case pendingActionClearGame:
		g.schedule(dealerActionClearGame)
	default:
		return nil, fmt.Errorf("unknown pending action: %s", snapshot.PendingAction)
	}

	switch snapshot.Phase {
	case PhaseBidding, PhaseKitty, PhasePlaying:
		g.armTurnTimer()
	}

	return g, nil
}
