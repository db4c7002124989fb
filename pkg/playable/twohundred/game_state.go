package twohundred

import (
	"twohundred-server/pkg/deck"
	"twohundred-server/pkg/playable"
)

// GameState is the publicly visible state of the game
type GameState struct {
	Phase          Phase              `json:"phase"`
	RoundNumber    int                `json:"roundNumber"`
	Dealer         int64              `json:"dealer"`
	CurrentTurn    int64              `json:"currentTurn"`
	Trump          *deck.Suit         `json:"trump"`
	CurrentBid     *Bid               `json:"currentBid"`
	Contractor     int64              `json:"contractor"`
	ContractorTeam string             `json:"contractorTeam,omitempty"`
	PassedPlayers  []int64            `json:"passedPlayers"`
	KittyAvailable bool               `json:"kittyAvailable"`
	CurrentTrick   *Trick             `json:"currentTrick"`
	TrickPoints    map[string]int     `json:"trickPoints"`
	Scores         map[string]int     `json:"scores"`
	LastRound      *RoundSummary      `json:"lastRound"`
	Players        []*GameStatePlayer `json:"players"`
	Result         *Result            `json:"result"`
}

// GameStatePlayer is the publicly visible state of a single player
type GameStatePlayer struct {
	PlayerID    int64  `json:"playerId"`
	Position    int    `json:"position"`
	Team        string `json:"team"`
	CardsInHand int    `json:"cardsInHand"`
	TricksWon   int    `json:"tricksWon"`
	Passed      bool   `json:"passed"`
}

// playerState is the game state plus the player's private cards
type playerState struct {
	PlayerID      int64      `json:"playerId"`
	Hand          deck.Hand  `json:"hand"`
	PlayableCards deck.Hand  `json:"playableCards"`
	GameState     *GameState `json:"gameState"`
}

// GetPlayerState returns the current state of the game for the player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	hand := player.Hand()
	var playableCards deck.Hand
	if g.phase == PhasePlaying && player.Position == g.currentPlayer {
		playableCards = PlayableCards(hand, g.currentTrick.LeadSuit(), g.trump)
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data: &playerState{
			PlayerID:      playerID,
			Hand:          hand,
			PlayableCards: playableCards,
			GameState:     g.getGameState(),
		},
	}, nil
}

// getGameState builds the state every seat may see. Hidden cards are
// reported only as counts.
func (g *Game) getGameState() *GameState {
	players := make([]*GameStatePlayer, numPlayers)
	for i, player := range g.players {
		players[i] = &GameStatePlayer{
			PlayerID:    player.PlayerID,
			Position:    player.Position,
			Team:        player.Team().String(),
			CardsInHand: len(player.hand),
			TricksWon:   g.tricksWonBy(player.PlayerID),
			Passed:      g.auction != nil && g.auction.hasPassed(player.Position),
		}
	}

	gs := &GameState{
		Phase:          g.phase,
		RoundNumber:    g.roundNo,
		Dealer:         g.players[g.dealer].PlayerID,
		Trump:          g.trump,
		Contractor:     -1,
		KittyAvailable: g.phase == PhaseKitty && len(g.kitty) == kittySize,
		CurrentTrick:   g.currentTrick,
		Scores:         g.Scores(),
		Players:        players,
		Result:         g.result,
	}

	if g.phase == PhaseBidding || g.phase == PhaseKitty || g.phase == PhasePlaying {
		gs.CurrentTurn = g.players[g.currentPlayer].PlayerID
	} else {
		gs.CurrentTurn = -1
	}

	if g.auction != nil {
		gs.CurrentBid = g.auction.currentBid
		gs.PassedPlayers = g.auction.passedPlayerIDs(g.players)
	}

	if g.contractor >= 0 {
		gs.Contractor = g.players[g.contractor].PlayerID
		gs.ContractorTeam = g.players[g.contractor].Team().String()
	}

	if g.round != nil {
		gs.TrickPoints = map[string]int{
			Team1.String(): g.round.TrickPoints[Team1],
			Team2.String(): g.round.TrickPoints[Team2],
		}
	}

	if n := len(g.rounds); n > 0 {
		gs.LastRound = g.rounds[n-1].Summary
	}

	return gs
}

// tricksWonBy counts the tricks the player has taken in the round in progress
func (g *Game) tricksWonBy(playerID int64) int {
	if g.round == nil {
		return 0
	}

	return g.round.tricksWonBy(playerID)
}
