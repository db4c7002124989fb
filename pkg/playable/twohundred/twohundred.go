package twohundred

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"twohundred-server/pkg/deck"
	"twohundred-server/pkg/playable"
)

// table constants
const (
	numPlayers     = 4
	handSize       = 9
	kittySize      = 4
	tricksPerRound = handSize
)

// dealerPause is how long the table rests between a completed round and the next deal
const dealerPause = time.Second * 2

// Phase is a stage in the game state machine
type Phase int

// game phases
const (
	PhaseBidding Phase = iota
	PhaseKitty
	PhasePlaying
	PhaseRoundEnd
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseBidding:
		return "bidding"
	case PhaseKitty:
		return "kitty"
	case PhasePlaying:
		return "playing"
	case PhaseRoundEnd:
		return "round_end"
	case PhaseFinished:
		return "finished"
	}

	return "unknown"
}

// MarshalJSON encodes the phase by name
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a phase name
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, phase := range []Phase{PhaseBidding, PhaseKitty, PhasePlaying, PhaseRoundEnd, PhaseFinished} {
		if phase.String() == s {
			*p = phase
			return nil
		}
	}

	return fmt.Errorf("unknown phase: %s", s)
}

type dealerAction int

const (
	dealerActionNextDeal dealerAction = iota
	dealerActionClearGame
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}

// Result describes a finished game
type Result struct {
	WinningTeam Team           `json:"winningTeam"`
	Winners     []int64        `json:"winners"`
	FinalScores map[string]int `json:"finalScores"`
	Rounds      int            `json:"rounds"`
}

// Game is a game of Two Hundred
type Game struct {
	options    Options
	players    []*Player // indexed by seat position
	idToPlayer map[int64]*Player

	phase         Phase
	dealer        int
	currentPlayer int
	roundNo       int
	auction       *auction
	trump         *deck.Suit
	contractor    int // position, -1 outside of a contract
	kitty         deck.Hand
	currentTrick  *Trick
	round         *Round // the round in progress
	rounds        []*Round
	scores        [2]int
	result        *Result

	turnDeadline        time.Time
	pendingDealerAction *pendingDealerAction

	logger    logrus.FieldLogger
	logChan   chan []*playable.LogMessage
	eventChan chan *Event

	// sendUpdate will send an update on the next tick if true
	sendUpdate bool

	// done is set after the game is over and the table has been cleared
	done bool
}

// NewGame returns a new game of Two Hundred
// playerIDs must be in clockwise seating order; the seat position is the index.
func NewGame(logger logrus.FieldLogger, playerIDs []int64, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if len(playerIDs) != numPlayers {
		return nil, PlayerCountError(len(playerIDs))
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	players := make([]*Player, numPlayers)
	idToPlayer := make(map[int64]*Player)
	for i, pid := range playerIDs {
		if _, found := idToPlayer[pid]; found {
			return nil, fmt.Errorf("duplicate player id: %d", pid)
		}

		players[i] = NewPlayer(pid, i)
		idToPlayer[pid] = players[i]
	}

	g := &Game{
		options:    opts,
		players:    players,
		idToPlayer: idToPlayer,
		contractor: -1,
		logger:     logger,
		logChan:    make(chan []*playable.LogMessage, 256),
		eventChan:  make(chan *Event, 256),
	}

	g.sendLogMessages(playable.SimpleLogMessage(0, "New game of Two Hundred to %d points", opts.ScoreTarget))
	return g, nil
}

// Name returns "two-hundred"
func (g *Game) Name() string {
	return "two-hundred"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Deal shuffles and deals the next round: two-card batches around the
// table starting left of the dealer, the four set-aside cards after the
// second lap of a 40-card deal, and a final single card each.
func (g *Game) Deal() error {
	d := deck.New(g.options.DeckVariant)
	d.Shuffle()

	for _, player := range g.players {
		player.newDeal()
	}
	g.kitty = nil

	for lap := 0; lap < (handSize-1)/2; lap++ {
		for i := 0; i < numPlayers; i++ {
			player := g.players[(g.dealer+1+i)%numPlayers]
			for n := 0; n < 2; n++ {
				card, err := d.Draw()
				if err != nil {
					return err
				}

				player.AddCard(card)
			}
		}

		if lap == 1 && g.options.DeckVariant == deck.Variant40 {
			for n := 0; n < kittySize; n++ {
				card, err := d.Draw()
				if err != nil {
					return err
				}

				g.kitty.AddCard(card)
			}
		}
	}

	for i := 0; i < numPlayers; i++ {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		g.players[(g.dealer+1+i)%numPlayers].AddCard(card)
	}

	g.roundNo++
	g.phase = PhaseBidding
	g.trump = nil
	g.contractor = -1
	g.currentTrick = nil
	g.round = nil
	g.auction = newAuction(g.dealer)
	g.currentPlayer = g.auction.turn
	g.armTurnTimer()

	g.sendLogMessages(playable.SimpleLogMessage(g.players[g.dealer].PlayerID, "{} deals round %d", g.roundNo))
	return nil
}

// Action performs an action
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, false, ErrUnknownPlayer
	}

	if g.phase == PhaseFinished {
		return nil, false, ErrGameOver
	}

	log := g.logger.WithField("playerID", playerID)

	switch message.Action {
	case "bid":
		points, ok := message.AdditionalData.GetInt("points")
		if !ok {
			return nil, false, InvalidBidError("points are required")
		}

		trump, err := trumpFromAdditionalData(message.AdditionalData)
		if err != nil {
			return nil, false, err
		}

		log.WithField("points", points).Debug("player bids")
		if err := g.playerDidBid(player, points, trump); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	case "pass":
		log.Debug("player passes")
		if err := g.playerDidPass(player); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	case "takeKitty":
		log.Debug("player takes the kitty")
		if err := g.playerDidTakeKitty(player); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	case "discardKitty":
		trump, err := trumpFromAdditionalData(message.AdditionalData)
		if err != nil {
			return nil, false, err
		}

		log.WithField("cards", message.Cards).Debug("player discards to the kitty")
		if err := g.playerDidDiscardKitty(player, message.Cards, trump); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	case "playCard":
		if len(message.Cards) != 1 {
			return nil, false, fmt.Errorf("expected to get 1 card, got %d", len(message.Cards))
		}

		log.WithField("card", message.Cards[0]).Debug("play card")
		if err := g.playerDidPlayCard(player, message.Cards[0]); err != nil {
			return nil, false, err
		}

		return playable.OK(), true, nil
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}
}

func trumpFromAdditionalData(data playable.AdditionalData) (*deck.Suit, error) {
	s, ok := data.GetString("trump")
	if !ok || s == "" {
		return nil, nil
	}

	suit, valid := deck.SuitFromString(s)
	if !valid {
		return nil, fmt.Errorf("unknown suit: %s", s)
	}

	return &suit, nil
}

func (g *Game) playerDidBid(player *Player, points int, trump *deck.Suit) error {
	if g.phase != PhaseBidding {
		return ErrInvalidPhase
	}

	if err := g.auction.submitBid(player, points, trump); err != nil {
		return err
	}

	g.sendLogMessages(playable.SimpleLogMessage(player.PlayerID, "{} bid %d", points))
	g.afterAuctionAction()
	g.emit(&Event{Type: EventBidMade})
	return nil
}

func (g *Game) playerDidPass(player *Player) error {
	if g.phase != PhaseBidding {
		return ErrInvalidPhase
	}

	if err := g.auction.submitPass(player); err != nil {
		return err
	}

	g.sendLogMessages(playable.SimpleLogMessage(player.PlayerID, "{} passed"))
	g.afterAuctionAction()
	return nil
}

// afterAuctionAction advances the state machine once a bid or pass has
// been accepted: rotate the turn, or leave bidding when the auction closed.
func (g *Game) afterAuctionAction() {
	a := g.auction
	if !a.closed {
		g.currentPlayer = a.turn
		g.armTurnTimer()
		return
	}

	if a.void {
		g.sendLogMessages(playable.SimpleLogMessage(0, "All four players passed; the deal moves on"))
		g.phase = PhaseRoundEnd
		g.schedule(dealerActionNextDeal)
		g.emit(&Event{Type: EventAuctionVoid})
		return
	}

	g.contractor = a.contractor
	contractor := g.players[a.contractor]
	bid := a.currentBid

	g.round = &Round{
		RoundNumber:    g.roundNo,
		WinningBid:     bid,
		ContractorTeam: contractor.Team(),
	}

	g.sendLogMessages(playable.SimpleLogMessage(contractor.PlayerID, "{} wins the auction at %d", bid.Points))

	if bid.Trump != nil {
		g.setTrump(*bid.Trump)
	}

	if g.options.HasKitty {
		g.phase = PhaseKitty
		g.currentPlayer = a.contractor
		g.armTurnTimer()
		return
	}

	g.startPlay()
}

// setTrump fixes the trump suit for the round
func (g *Game) setTrump(suit deck.Suit) {
	g.trump = &suit
	if g.round != nil {
		g.round.Trump = &suit
	}

	g.sendLogMessages(playable.SimpleLogMessage(0, "Trump is %s", suit))
}

// startPlay enters the playing phase with the contractor leading
func (g *Game) startPlay() {
	g.phase = PhasePlaying
	g.currentPlayer = g.contractor
	g.currentTrick = newTrick()
	g.armTurnTimer()
}

func (g *Game) playerDidPlayCard(player *Player, card *deck.Card) error {
	if g.phase != PhasePlaying {
		return ErrInvalidPhase
	}

	if player.Position != g.currentPlayer {
		return ErrNotYourTurn
	}

	if !player.HasCard(card) {
		return ErrCardNotInHand
	}

	if !IsPlayable(card, g.currentTrick.LeadSuit(), g.trump, player.hand) {
		return ErrIllegalCard
	}

	if err := g.currentTrick.append(card, player.PlayerID); err != nil {
		return err
	}

	// already validated against the hand
	if err := player.playCard(card); err != nil {
		panic(err)
	}

	// an undeclared trump locks to the contractor's first lead
	if g.trump == nil {
		g.setTrump(card.Suit)
	}

	g.sendLogMessages(cardLogMessage(player.PlayerID, card, "{} played a card"))
	g.emit(&Event{Type: EventCardPlayed})

	if g.currentTrick.IsComplete() {
		g.finishTrick()
		return nil
	}

	g.currentPlayer = (g.currentPlayer + 1) % numPlayers
	g.armTurnTimer()
	return nil
}

// finishTrick resolves the completed trick, credits the winning team and
// puts the winner on lead, or ends the round after the ninth trick
func (g *Game) finishTrick() {
	trick := g.currentTrick
	trick.resolve(*g.trump)

	winner := g.idToPlayer[trick.WinnerID]
	g.round.Tricks = append(g.round.Tricks, trick)
	g.round.TrickPoints[winner.Team()] += trick.Points

	g.sendLogMessages(playable.SimpleLogMessage(trick.WinnerID, "{} takes the trick (%d points)", trick.Points))
	g.emit(&Event{Type: EventTrickCompleted, Trick: trick})

	if len(g.round.Tricks) == tricksPerRound {
		g.finishRound()
		return
	}

	g.currentTrick = newTrick()
	g.currentPlayer = winner.Position
	g.armTurnTimer()
}

// finishRound seals and scores the round, then either ends the game or
// schedules the next deal
func (g *Game) finishRound() {
	g.phase = PhaseRoundEnd
	g.currentTrick = nil

	if g.options.DeckVariant == deck.Variant40 {
		// the set-aside cards count for the defenders, exchanged or not
		g.round.KittyDiscards = g.kitty
	}

	summary := scoreRound(g.round, g.defenderDidBid(), g.scores)
	g.round.Summary = summary
	g.scores = summary.Scores
	g.rounds = append(g.rounds, g.round)
	g.round = nil
	g.kitty = nil

	if summary.BidMade {
		g.sendLogMessages(playable.SimpleLogMessage(0, "%s made the bid with %d points", summary.ContractorTeam, summary.TrickPoints[summary.ContractorTeam]))
	} else {
		g.sendLogMessages(playable.SimpleLogMessage(0, "%s went down; %d points to the box", summary.ContractorTeam, summary.Bid.Points))
	}

	g.emit(&Event{Type: EventRoundCompleted, RoundSummary: summary})

	if winner, over := gameWinner(g.scores, summary.ContractorTeam, g.options.ScoreTarget); over {
		g.finishGame(winner)
		return
	}

	g.schedule(dealerActionNextDeal)
}

// defenderDidBid reports whether either member of the defending team
// placed a bid during this round's auction
func (g *Game) defenderDidBid() bool {
	defenderTeam := g.round.ContractorTeam.Other()
	for _, player := range g.players {
		if player.Team() == defenderTeam && g.auction.bidders[player.PlayerID] {
			return true
		}
	}

	return false
}

func (g *Game) finishGame(winner Team) {
	g.phase = PhaseFinished
	g.result = &Result{
		WinningTeam: winner,
		Winners:     g.teamMembers(winner),
		FinalScores: map[string]int{
			Team1.String(): g.scores[Team1],
			Team2.String(): g.scores[Team2],
		},
		Rounds: len(g.rounds),
	}

	g.sendLogMessages(playable.SimpleLogMessage(0, "%s wins with %d points", winner, g.scores[winner]))
	g.emit(&Event{
		Type:        EventGameEnded,
		WinningTeam: winner.String(),
		FinalScores: g.result.FinalScores,
	})
	g.schedule(dealerActionClearGame)
}

// teamMembers returns the player ids on the team, in seat order
func (g *Game) teamMembers(team Team) []int64 {
	ids := make([]int64, 0, 2)
	for _, player := range g.players {
		if player.Team() == team {
			ids = append(ids, player.PlayerID)
		}
	}

	return ids
}

// GetEndOfGameDetails returns details at the end of the game
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.done || g.result == nil {
		return nil, false
	}

	return &playable.GameOverDetails{
		Winners:     g.result.Winners,
		FinalScores: g.result.FinalScores,
		Log:         g.result,
	}, true
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick advances dealer- and clock-driven state
func (g *Game) Tick() (bool, error) {
	if g.sendUpdate {
		g.sendUpdate = false
		return true, nil
	}

	if g.done {
		return false, nil
	}

	if pda := g.pendingDealerAction; pda != nil {
		if !time.Now().After(pda.ExecuteAfter) {
			return false, nil
		}

		g.pendingDealerAction = nil
		switch pda.Action {
		case dealerActionNextDeal:
			if err := g.nextDeal(); err != nil {
				g.logger.WithError(err).Error("could not start the next deal")
				return false, err
			}
		case dealerActionClearGame:
			g.done = true
		default:
			panic(fmt.Sprintf("unknown dealer action: %d", pda.Action))
		}

		return true, nil
	}

	return g.resolveTurnTimeout(), nil
}

// nextDeal rotates the dealer one seat clockwise and starts a fresh auction
func (g *Game) nextDeal() error {
	g.dealer = (g.dealer + 1) % numPlayers
	return g.Deal()
}

func (g *Game) schedule(action dealerAction) {
	g.pendingDealerAction = &pendingDealerAction{
		Action:       action,
		ExecuteAfter: time.Now().Add(dealerPause),
	}
}

func (g *Game) armTurnTimer() {
	if g.options.TurnTimeout > 0 {
		g.turnDeadline = time.Now().Add(g.options.TurnTimeout)
	}
}

// resolveTurnTimeout applies the timeout policy once the current player's
// deadline elapses. Returns true if the state changed.
func (g *Game) resolveTurnTimeout() bool {
	if g.options.TurnTimeout <= 0 || g.turnDeadline.IsZero() || time.Now().Before(g.turnDeadline) {
		return false
	}

	if g.phase != PhaseBidding {
		// no forced play; give the player another timer's worth
		g.armTurnTimer()
		return false
	}

	g.sendLogMessages(playable.SimpleLogMessage(g.players[g.currentPlayer].PlayerID, "{} ran out of time and passes"))
	return g.ForceTimeout()
}

// ForceTimeout resolves the current player's inaction immediately.
// During bidding it is an implicit pass; in any other phase it is a no-op.
func (g *Game) ForceTimeout() bool {
	if g.phase != PhaseBidding {
		return false
	}

	if err := g.playerDidPass(g.players[g.currentPlayer]); err != nil {
		// a pass is always legal for the player on turn
		g.logger.WithError(err).Error("could not force a pass")
		return false
	}

	return true
}

// Scores returns the cumulative team scores
func (g *Game) Scores() map[string]int {
	return map[string]int{
		Team1.String(): g.scores[Team1],
		Team2.String(): g.scores[Team2],
	}
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan == nil {
		return
	}

	select {
	case g.logChan <- msg:
	default:
	}
}

func cardLogMessage(playerID int64, card *deck.Card, format string, a ...interface{}) *playable.LogMessage {
	return &playable.LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: []int64{playerID},
		Cards:     []*deck.Card{card},
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}
