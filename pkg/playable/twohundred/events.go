package twohundred

// EventType identifies a domain event
type EventType string

// domain events emitted after accepted intents
const (
	EventBidMade        EventType = "bid_made"
	EventAuctionVoid    EventType = "auction_void"
	EventKittyOpened    EventType = "kitty_opened"
	EventKittyResolved  EventType = "kitty_resolved"
	EventCardPlayed     EventType = "card_played"
	EventTrickCompleted EventType = "trick_completed"
	EventRoundCompleted EventType = "round_completed"
	EventGameEnded      EventType = "game_ended"
)

// Event is a domain event. Every event carries the game state it left
// behind; some carry extra payloads.
type Event struct {
	Type         EventType      `json:"type"`
	GameState    *GameState     `json:"gameState"`
	Trick        *Trick         `json:"trick,omitempty"`
	RoundSummary *RoundSummary  `json:"roundSummary,omitempty"`
	WinningTeam  string         `json:"winningTeam,omitempty"`
	FinalScores  map[string]int `json:"finalScores,omitempty"`
}

// Events returns the channel domain events are published on
func (g *Game) Events() <-chan *Event {
	return g.eventChan
}

// emit fills in the current game state and publishes the event.
// A slow consumer must not stall the table, so a full channel drops.
func (g *Game) emit(event *Event) {
	event.GameState = g.getGameState()

	select {
	case g.eventChan <- event:
	default:
	}
}
