package twohundred

import (
	"errors"
	"time"

	"twohundred-server/pkg/deck"
)

// Options are options for creating a new game of Two Hundred
type Options struct {
	// DeckVariant selects the 36- or 40-card deck
	DeckVariant deck.Variant `json:"deckVariant"`
	// ScoreTarget is the cumulative score a team must reach to win
	ScoreTarget int `json:"scoreTarget"`
	// HasKitty enables the four-card kitty exchange (40-card deck only)
	HasKitty bool `json:"hasKitty"`
	// TurnTimeout is the per-turn deadline. 0 disables turn timers
	TurnTimeout time.Duration `json:"turnTimeout"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		DeckVariant: deck.Variant40,
		ScoreTarget: 200,
	}
}

var validScoreTargets = map[int]bool{
	200:  true,
	300:  true,
	500:  true,
	1000: true,
}

// Validate ensures the options describe a playable table
func (o Options) Validate() error {
	if !o.DeckVariant.Valid() {
		return errors.New("deck variant must be 36 or 40")
	}

	if !validScoreTargets[o.ScoreTarget] {
		return errors.New("score target must be one of 200, 300, 500 or 1000")
	}

	if o.HasKitty && o.DeckVariant != deck.Variant40 {
		return errors.New("the kitty requires the 40-card deck")
	}

	if o.TurnTimeout < 0 {
		return errors.New("turn timeout cannot be negative")
	}

	return nil
}
