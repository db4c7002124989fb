package gamefactory

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"twohundred-server/internal/config"
	"twohundred-server/pkg/deck"
	"twohundred-server/pkg/playable"
	"twohundred-server/pkg/playable/twohundred"
)

type twoHundredFactory struct{}

func (t twoHundredFactory) CreateGame(logger logrus.FieldLogger, playerIDs []int64, additionalData playable.AdditionalData) (playable.Playable, error) {
	opts, err := optionsFromAdditionalData(additionalData)
	if err != nil {
		return nil, err
	}

	game, err := twohundred.NewGame(logger, playerIDs, opts)
	if err != nil {
		return nil, err
	}

	if err := game.Deal(); err != nil {
		return nil, err
	}

	return game, nil
}

func (t twoHundredFactory) Details(additionalData playable.AdditionalData) (string, error) {
	opts, err := optionsFromAdditionalData(additionalData)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Two Hundred to %d", opts.ScoreTarget), nil
}

// optionsFromAdditionalData builds game options from the client payload,
// falling back to the configured table defaults
func optionsFromAdditionalData(additionalData playable.AdditionalData) (twohundred.Options, error) {
	cfg := config.Instance()

	opts := twohundred.Options{
		DeckVariant: deck.Variant(cfg.Game.DeckVariant),
		ScoreTarget: cfg.Game.ScoreTarget,
		TurnTimeout: time.Duration(cfg.Game.TurnTimeoutMillis) * time.Millisecond,
	}

	if variant, ok := additionalData.GetInt("deckVariant"); ok {
		opts.DeckVariant = deck.Variant(variant)
	}

	if target, ok := additionalData.GetInt("scoreTarget"); ok {
		opts.ScoreTarget = target
	}

	if hasKitty, ok := additionalData.GetBool("hasKitty"); ok {
		opts.HasKitty = hasKitty
	}

	if millis, ok := additionalData.GetInt("turnTimeoutMillis"); ok {
		opts.TurnTimeout = time.Duration(millis) * time.Millisecond
	}

	if err := opts.Validate(); err != nil {
		return twohundred.Options{}, err
	}

	return opts, nil
}
