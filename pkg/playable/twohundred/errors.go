package twohundred

import (
	"errors"
	"fmt"
)

// ErrInvalidPhase is an error when an action is not legal in the current phase
var ErrInvalidPhase = errors.New("action is not legal in the current phase")

// ErrNotYourTurn is returned when it's not the player's turn
var ErrNotYourTurn = errors.New("not player's turn")

// ErrAlreadyPassed happens when a player acts in an auction they have passed out of
var ErrAlreadyPassed = errors.New("player has already passed")

// ErrAuctionClosed happens when a bid or pass arrives after the auction closed
var ErrAuctionClosed = errors.New("the auction is closed")

// ErrIllegalCard happens when a card fails the follow-suit check
var ErrIllegalCard = errors.New("card cannot be played on the current trick")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrInvalidKittyDiscard happens when the kitty discard is not exactly four cards from the contractor's hand
var ErrInvalidKittyDiscard = errors.New("must discard exactly four distinct cards from the hand")

// ErrTrickComplete happens when a fifth card is played to a trick
var ErrTrickComplete = errors.New("the trick already has four cards")

// ErrAlreadyPlayed happens when a player plays twice to the same trick
var ErrAlreadyPlayed = errors.New("player already played to this trick")

// ErrUnknownPlayer is an error when the player is not seated at this game
var ErrUnknownPlayer = errors.New("player not found in this game")

// ErrGameOver is an error when an action is attempted on an ended game
var ErrGameOver = errors.New("game is over")

// InvalidBidError explains why a bid was rejected
type InvalidBidError string

func (e InvalidBidError) Error() string {
	return fmt.Sprintf("invalid bid: %s", string(e))
}

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected exactly %d players, got %d", numPlayers, int(p))
}
