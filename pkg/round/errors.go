package round

import (
	"errors"
	"fmt"

	"tricktaker/pkg/deck"
)

// ErrInvalidConfiguration is matched by every error that prevents a round from being created or set up
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrIllegalPlay is matched by every error that rejects a card being played
var ErrIllegalPlay = errors.New("illegal play")

// ErrIncompleteTrick is matched when a trick is evaluated before every player has played
var ErrIncompleteTrick = errors.New("incomplete trick")

// PlayerCountError is an error on the number of players in the round
type PlayerCountError struct {
	Min int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("need at least %d players, got %d", p.Min, p.Got)
}

// Is allows errors.Is(err, ErrInvalidConfiguration)
func (p PlayerCountError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// ConfigurationError is returned when a round cannot be created or set up
type ConfigurationError string

func (c ConfigurationError) Error() string {
	return string(c)
}

// Is allows errors.Is(err, ErrInvalidConfiguration)
func (c ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// ErrTooFewCards happens when setup is asked to deal less than one card
const ErrTooFewCards = ConfigurationError("must deal at least 1 card per player")

// ErrAlreadySetUp happens when a round that was successfully set up is set up again
const ErrAlreadySetUp = ConfigurationError("round has already been set up")

// IllegalPlayError is a reason a card cannot be played
// It is safe to show to the player
type IllegalPlayError string

func (i IllegalPlayError) Error() string {
	return string(i)
}

// Is allows errors.Is(err, ErrIllegalPlay)
func (i IllegalPlayError) Is(target error) bool {
	return target == ErrIllegalPlay
}

// IllegalPlayError values
const (
	ErrTrickComplete = IllegalPlayError("trick is already complete")
	ErrCardNotInHand = IllegalPlayError("card is not in hand")
	ErrUnknownPlayer = IllegalPlayError("player is not in this round")
	ErrNotSetUp      = IllegalPlayError("round has not been set up")
)

// FollowSuitError happens when a player holding the led suit tries to play another suit
type FollowSuitError struct {
	LedSuit deck.Suit
	// Playable are the cards the player is allowed to play instead
	Playable deck.Hand
}

func (f FollowSuitError) Error() string {
	return fmt.Sprintf("must follow suit with one of: %s", f.Playable.Display())
}

// Is allows errors.Is(err, ErrIllegalPlay)
func (f FollowSuitError) Is(target error) bool {
	return target == ErrIllegalPlay
}

// IncompleteTrickError is returned when a trick is evaluated too early
type IncompleteTrickError struct {
	Expected int
	Got      int
}

func (i IncompleteTrickError) Error() string {
	return fmt.Sprintf("cannot evaluate incomplete trick: expected %d cards, got %d", i.Expected, i.Got)
}

// Is allows errors.Is(err, ErrIncompleteTrick)
func (i IncompleteTrickError) Is(target error) bool {
	return target == ErrIncompleteTrick
}
