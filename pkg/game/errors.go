package game

import (
	"errors"
	"fmt"
)

// ErrIsNotPlayersTurn is returned when it's not the player's turn
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrRoundInProgress happens when a round is started before the previous one has ended
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrNoRoundInProgress happens when a round action is attempted between rounds
var ErrNoRoundInProgress = errors.New("no round is in progress")

// ErrRoundNotOver is an error when a round is ended before all tricks are played
var ErrRoundNotOver = errors.New("the round is not over")

// ErrBidsRequired happens when a card is played in a bidding round before bids are placed
var ErrBidsRequired = errors.New("bids must be placed before playing")

// ErrBidsNotExpected happens when bids are placed in a round that doesn't take them
var ErrBidsNotExpected = errors.New("this round does not take bids")

// ErrGameIsOver is an error when an action is attempted on an ended game
var ErrGameIsOver = errors.New("game is over")

// ErrInvalidSchedule is returned when a round configuration cannot be played
var ErrInvalidSchedule = errors.New("invalid schedule")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d-%d players, got %d", minPlayers, p.Max, p.Got)
}

// PlayerNameError is an error on a player name
type PlayerNameError string

func (p PlayerNameError) Error() string {
	return string(p)
}
