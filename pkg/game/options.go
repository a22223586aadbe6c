package game

import "tricktaker/pkg/deck"

// DefaultMaxPlayers is the most players a game allows unless configured otherwise
const DefaultMaxPlayers = 4

const minPlayers = 2

// Options provides options for the game
type Options struct {
	// Schedule is the rounds to play, in order. If empty, DefaultSchedule() is used
	Schedule []RoundConfig
	// Seed seeds the shuffle. If zero, the decks are shuffled with crypto/rand
	Seed int64
	// MaxPlayers is the most players allowed at the table
	MaxPlayers int
	// SourceFactory returns the cards for each round. If nil, a shuffled deck is used
	SourceFactory func() deck.Source
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Schedule:   DefaultSchedule(),
		MaxPlayers: DefaultMaxPlayers,
	}
}
