package scoring

import (
	"fmt"

	"tricktaker/pkg/round"
)

// Kind identifies a scoring scheme
type Kind string

// Kind constants
const (
	KindBidding      Kind = "bidding"
	KindAllOrNothing Kind = "all-or-nothing"
	KindFixedBid     Kind = "fixed-bid"
)

// Kinds lists every scoring scheme
var Kinds = []Kind{KindBidding, KindAllOrNothing, KindFixedBid}

// ParseKind returns the Kind named by s
func ParseKind(s string) (Kind, error) {
	for _, kind := range Kinds {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown scoring kind: %q", s)
}

// History is the part of a finished round that is needed for scoring
// *round.Round satisfies this interface
type History interface {
	// Players returns the players in turn order
	Players() []*round.Player
	// TrickCount returns how many tricks the player won
	TrickCount(player *round.Player) int
}

var _ History = (*round.Round)(nil)

// Score is the number of points each player earned in a round
type Score map[*round.Player]int

// Scorer calculates the score of a finished round
// The set of scorers is closed: Bidding, AllOrNothing and FixedBid
type Scorer interface {
	// Kind returns which scheme this is
	Kind() Kind

	// Name returns a human-readable name of the scheme
	Name() string

	// ScoreRound calculates the points for every player. The round is not modified
	ScoreRound(h History) (Score, error)

	sealed()
}
