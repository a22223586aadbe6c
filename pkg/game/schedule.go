package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"tricktaker/pkg/deck"
	"tricktaker/pkg/scoring"
)

// RoundConfig describes how a single round is dealt and scored
type RoundConfig struct {
	CardsPerPlayer int          `yaml:"cardsPerPlayer" json:"cardsPerPlayer"`
	UseTrump       bool         `yaml:"trump" json:"trump"`
	Scoring        scoring.Kind `yaml:"scoring" json:"scoring"`

	// TargetTricks and Points are only used by fixed-bid rounds
	TargetTricks int `yaml:"targetTricks,omitempty" json:"targetTricks,omitempty"`
	Points       int `yaml:"points,omitempty" json:"points,omitempty"`
}

type scheduleFile struct {
	Rounds []RoundConfig `yaml:"rounds"`
}

// String returns a description of the round, e.g. "Bidding, 10 cards, trump"
func (r RoundConfig) String() string {
	var name string
	switch r.Scoring {
	case scoring.KindBidding:
		name = "Bidding"
	case scoring.KindAllOrNothing:
		name = "All or Nothing"
	case scoring.KindFixedBid:
		name = fmt.Sprintf("Fixed Bid (%d tricks for %d points)", r.TargetTricks, r.Points)
	default:
		name = string(r.Scoring)
	}

	parts := []string{name, fmt.Sprintf("%d cards", r.CardsPerPlayer)}

	if r.UseTrump {
		parts = append(parts, "trump")
	} else {
		parts = append(parts, "no trump")
	}

	return strings.Join(parts, ", ")
}

// Validate returns an error if the round cannot be played by numPlayers
// If numPlayers is less than 1, the size of the deck is not checked
func (r RoundConfig) Validate(numPlayers int) error {
	if r.CardsPerPlayer < 1 {
		return fmt.Errorf("%w: cards per player must be at least 1, got %d", ErrInvalidSchedule, r.CardsPerPlayer)
	}

	if _, err := scoring.ParseKind(string(r.Scoring)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}

	if r.Scoring == scoring.KindFixedBid {
		if r.TargetTricks < 0 || r.TargetTricks > r.CardsPerPlayer {
			return fmt.Errorf("%w: target tricks must be between 0 and %d, got %d", ErrInvalidSchedule, r.CardsPerPlayer, r.TargetTricks)
		}

		if r.Points <= 0 {
			return fmt.Errorf("%w: points must be greater than 0", ErrInvalidSchedule)
		}
	}

	if numPlayers < 1 {
		return nil
	}

	needed := r.CardsPerPlayer * numPlayers
	if r.UseTrump {
		needed++
	}

	if size := deck.New().CardsLeft(); needed > size {
		return fmt.Errorf("%w: %d players need %d cards, the deck has %d", ErrInvalidSchedule, numPlayers, needed, size)
	}

	return nil
}

// newScorer returns the scorer for the round, or nil if it needs bids first
func (r RoundConfig) newScorer() scoring.Scorer {
	switch r.Scoring {
	case scoring.KindAllOrNothing:
		return scoring.NewAllOrNothing()
	case scoring.KindFixedBid:
		return scoring.NewFixedBid(r.TargetTricks, r.Points)
	default:
		return nil
	}
}

// DefaultSchedule returns the standard 20 round schedule
//
//	1-5:   bidding, 10 down to 6 cards, trump
//	6-10:  all or nothing, 6 up to 10 cards, trump
//	11-15: fixed bid, 8 up to 12 cards, 2 up to 6 tricks for 20 points, no trump
//	16-20: bidding, 10 down to 6 cards, no trump
func DefaultSchedule() []RoundConfig {
	schedule := make([]RoundConfig, 0, 20)

	for cards := 10; cards >= 6; cards-- {
		schedule = append(schedule, RoundConfig{CardsPerPlayer: cards, UseTrump: true, Scoring: scoring.KindBidding})
	}

	for cards := 6; cards <= 10; cards++ {
		schedule = append(schedule, RoundConfig{CardsPerPlayer: cards, UseTrump: true, Scoring: scoring.KindAllOrNothing})
	}

	for cards, target := 8, 2; cards <= 12; cards, target = cards+1, target+1 {
		schedule = append(schedule, RoundConfig{
			CardsPerPlayer: cards,
			Scoring:        scoring.KindFixedBid,
			TargetTricks:   target,
			Points:         scoring.DefaultFixedPoints,
		})
	}

	for cards := 10; cards >= 6; cards-- {
		schedule = append(schedule, RoundConfig{CardsPerPlayer: cards, Scoring: scoring.KindBidding})
	}

	return schedule
}

// ValidateSchedule returns an error if any round in the schedule cannot be played by numPlayers
func ValidateSchedule(schedule []RoundConfig, numPlayers int) error {
	if len(schedule) == 0 {
		return fmt.Errorf("%w: no rounds", ErrInvalidSchedule)
	}

	for i, config := range schedule {
		if err := config.Validate(numPlayers); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}

	return nil
}

// ParseSchedule parses a YAML schedule
func ParseSchedule(data []byte) ([]RoundConfig, error) {
	var file scheduleFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse schedule: %w", err)
	}

	if err := ValidateSchedule(file.Rounds, 0); err != nil {
		return nil, err
	}

	return file.Rounds, nil
}

// LoadSchedule reads a YAML schedule from path
func LoadSchedule(path string) ([]RoundConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read schedule: %w", err)
	}

	return ParseSchedule(data)
}

// MarshalSchedule returns the schedule as YAML, in the format LoadSchedule reads
func MarshalSchedule(schedule []RoundConfig) ([]byte, error) {
	return yaml.Marshal(scheduleFile{Rounds: schedule})
}
