package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tricktaker/pkg/scoring"
)

func TestDefaultSchedule(t *testing.T) {
	a := assert.New(t)

	schedule := DefaultSchedule()
	a.Len(schedule, 20)

	a.Equal(RoundConfig{CardsPerPlayer: 10, UseTrump: true, Scoring: scoring.KindBidding}, schedule[0])
	a.Equal(RoundConfig{CardsPerPlayer: 6, UseTrump: true, Scoring: scoring.KindBidding}, schedule[4])
	a.Equal(RoundConfig{CardsPerPlayer: 6, UseTrump: true, Scoring: scoring.KindAllOrNothing}, schedule[5])
	a.Equal(RoundConfig{CardsPerPlayer: 10, UseTrump: true, Scoring: scoring.KindAllOrNothing}, schedule[9])
	a.Equal(RoundConfig{CardsPerPlayer: 8, Scoring: scoring.KindFixedBid, TargetTricks: 2, Points: 20}, schedule[10])
	a.Equal(RoundConfig{CardsPerPlayer: 12, Scoring: scoring.KindFixedBid, TargetTricks: 6, Points: 20}, schedule[14])
	a.Equal(RoundConfig{CardsPerPlayer: 10, Scoring: scoring.KindBidding}, schedule[15])
	a.Equal(RoundConfig{CardsPerPlayer: 6, Scoring: scoring.KindBidding}, schedule[19])

	a.NoError(ValidateSchedule(schedule, 4))
	a.Error(ValidateSchedule(schedule, 5))
}

func TestRoundConfig_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Bidding, 10 cards, trump", RoundConfig{CardsPerPlayer: 10, UseTrump: true, Scoring: scoring.KindBidding}.String())
	a.Equal("All or Nothing, 6 cards, trump", RoundConfig{CardsPerPlayer: 6, UseTrump: true, Scoring: scoring.KindAllOrNothing}.String())
	a.Equal("Fixed Bid (2 tricks for 20 points), 8 cards, no trump", RoundConfig{CardsPerPlayer: 8, Scoring: scoring.KindFixedBid, TargetTricks: 2, Points: 20}.String())
}

func TestRoundConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config RoundConfig
		err    string
	}{
		{
			name:   "no cards",
			config: RoundConfig{Scoring: scoring.KindBidding},
			err:    "invalid schedule: cards per player must be at least 1, got 0",
		},
		{
			name:   "unknown scoring",
			config: RoundConfig{CardsPerPlayer: 5, Scoring: "hearts"},
			err:    `invalid schedule: unknown scoring kind: "hearts"`,
		},
		{
			name:   "target too high",
			config: RoundConfig{CardsPerPlayer: 5, Scoring: scoring.KindFixedBid, TargetTricks: 6, Points: 20},
			err:    "invalid schedule: target tricks must be between 0 and 5, got 6",
		},
		{
			name:   "no points",
			config: RoundConfig{CardsPerPlayer: 5, Scoring: scoring.KindFixedBid, TargetTricks: 2},
			err:    "invalid schedule: points must be greater than 0",
		},
		{
			name:   "too many cards",
			config: RoundConfig{CardsPerPlayer: 26, UseTrump: true, Scoring: scoring.KindBidding},
			err:    "invalid schedule: 2 players need 53 cards, the deck has 52",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(2)
			assert.EqualError(t, err, tt.err)
			assert.True(t, errors.Is(err, ErrInvalidSchedule))
		})
	}

	assert.NoError(t, RoundConfig{CardsPerPlayer: 26, Scoring: scoring.KindBidding}.Validate(2))
	assert.NoError(t, RoundConfig{CardsPerPlayer: 26, UseTrump: true, Scoring: scoring.KindBidding}.Validate(0))
}

func TestLoadSchedule(t *testing.T) {
	a := assert.New(t)

	schedule, err := LoadSchedule("testdata/schedule.yaml")
	a.NoError(err)
	a.Equal([]RoundConfig{
		{CardsPerPlayer: 5, UseTrump: true, Scoring: scoring.KindBidding},
		{CardsPerPlayer: 5, UseTrump: true, Scoring: scoring.KindAllOrNothing},
		{CardsPerPlayer: 6, Scoring: scoring.KindFixedBid, TargetTricks: 2, Points: 15},
	}, schedule)

	_, err = LoadSchedule("testdata/missing.yaml")
	a.Error(err)
	a.Contains(err.Error(), "could not read schedule")
}

func TestParseSchedule(t *testing.T) {
	a := assert.New(t)

	_, err := ParseSchedule([]byte("rounds: []"))
	a.EqualError(err, "invalid schedule: no rounds")

	_, err = ParseSchedule([]byte("rounds:\n  - cardsPerPlayer: 5\n    scoring: euchre\n"))
	a.EqualError(err, `round 1: invalid schedule: unknown scoring kind: "euchre"`)

	_, err = ParseSchedule([]byte("rounds:\n  - cards: 5\n    scoring: bidding\n"))
	a.Error(err)
	a.Contains(err.Error(), "could not parse schedule")

	data, err := MarshalSchedule(DefaultSchedule())
	a.NoError(err)

	schedule, err := ParseSchedule(data)
	a.NoError(err)
	a.Equal(DefaultSchedule(), schedule)
}
