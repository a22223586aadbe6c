package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tricktaker/pkg/deck"
	"tricktaker/pkg/game"
	"tricktaker/pkg/scoring"
)

func newTestPrompter(input ...string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	return NewPrompter(in, out, NewStyles(false)), out
}

func TestStyles_plain(t *testing.T) {
	a := assert.New(t)

	s := NewStyles(false)
	a.Equal("A♠", s.Card(deck.CardFromString("14s")))
	a.Equal("10♡, J♢", s.Cards(deck.CardsFromString("10h,11d")))
	a.Equal("♣", s.Suit(deck.Clubs))
	a.Equal("Round", s.Header("Round"))

	a.Equal("", Styles{}.Cards(nil))
}

func TestStyles_color(t *testing.T) {
	s := NewStyles(true)
	assert.Contains(t, s.Card(deck.CardFromString("14h")), "A♡")
	assert.Contains(t, s.Header("Final Scores"), "Final Scores")
}

func TestPrompter_AskInt(t *testing.T) {
	a := assert.New(t)

	p, out := newTestPrompter("abc", "7", " 3 ")
	n, err := p.AskInt("Number: ", 0, 5)
	a.NoError(err)
	a.Equal(3, n)
	a.Equal(3, strings.Count(out.String(), "Number: "))
	a.Contains(out.String(), "Please enter a number.")
	a.Contains(out.String(), "Please enter a number between 0 and 5.")

	_, err = p.AskInt("Number: ", 0, 5)
	a.Equal(ErrInputClosed, err)
}

func TestPrompter_AskPlayers(t *testing.T) {
	a := assert.New(t)

	p, out := newTestPrompter("5", "2", "Alice", "Alice", "")
	names, err := p.AskPlayers(2, 4)
	a.NoError(err)
	a.Len(names, 2)
	a.Equal("Alice", names[0])
	a.NotEmpty(names[1])
	a.NotEqual("Alice", names[1])
	a.Contains(out.String(), "Alice is already playing.")
}

func TestPrompter_AskPlayers_blankKeepsSeat(t *testing.T) {
	a := assert.New(t)

	p, _ := newTestPrompter("3", "", "Alice", "Bob")
	names, err := p.AskPlayers(2, 4)
	a.NoError(err)
	a.Len(names, 3)
	a.NotEmpty(names[0])
	a.NotContains([]string{"Alice", "Bob"}, names[0])
	a.Equal("Alice", names[1])
	a.Equal("Bob", names[2])
}

func TestPrompter_AskBids(t *testing.T) {
	a := assert.New(t)

	p, out := newTestPrompter("1", "x", "3", "0", "1", "0")
	bids, err := p.AskBids([]string{"Alice", "Bob", "Carol"}, 2)
	a.NoError(err)
	a.Equal(map[string]int{"Alice": 1, "Bob": 0, "Carol": 0}, bids)

	// Carol cannot bid 1, so the bids don't add up to 2
	output := out.String()
	a.Contains(output, "Enter bids (0-2)")
	a.Contains(output, "Cannot bid 1")
	a.Contains(output, "The last bid cannot make the bids add up to 2.")
}

func TestPrompter_AskBids_overbid(t *testing.T) {
	p, out := newTestPrompter("2", "2")
	bids, err := p.AskBids([]string{"Alice", "Bob"}, 2)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"Alice": 2, "Bob": 2}, bids)
	assert.Contains(t, out.String(), "Cannot bid 0")
}

func TestPrompter_AskCard(t *testing.T) {
	a := assert.New(t)

	hand := deck.Hand(deck.CardsFromString("2c,14c,3h,13s"))
	legal := deck.Hand(deck.CardsFromString("2c,14c"))

	p, out := newTestPrompter("2", "1")
	card, err := p.AskCard(hand, legal)
	a.NoError(err)
	a.Equal(deck.CardFromString("14c"), card)

	output := out.String()
	a.Contains(output, "[0] 2♣\n")
	a.Contains(output, "[1] A♣\n")
	a.Contains(output, "    3♡\n")
	a.Contains(output, "Please enter a number between 0 and 1.")

	_, err = p.AskCard(hand, deck.Hand{})
	a.EqualError(err, "no playable cards")
}

func TestSession_Run(t *testing.T) {
	a := assert.New(t)

	g, err := game.NewGame(nil, []string{"Alice", "Bob"}, game.Options{
		Schedule: []game.RoundConfig{
			{CardsPerPlayer: 1, Scoring: scoring.KindBidding},
			{CardsPerPlayer: 1, UseTrump: true, Scoring: scoring.KindAllOrNothing},
		},
		SourceFactory: func() deck.Source {
			return deck.FromString("14h,2h,3d")
		},
	})
	require.NoError(t, err)

	p, out := newTestPrompter(
		// round 1 bids, Bob cannot bid 0
		"1", "0", "1",
		// Alice leads, Bob follows
		"0", "0",
		// round 2, trump is diamonds
		"0", "0",
	)

	require.NoError(t, NewSession(nil, g, p).Run())
	a.True(g.IsOver())

	output := out.String()
	a.Contains(output, "Starting new game with players: Alice, Bob")
	a.Contains(output, "=== Round 1 of 2 ===")
	a.Contains(output, "Scoring: Bidding, 1 cards, no trump")
	a.Contains(output, "Cannot bid 0")
	a.Contains(output, "Current player: Bob")
	a.Contains(output, "Current trick:\nAlice: A♡\n")
	a.Contains(output, "Completed trick:\nAlice: A♡\nBob: 2♡\n")
	a.Contains(output, "Alice wins the trick!")
	a.Contains(output, "Trump suit for this round: ♢")
	a.Contains(output, "=== Final Scores ===\n1. Alice: 21\n2. Bob: -10\n")
}

func TestSession_Run_inputClosed(t *testing.T) {
	g, err := game.NewGame(nil, []string{"Alice", "Bob"}, game.Options{
		Schedule: []game.RoundConfig{{CardsPerPlayer: 1, Scoring: scoring.KindAllOrNothing}},
	})
	require.NoError(t, err)

	p, _ := newTestPrompter()
	err = NewSession(nil, g, p).Run()
	assert.Equal(t, ErrInputClosed, err)
}
