package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tricktaker/pkg/deck"
	"tricktaker/pkg/round"
	"tricktaker/pkg/scoring"
)

// LogMessage is a human-readable event in the game
// If Players is empty, it's a general statement, otherwise the message is about those players
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Players []string    `json:"players"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

func newLogMessage(players []string, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// GameLog keeps track of everything that happened in the game
type GameLog struct {
	ID      string          `json:"id"`
	Players []string        `json:"players"`
	Rounds  []*GameLogRound `json:"rounds"`
	Totals  map[string]int  `json:"totals"`
}

// GameLogRound is an individual round
type GameLogRound struct {
	Round     int             `json:"round"`
	Config    RoundConfig     `json:"config"`
	TrumpCard *deck.Card      `json:"trumpCard"`
	Bids      map[string]int  `json:"bids,omitempty"`
	Tricks    []*GameLogTrick `json:"tricks"`
	Score     map[string]int  `json:"score"`
}

// GameLogTrick is a completed trick
type GameLogTrick struct {
	Plays  []GameLogPlay `json:"plays"`
	Winner string        `json:"winner"`
}

// GameLogPlay is a card played to a trick
type GameLogPlay struct {
	Player string    `json:"player"`
	Card   deck.Card `json:"card"`
}

func newGameLog(id string, players []*round.Player) *GameLog {
	names := make([]string, len(players))
	totals := make(map[string]int, len(players))
	for i, player := range players {
		names[i] = player.Name
		totals[player.Name] = 0
	}

	return &GameLog{
		ID:      id,
		Players: names,
		Rounds:  make([]*GameLogRound, 0),
		Totals:  totals,
	}
}

// AddRound adds a new round
func (g *GameLog) AddRound(config RoundConfig, trumpCard *deck.Card) {
	g.Rounds = append(g.Rounds, &GameLogRound{
		Round:     len(g.Rounds) + 1,
		Config:    config,
		TrumpCard: trumpCard,
		Tricks:    make([]*GameLogTrick, 0),
	})
}

func (g *GameLog) lastRound() *GameLogRound {
	last := len(g.Rounds) - 1
	return g.Rounds[last]
}

// SetBids records the bids of the current round
func (g *GameLog) SetBids(bids map[string]int) {
	g.lastRound().Bids = bids
}

// AddTrick records a completed trick in the current round
func (g *GameLog) AddTrick(trick round.Trick) {
	plays := make([]GameLogPlay, len(trick.Plays))
	for i, play := range trick.Plays {
		plays[i] = GameLogPlay{
			Player: play.Player.Name,
			Card:   play.Card,
		}
	}

	lr := g.lastRound()
	lr.Tricks = append(lr.Tricks, &GameLogTrick{
		Plays:  plays,
		Winner: trick.Winner.Name,
	})
}

// EndRound records the score of the current round and adds it to the totals
func (g *GameLog) EndRound(score scoring.Score) {
	named := make(map[string]int, len(score))
	for player, points := range score {
		named[player.Name] = points
		g.Totals[player.Name] += points
	}

	g.lastRound().Score = named
}
