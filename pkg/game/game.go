package game

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tricktaker/internal/rng"
	"tricktaker/pkg/deck"
	"tricktaker/pkg/round"
	"tricktaker/pkg/scoring"
)

// Game runs a schedule of rounds for a fixed set of players and keeps the running totals
type Game struct {
	id      string
	options Options
	players []*round.Player
	logger  logrus.FieldLogger

	// roundIndex is the number of rounds that have been started
	roundIndex int
	current    *round.Round
	config     RoundConfig
	// scorer is nil in a bidding round until the bids are placed
	scorer scoring.Scorer
	// turn is the index of the player who plays next
	turn int

	totals      map[*round.Player]int
	gameLog     *GameLog
	logMessages []*LogMessage
}

// Standing is a player's place at the end of the game
type Standing struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// RoundResult is the outcome of a finished round
type RoundResult struct {
	Round  int            `json:"round"`
	Config RoundConfig    `json:"config"`
	Tricks map[string]int `json:"tricks"`
	Score  map[string]int `json:"score"`
}

// NewGame returns a new game for the named players
// Players are seated in the order given, the first player leads the first trick of every round
func NewGame(logger logrus.FieldLogger, names []string, options Options) (*Game, error) {
	if options.MaxPlayers <= 0 {
		options.MaxPlayers = DefaultMaxPlayers
	}

	if len(names) < minPlayers || len(names) > options.MaxPlayers {
		return nil, PlayerCountError{Max: options.MaxPlayers, Got: len(names)}
	}

	seen := make(map[string]bool, len(names))
	players := make([]*round.Player, len(names))
	for i, name := range names {
		if name == "" {
			return nil, PlayerNameError(fmt.Sprintf("player %d has no name", i+1))
		}

		if seen[name] {
			return nil, PlayerNameError(fmt.Sprintf("duplicate player name: %s", name))
		}

		seen[name] = true
		players[i] = round.NewPlayer(name)
	}

	if len(options.Schedule) == 0 {
		options.Schedule = DefaultSchedule()
	}

	if err := ValidateSchedule(options.Schedule, len(players)); err != nil {
		return nil, err
	}

	if options.SourceFactory == nil {
		g := rng.FromSeed(options.Seed)
		options.SourceFactory = func() deck.Source {
			return deck.Shuffled(g)
		}
	}

	id := uuid.New().String()
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	totals := make(map[*round.Player]int, len(players))
	for _, player := range players {
		totals[player] = 0
	}

	g := &Game{
		id:      id,
		options: options,
		players: players,
		logger:  logger.WithField("game", id),
		totals:  totals,
		gameLog: newGameLog(id, players),
	}

	g.addLogMessage(nil, nil, "new game with %d rounds", len(options.Schedule))

	return g, nil
}

// ID returns the unique ID of the game
func (g *Game) ID() string {
	return g.id
}

// Players returns the players in seating order
func (g *Game) Players() []*round.Player {
	return append([]*round.Player{}, g.players...)
}

// Schedule returns the rounds of the game
func (g *Game) Schedule() []RoundConfig {
	return append([]RoundConfig{}, g.options.Schedule...)
}

// RoundNumber returns the number of the current round, starting at 1
// Between rounds it returns the number of the last round played
func (g *Game) RoundNumber() int {
	return g.roundIndex
}

// TotalRounds returns the number of rounds in the game
func (g *Game) TotalRounds() int {
	return len(g.options.Schedule)
}

// StartRound deals the next round of the schedule
func (g *Game) StartRound() error {
	if g.current != nil {
		return ErrRoundInProgress
	}

	if g.roundIndex >= len(g.options.Schedule) {
		return ErrGameIsOver
	}

	config := g.options.Schedule[g.roundIndex]
	logger := g.logger.WithField("round", g.roundIndex+1)

	r, err := round.New(logger, g.players)
	if err != nil {
		return err
	}

	if err := r.Setup(config.CardsPerPlayer, config.UseTrump, g.options.SourceFactory()); err != nil {
		return err
	}

	g.roundIndex++
	g.current = r
	g.config = config
	g.scorer = config.newScorer()
	g.turn = 0

	var trumpCard *deck.Card
	if card, ok := r.TrumpCard(); ok {
		trumpCard = &card
		g.addLogMessage(nil, []deck.Card{card}, "round %d: %s, trump is %s", g.roundIndex, config, card.Suit)
	} else {
		g.addLogMessage(nil, nil, "round %d: %s", g.roundIndex, config)
	}

	g.gameLog.AddRound(config, trumpCard)

	logger.WithField("config", config.String()).Info("round started")

	return nil
}

// CurrentConfig returns the configuration of the round in progress
func (g *Game) CurrentConfig() (RoundConfig, bool) {
	if g.current == nil {
		return RoundConfig{}, false
	}

	return g.config, true
}

// InProgress returns true if a round has been started and not yet ended
func (g *Game) InProgress() bool {
	return g.current != nil
}

// NeedsBids returns true if the current round cannot be played until bids are placed
func (g *Game) NeedsBids() bool {
	return g.current != nil && g.scorer == nil
}

// PlaceBids sets every player's bid for the current round
// The bids cannot add up to the number of tricks in the round
func (g *Game) PlaceBids(bids map[string]int) error {
	if g.current == nil {
		return ErrNoRoundInProgress
	}

	if !g.NeedsBids() {
		return ErrBidsNotExpected
	}

	for name := range bids {
		if g.current.PlayerByName(name) == nil {
			return fmt.Errorf("%w: %s", round.ErrUnknownPlayer, name)
		}
	}

	byPlayer := make(map[*round.Player]int, len(g.players))
	for _, player := range g.players {
		bid, ok := bids[player.Name]
		if !ok {
			return fmt.Errorf("%w: %s", scoring.ErrMissingBid, player.Name)
		}

		byPlayer[player] = bid
	}

	scorer, err := scoring.NewBidding(byPlayer, g.config.CardsPerPlayer)
	if err != nil {
		return err
	}

	g.scorer = scorer

	logged := make(map[string]int, len(bids))
	for _, player := range g.players {
		logged[player.Name] = bids[player.Name]
		g.addLogMessage([]string{player.Name}, nil, "bid %d", bids[player.Name])
	}

	g.gameLog.SetBids(logged)

	return nil
}

// Bid returns the player's bid in the current round
// ok is false if the round isn't a bidding round or bids have not been placed
func (g *Game) Bid(name string) (bid int, ok bool) {
	bidding, isBidding := g.scorer.(*scoring.Bidding)
	if !isBidding || g.current == nil {
		return 0, false
	}

	player := g.current.PlayerByName(name)
	if player == nil {
		return 0, false
	}

	return bidding.Bid(player)
}

// CurrentTurn returns the player who plays next
// Returns nil if there is no round in progress, bids are needed, or all cards have been played
func (g *Game) CurrentTurn() *round.Player {
	if g.current == nil || g.NeedsBids() || g.current.IsOver() {
		return nil
	}

	return g.players[g.turn]
}

// Hand returns a copy of the player's hand in the current round
func (g *Game) Hand(name string) (deck.Hand, error) {
	player, err := g.roundPlayer(name)
	if err != nil {
		return nil, err
	}

	hand := g.current.Hand(player)
	hand.Sort()
	return hand, nil
}

// LegalPlays returns the cards the player could play to the current trick
func (g *Game) LegalPlays(name string) (deck.Hand, error) {
	player, err := g.roundPlayer(name)
	if err != nil {
		return nil, err
	}

	legal := g.current.LegalPlays(player)
	legal.Sort()
	return legal, nil
}

// CurrentTrick returns the cards played so far in the trick in progress
func (g *Game) CurrentTrick() []round.PlayedCard {
	if g.current == nil {
		return nil
	}

	return g.current.CurrentTrick()
}

// TrumpCard returns the card that set the trump suit of the current round
func (g *Game) TrumpCard() (deck.Card, bool) {
	if g.current == nil {
		return deck.Card{}, false
	}

	return g.current.TrumpCard()
}

// TrickCounts returns how many tricks each player has won in the current round
func (g *Game) TrickCounts() map[string]int {
	counts := make(map[string]int, len(g.players))
	if g.current == nil {
		return counts
	}

	for _, player := range g.players {
		counts[player.Name] = g.current.TrickCount(player)
	}

	return counts
}

func (g *Game) roundPlayer(name string) (*round.Player, error) {
	if g.current == nil {
		return nil, ErrNoRoundInProgress
	}

	player := g.current.PlayerByName(name)
	if player == nil {
		return nil, round.ErrUnknownPlayer
	}

	return player, nil
}

// PlayCard plays the card for the player
// When the card completes the trick, the trick is evaluated, its winner is returned and they lead the next trick
func (g *Game) PlayCard(name string, card deck.Card) (winner *round.Player, err error) {
	player, err := g.roundPlayer(name)
	if err != nil {
		return nil, err
	}

	if g.NeedsBids() {
		return nil, ErrBidsRequired
	}

	if player != g.CurrentTurn() {
		return nil, ErrIsNotPlayersTurn
	}

	if err := g.current.PlayCard(player, card); err != nil {
		return nil, err
	}

	g.addLogMessage([]string{player.Name}, []deck.Card{card}, "played %s", card)

	if !g.current.IsTrickComplete() {
		g.turn = (g.turn + 1) % len(g.players)
		return nil, nil
	}

	winner, err = g.current.EvaluateTrick()
	if err != nil {
		return nil, err
	}

	tricks := g.current.TricksWon()[winner]
	trick := tricks[len(tricks)-1]
	g.gameLog.AddTrick(trick)

	for i, p := range g.players {
		if p == winner {
			g.turn = i
			break
		}
	}

	g.addLogMessage([]string{winner.Name}, trick.Cards(), "won the trick")

	return winner, nil
}

// IsRoundOver returns true if every card of the current round has been played
func (g *Game) IsRoundOver() bool {
	return g.current != nil && g.current.IsOver()
}

// EndRound scores the finished round and adds the points to the totals
func (g *Game) EndRound() (*RoundResult, error) {
	if g.current == nil {
		return nil, ErrNoRoundInProgress
	}

	if !g.current.IsOver() {
		return nil, ErrRoundNotOver
	}

	if g.scorer == nil {
		return nil, ErrBidsRequired
	}

	score, err := g.scorer.ScoreRound(g.current)
	if err != nil {
		return nil, err
	}

	result := &RoundResult{
		Round:  g.roundIndex,
		Config: g.config,
		Tricks: g.TrickCounts(),
		Score:  make(map[string]int, len(score)),
	}

	for _, player := range g.players {
		points := score[player]
		g.totals[player] += points
		result.Score[player.Name] = points
		g.addLogMessage([]string{player.Name}, nil, "took %d tricks for %d points", result.Tricks[player.Name], points)
	}

	g.gameLog.EndRound(score)

	g.logger.WithFields(logrus.Fields{
		"round": g.roundIndex,
		"score": result.Score,
	}).Info("round ended")

	g.current = nil
	g.scorer = nil

	if g.IsOver() {
		standings := g.Standings()
		g.addLogMessage([]string{standings[0].Name}, nil, "won the game with %d points", standings[0].Total)
	}

	return result, nil
}

// IsOver returns true when every round of the schedule has been played and scored
func (g *Game) IsOver() bool {
	return g.current == nil && g.roundIndex >= len(g.options.Schedule)
}

// Totals returns every player's total across the rounds scored so far
func (g *Game) Totals() map[string]int {
	totals := make(map[string]int, len(g.totals))
	for player, total := range g.totals {
		totals[player.Name] = total
	}

	return totals
}

// Standings returns the players ordered by total, highest first
// Players with the same total are ordered by name
func (g *Game) Standings() []Standing {
	standings := make([]Standing, len(g.players))
	for i, player := range g.players {
		standings[i] = Standing{
			Name:  player.Name,
			Total: g.totals[player],
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Total == standings[j].Total {
			return standings[i].Name < standings[j].Name
		}

		return standings[i].Total > standings[j].Total
	})

	return standings
}

func (g *Game) addLogMessage(players []string, cards []deck.Card, format string, a ...interface{}) {
	g.logMessages = append(g.logMessages, newLogMessage(players, cards, format, a...))
}

// TakeLogMessages returns the log messages since the last call
func (g *Game) TakeLogMessages() []*LogMessage {
	messages := g.logMessages
	g.logMessages = nil
	return messages
}

// Log returns the log of the game so far
func (g *Game) Log() *GameLog {
	return g.gameLog
}
