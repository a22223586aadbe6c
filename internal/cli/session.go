package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"tricktaker/pkg/deck"
	"tricktaker/pkg/game"
	"tricktaker/pkg/round"
)

const separator = "========================================"

// Session plays a game at a single terminal, with every player taking turns at the keyboard
type Session struct {
	game   *game.Game
	prompt *Prompter
	styles Styles
	logger logrus.FieldLogger
}

// NewSession returns a new session for the game
func NewSession(logger logrus.FieldLogger, g *game.Game, prompt *Prompter) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Session{
		game:   g,
		prompt: prompt,
		styles: prompt.styles,
		logger: logger.WithField("game", g.ID()),
	}
}

// Run plays every round of the game and shows the final standings
func (s *Session) Run() error {
	names := s.names()
	s.prompt.Printf("Starting new game with players: %s\n", strings.Join(names, ", "))

	for !s.game.IsOver() {
		if err := s.game.StartRound(); err != nil {
			return err
		}

		config, _ := s.game.CurrentConfig()
		s.prompt.Println()
		s.prompt.Println(s.styles.Header(fmt.Sprintf("=== Round %d of %d ===", s.game.RoundNumber(), s.game.TotalRounds())))
		s.prompt.Printf("Cards per player: %d\n", config.CardsPerPlayer)
		s.prompt.Printf("Scoring: %s\n", config)

		if err := s.collectBids(names, config.CardsPerPlayer); err != nil {
			return err
		}

		if trump, ok := s.game.TrumpCard(); ok {
			s.prompt.Printf("\nTrump suit for this round: %s\n", s.styles.Suit(trump.Suit))
		}

		if err := s.playRound(); err != nil {
			return err
		}

		result, err := s.game.EndRound()
		if err != nil {
			return err
		}

		s.showRoundResult(names, result)
		s.flushLog()
	}

	s.showStandings()
	return nil
}

func (s *Session) names() []string {
	players := s.game.Players()
	names := make([]string, len(players))
	for i, player := range players {
		names[i] = player.Name
	}

	return names
}

func (s *Session) collectBids(names []string, numTricks int) error {
	for s.game.NeedsBids() {
		bids, err := s.prompt.AskBids(names, numTricks)
		if err != nil {
			return err
		}

		if err := s.game.PlaceBids(bids); err != nil {
			s.prompt.invalid("Invalid bids: %s", err)
		}
	}

	return nil
}

func (s *Session) playRound() error {
	for !s.game.IsRoundOver() {
		player := s.game.CurrentTurn()
		if player == nil {
			return game.ErrNoRoundInProgress
		}

		s.prompt.Println()
		s.prompt.Println(s.styles.Muted(separator))
		s.prompt.Printf("\nCurrent player: %s\n", player.Name)

		if trump, ok := s.game.TrumpCard(); ok {
			s.prompt.Printf("Trump suit: %s\n", s.styles.Suit(trump.Suit))
		}

		if trick := s.game.CurrentTrick(); len(trick) > 0 {
			s.prompt.Println("\nCurrent trick:")
			s.showPlays(trick)
		}

		hand, err := s.game.Hand(player.Name)
		if err != nil {
			return err
		}

		legal, err := s.game.LegalPlays(player.Name)
		if err != nil {
			return err
		}

		card, err := s.prompt.AskCard(hand, legal)
		if err != nil {
			return err
		}

		trick := s.game.CurrentTrick()
		winner, err := s.game.PlayCard(player.Name, card)
		if err != nil {
			s.prompt.invalid("Invalid play: %s", err)
			continue
		}

		if winner != nil {
			s.prompt.Println("\nCompleted trick:")
			s.showPlays(append(trick, round.PlayedCard{Card: card, Player: player}))
			s.prompt.Printf("\n%s wins the trick!\n", winner.Name)
		}
	}

	return nil
}

func (s *Session) showPlays(plays []round.PlayedCard) {
	for _, play := range plays {
		s.prompt.Printf("%s: %s\n", play.Player.Name, s.styles.Card(play.Card))
	}
}

func (s *Session) showRoundResult(names []string, result *game.RoundResult) {
	s.prompt.Println("\nRound Over!")
	for _, name := range names {
		s.prompt.Printf("%s: %d tricks\n", name, result.Tricks[name])
	}

	s.prompt.Printf("\nScores after round %d:\n", result.Round)
	s.prompt.Println("Round scores:")
	for _, name := range names {
		s.prompt.Printf("%s: %d\n", name, result.Score[name])
	}

	totals := s.game.Totals()
	s.prompt.Println("\nTotal scores:")
	for _, name := range names {
		s.prompt.Printf("%s: %d\n", name, totals[name])
	}
}

func (s *Session) showStandings() {
	s.prompt.Println()
	s.prompt.Println(s.styles.Header("=== Final Scores ==="))
	for i, standing := range s.game.Standings() {
		s.prompt.Printf("%d. %s: %d\n", i+1, standing.Name, standing.Total)
	}
}

// flushLog writes the game's log messages to the debug log
func (s *Session) flushLog() {
	for _, message := range s.game.TakeLogMessages() {
		s.logger.WithFields(logrus.Fields{
			"players": message.Players,
			"cards":   deck.CardsToString(message.Cards),
		}).Debug(message.Message)
	}
}
