package round

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"tricktaker/internal/rng"
	"tricktaker/pkg/deck"
)

const minPlayers = 2

// Round is a single deal of a trick-taking game
// The round is the only owner of the players' hands. Cards leave a hand only through PlayCard
type Round struct {
	players     []*Player
	playerOrder map[*Player]int

	hands        map[*Player]deck.Hand
	currentTrick []PlayedCard
	tricksWon    map[*Player][]Trick

	// trumpCard is nil when the round is played without trump
	trumpCard *deck.Card

	// dealt is every card drawn from the source for this round, including the trump card
	dealt int
	ready bool

	logger logrus.FieldLogger
}

// New returns a new round for players
// Players should be in the correct order, the first player leads the first trick
func New(logger logrus.FieldLogger, players []*Player) (*Round, error) {
	if len(players) < minPlayers {
		return nil, PlayerCountError{Min: minPlayers, Got: len(players)}
	}

	if logger == nil {
		logger = discardLogger()
	}

	playerOrder := make(map[*Player]int, len(players))
	names := make(map[string]bool, len(players))
	for i, player := range players {
		if player == nil || player.Name == "" {
			return nil, ConfigurationError(fmt.Sprintf("player %d has no name", i+1))
		}

		if names[player.Name] {
			return nil, ConfigurationError(fmt.Sprintf("duplicate player name: %s", player.Name))
		}

		if _, found := playerOrder[player]; found {
			return nil, ConfigurationError(fmt.Sprintf("player %s appears twice", player.Name))
		}

		names[player.Name] = true
		playerOrder[player] = i
	}

	r := &Round{
		players:     append([]*Player{}, players...),
		playerOrder: playerOrder,
		logger:      logger,
	}
	r.reset()

	return r, nil
}

// NewFromNames creates a new player for each name and returns a new round
func NewFromNames(logger logrus.FieldLogger, names ...string) (*Round, error) {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name)
	}

	return New(logger, players)
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func (r *Round) reset() {
	r.hands = make(map[*Player]deck.Hand, len(r.players))
	r.tricksWon = make(map[*Player][]Trick, len(r.players))
	for _, player := range r.players {
		r.hands[player] = deck.Hand{}
		r.tricksWon[player] = []Trick{}
	}

	r.currentTrick = make([]PlayedCard, 0, len(r.players))
	r.trumpCard = nil
	r.dealt = 0
	r.ready = false
}

// Setup deals cardsPerPlayer cards to each player from source and, if useTrump is true, draws a trump card
// If source is nil, a freshly shuffled standard deck is used.
// If setup fails, the round cannot be played until Setup succeeds
func (r *Round) Setup(cardsPerPlayer int, useTrump bool, source deck.Source) error {
	if r.ready {
		return ErrAlreadySetUp
	}

	r.reset()

	if source == nil {
		source = deck.Shuffled(rng.Crypto{})
	}

	if cardsPerPlayer < 1 {
		return ErrTooFewCards
	}

	available := source.CardsLeft()
	if useTrump {
		available--
	}

	// cardsPerPlayer * len(r.players) may overflow
	if available < 0 || cardsPerPlayer > available/len(r.players) {
		return ConfigurationError(fmt.Sprintf("not enough cards for %d per player", cardsPerPlayer))
	}

	for _, player := range r.players {
		cards, err := source.Take(cardsPerPlayer)
		if err != nil {
			r.reset()
			return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}

		r.hands[player] = deck.Hand(cards)
		r.dealt += len(cards)
	}

	if useTrump {
		cards, err := source.Take(1)
		if err != nil {
			r.reset()
			return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}

		trumpCard := cards[0]
		r.trumpCard = &trumpCard
		r.dealt++
	}

	r.ready = true

	r.logger.WithFields(logrus.Fields{
		"players":        len(r.players),
		"cardsPerPlayer": cardsPerPlayer,
		"trumpCard":      r.trumpCard,
	}).Debug("round set up")

	return nil
}

// Players returns the players in turn order
func (r *Round) Players() []*Player {
	return append([]*Player{}, r.players...)
}

// PlayerByName returns the player with the name, or nil if there isn't one
func (r *Round) PlayerByName(name string) *Player {
	for _, player := range r.players {
		if player.Name == name {
			return player
		}
	}

	return nil
}

// Hand returns a copy of the player's hand
// Returns nil if the player is not in the round
func (r *Round) Hand(player *Player) deck.Hand {
	hand, ok := r.hands[player]
	if !ok {
		return nil
	}

	return hand.Clone()
}

// TrumpSuit returns the trump suit. ok is false if the round has no trump
func (r *Round) TrumpSuit() (suit deck.Suit, ok bool) {
	if r.trumpCard == nil {
		return "", false
	}

	return r.trumpCard.Suit, true
}

// TrumpCard returns the card that was drawn to select the trump suit
func (r *Round) TrumpCard() (card deck.Card, ok bool) {
	if r.trumpCard == nil {
		return deck.Card{}, false
	}

	return *r.trumpCard, true
}

// CurrentTrick returns the cards played so far in the trick in progress
func (r *Round) CurrentTrick() []PlayedCard {
	return append([]PlayedCard{}, r.currentTrick...)
}

// TricksWon returns a copy of the completed tricks, keyed by the player who won them
func (r *Round) TricksWon() map[*Player][]Trick {
	tricksWon := make(map[*Player][]Trick, len(r.tricksWon))
	for player, tricks := range r.tricksWon {
		clones := make([]Trick, len(tricks))
		for i, trick := range tricks {
			clones[i] = trick.clone()
		}

		tricksWon[player] = clones
	}

	return tricksWon
}

// TrickCount returns how many tricks the player has won
func (r *Round) TrickCount(player *Player) int {
	return len(r.tricksWon[player])
}

// TotalTricks returns how many tricks have been completed
func (r *Round) TotalTricks() int {
	total := 0
	for _, tricks := range r.tricksWon {
		total += len(tricks)
	}

	return total
}

// CardsDealt returns the number of cards drawn from the source during setup, including the trump card
func (r *Round) CardsDealt() int {
	return r.dealt
}

// CheckPlayValidity returns nil if the player may play the card, otherwise the reason they may not
// A player must follow the led suit if they can. Otherwise any card may be played
func (r *Round) CheckPlayValidity(player *Player, card deck.Card) error {
	if !r.ready {
		return ErrNotSetUp
	}

	hand, ok := r.hands[player]
	if !ok {
		return ErrUnknownPlayer
	}

	if len(r.currentTrick) == len(r.players) {
		return ErrTrickComplete
	}

	// any card can lead
	if len(r.currentTrick) == 0 {
		return nil
	}

	ledSuit := r.currentTrick[0].Card.Suit
	if card.Suit != ledSuit && hand.HasSuit(ledSuit) {
		return FollowSuitError{
			LedSuit:  ledSuit,
			Playable: hand.OfSuit(ledSuit),
		}
	}

	return nil
}

// LegalPlays returns the cards in the player's hand that can be played right now
func (r *Round) LegalPlays(player *Player) deck.Hand {
	legal := make(deck.Hand, 0)
	for _, card := range r.hands[player] {
		if r.CheckPlayValidity(player, card) == nil {
			legal = append(legal, card)
		}
	}

	return legal
}

// PlayCard moves the card from the player's hand to the current trick
// Nothing changes if an error is returned
func (r *Round) PlayCard(player *Player, card deck.Card) error {
	if err := r.CheckPlayValidity(player, card); err != nil {
		return err
	}

	hand := r.hands[player]
	if !hand.Remove(card) {
		return ErrCardNotInHand
	}

	r.hands[player] = hand
	r.currentTrick = append(r.currentTrick, PlayedCard{
		Card:   card,
		Player: player,
	})

	r.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"card":   card.String(),
	}).Debug("card played")

	return nil
}

// IsTrickComplete returns true if every player has played to the current trick
func (r *Round) IsTrickComplete() bool {
	return len(r.currentTrick) == len(r.players)
}

// EvaluateTrick awards the completed trick to its winner and starts a new trick
func (r *Round) EvaluateTrick() (*Player, error) {
	if !r.IsTrickComplete() {
		return nil, IncompleteTrickError{
			Expected: len(r.players),
			Got:      len(r.currentTrick),
		}
	}

	winning := 0
	for i := 1; i < len(r.currentTrick); i++ {
		if r.beats(r.currentTrick[i].Card, r.currentTrick[winning].Card) {
			winning = i
		}
	}

	winner := r.currentTrick[winning].Player
	r.tricksWon[winner] = append(r.tricksWon[winner], Trick{
		Plays:  r.currentTrick,
		Winner: winner,
	})
	r.currentTrick = make([]PlayedCard, 0, len(r.players))

	r.logger.WithFields(logrus.Fields{
		"winner":      winner.Name,
		"winningCard": r.tricksWon[winner][len(r.tricksWon[winner])-1].Plays[winning].Card.String(),
	}).Debug("trick won")

	return winner, nil
}

// beats returns true if card takes the trick from the card currently winning it
// A trump beats any non-trump. Otherwise only a higher card of the winning card's suit wins.
// Without trump the winning card is always of the led suit, so off-suit cards never win.
// Equal cards never beat each other, so the earlier play wins
func (r *Round) beats(card, winning deck.Card) bool {
	if trump, ok := r.TrumpSuit(); ok {
		if card.Suit == trump && winning.Suit != trump {
			return true
		}
	}

	return card.Suit == winning.Suit && winning.Less(card)
}

// IsOver returns true when every hand is empty and no trick is partly played
func (r *Round) IsOver() bool {
	if len(r.currentTrick) > 0 && len(r.currentTrick) < len(r.players) {
		return false
	}

	for _, player := range r.players {
		if len(r.hands[player]) > 0 {
			return false
		}
	}

	return true
}
