package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"tricktaker/internal/rng"
)

// ErrInsufficientSupply is returned when more cards are requested than remain
var ErrInsufficientSupply = errors.New("not enough cards left in the deck")

// Source produces the cards that are dealt in a round
type Source interface {
	// Take removes and returns the next n cards
	// If fewer than n cards remain, ErrInsufficientSupply is returned and nothing is removed
	Take(n int) ([]Card, error)

	// CardsLeft returns the number of cards that can still be taken
	CardsLeft() int
}

// Deck represents a playing deck
// Cards are drawn from the front of Cards
type Deck struct {
	Cards []Card `json:"cards"`
}

var _ Source = (*Deck)(nil)

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

// Shuffled returns a standard 52 card deck shuffled with g
func Shuffled(g rng.Generator) *Deck {
	d := New()
	d.Shuffle(g)
	return d
}

// FromCards returns a deck that deals the cards in the exact order given
func FromCards(cards ...Card) *Deck {
	return &Deck{Cards: append([]Card{}, cards...)}
}

// FromString returns a deck that deals the cards in the order of the string, e.g. "14s,2h,3h"
func FromString(s string) *Deck {
	return FromCards(CardsFromString(s)...)
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards in the deck
func (d *Deck) Shuffle(g rng.Generator) {
	rng.Shuffle(g, len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Take removes the next n cards from the deck
func (d *Deck) Take(n int) ([]Card, error) {
	if n < 0 || !d.CanDraw(n) {
		return nil, ErrInsufficientSupply
	}

	cards := append([]Card{}, d.Cards[:n]...)
	d.Cards = d.Cards[n:]

	return cards, nil
}

// Draw will draw the next card
// If there are no more cards, an ErrInsufficientSupply is returned
func (d *Deck) Draw() (Card, error) {
	cards, err := d.Take(1)
	if err != nil {
		return Card{}, err
	}

	return cards[0], nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
