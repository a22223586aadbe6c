package round

import "tricktaker/pkg/deck"

// Player is a participant in a round
// Players are compared by identity, so the same *Player can be used as a key across rounds
type Player struct {
	Name string `json:"name"`
}

// NewPlayer returns a new player
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

func (p *Player) String() string {
	return p.Name
}

// PlayedCard records who played which card
type PlayedCard struct {
	Card   deck.Card `json:"card"`
	Player *Player   `json:"player"`
}

// Trick is a completed trick
type Trick struct {
	// Plays are in the order the cards were played
	Plays  []PlayedCard `json:"plays"`
	Winner *Player      `json:"winner"`
}

// Cards returns the cards in the trick in play order
func (t Trick) Cards() deck.Hand {
	cards := make(deck.Hand, len(t.Plays))
	for i, pc := range t.Plays {
		cards[i] = pc.Card
	}

	return cards
}

// LedSuit returns the suit of the first card played
func (t Trick) LedSuit() deck.Suit {
	if len(t.Plays) == 0 {
		return ""
	}

	return t.Plays[0].Card.Suit
}

func (t Trick) clone() Trick {
	return Trick{
		Plays:  append([]PlayedCard{}, t.Plays...),
		Winner: t.Winner,
	}
}
