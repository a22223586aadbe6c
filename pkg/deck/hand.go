package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sort orders the hand by suit, then by rank
func (h Hand) Sort() {
	sort.Sort(h)
}

// AddCards adds cards to the hand
func (h *Hand) AddCards(cards ...Card) {
	*h = append(*h, cards...)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasSuit returns true if any card in the hand is of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// OfSuit returns the cards in the hand matching suit, in hand order
func (h Hand) OfSuit(suit Suit) Hand {
	matching := make(Hand, 0)
	for _, c := range h {
		if c.Suit == suit {
			matching = append(matching, c)
		}
	}

	return matching
}

// Remove removes the first occurrence of card from the hand
// Returns false if the card is not in the hand
func (h *Hand) Remove(card Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			newHand := make(Hand, 0, len(*h)-1)
			newHand = append(newHand, (*h)[:i]...)
			*h = append(newHand, (*h)[i+1:]...)
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Display returns the hand using card symbols, e.g. "10♡, J♡"
func (h Hand) Display() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, ", ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
