package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tricktaker/pkg/deck"
)

// Styles renders cards and headings for the terminal
// A zero Styles renders plain text
type Styles struct {
	color bool

	red    lipgloss.Style
	black  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

// NewStyles returns the terminal styles. If color is false, text is rendered plain
func NewStyles(color bool) Styles {
	return Styles{
		color:  color,
		red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D70000")).Bold(true),
		black:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF")).Bold(true),
		muted:  lipgloss.NewStyle().Faint(true),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F00")),
	}
}

func (s Styles) render(style lipgloss.Style, str string) string {
	if !s.color {
		return str
	}

	return style.Render(str)
}

// Card renders a card, e.g. "A♠"
func (s Styles) Card(card deck.Card) string {
	if card.Suit.IsRed() {
		return s.render(s.red, card.String())
	}

	return s.render(s.black, card.String())
}

// Cards renders a list of cards separated by commas
func (s Styles) Cards(cards []deck.Card) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = s.Card(card)
	}

	return strings.Join(rendered, ", ")
}

// Suit renders the symbol of the suit
func (s Styles) Suit(suit deck.Suit) string {
	if suit.IsRed() {
		return s.render(s.red, suit.Symbol())
	}

	return s.render(s.black, suit.Symbol())
}

// Header renders a section heading
func (s Styles) Header(str string) string {
	return s.render(s.header, str)
}

// Muted renders secondary text
func (s Styles) Muted(str string) string {
	return s.render(s.muted, str)
}

// Error renders an error message
func (s Styles) Error(str string) string {
	return s.render(s.err, str)
}
