package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tricktaker/internal/util"
	"tricktaker/pkg/deck"
	"tricktaker/pkg/scoring"
)

// ErrInputClosed is returned when the input ends before a prompt is answered
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads the answers from in, one per line
// Invalid answers are reported and the question is asked again
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

// NewPrompter returns a new prompter
func NewPrompter(in io.Reader, out io.Writer, styles Styles) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  styles,
	}
}

// Printf writes to the output
func (p *Prompter) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Println writes a line to the output
func (p *Prompter) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *Prompter) invalid(format string, a ...interface{}) {
	p.Println(p.styles.Error(fmt.Sprintf(format, a...)))
}

// ReadLine shows the prompt and returns the next line of input with surrounding whitespace removed
func (p *Prompter) ReadLine(prompt string) (string, error) {
	p.Printf("%s", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		return "", ErrInputClosed
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// AskInt asks until a number between min and max (inclusive) is entered
func (p *Prompter) AskInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			p.invalid("Please enter a number.")
			continue
		}

		if n < min || n > max {
			p.invalid("Please enter a number between %d and %d.", min, max)
			continue
		}

		return n, nil
	}
}

// AskPlayers asks for the number of players and their names
// A blank name is replaced with a random one
func (p *Prompter) AskPlayers(min, max int) ([]string, error) {
	count, err := p.AskInt(fmt.Sprintf("Enter number of players (%d-%d): ", min, max), min, max)
	if err != nil {
		return nil, err
	}

	names := make([]string, count)
	taken := make(map[string]bool, count)
	for i := range names {
		for {
			name, err := p.ReadLine(fmt.Sprintf("Enter name for Player %d: ", i+1))
			if err != nil {
				return nil, err
			}

			if name == "" {
				break
			}

			if taken[name] {
				p.invalid("%s is already playing.", name)
				continue
			}

			taken[name] = true
			names[i] = name
			break
		}
	}

	// players who left their name blank get a random one in their seat
	return util.FillNames(names, count), nil
}

// AskBids asks each player for a bid in turn
// The last player cannot make the bids add up to the number of tricks
func (p *Prompter) AskBids(names []string, numTricks int) (map[string]int, error) {
	p.Printf("\nEnter bids (0-%d)\n", numTricks)

	bids := make(map[string]int, len(names))
	made := make([]int, 0, len(names))
	for i, name := range names {
		last := i == len(names)-1
		forbidden, hasForbidden := scoring.ForbiddenBid(made, numTricks)
		hasForbidden = hasForbidden && last
		if hasForbidden {
			p.Println(p.styles.Muted(fmt.Sprintf("Cannot bid %d", forbidden)))
		}

		for {
			bid, err := p.AskInt(fmt.Sprintf("%s's bid: ", name), 0, numTricks)
			if err != nil {
				return nil, err
			}

			if hasForbidden && bid == forbidden {
				p.invalid("The last bid cannot make the bids add up to %d.", numTricks)
				continue
			}

			bids[name] = bid
			made = append(made, bid)
			break
		}
	}

	return bids, nil
}

// AskCard shows the hand, numbering only the legal plays, and asks which one to play
func (p *Prompter) AskCard(hand, legal deck.Hand) (deck.Card, error) {
	if len(legal) == 0 {
		return deck.Card{}, errors.New("no playable cards")
	}

	p.Println("Your hand:")
	index := 0
	for _, card := range hand {
		prefix := "   "
		if index < len(legal) && legal[index].Equal(card) {
			prefix = fmt.Sprintf("[%d]", index)
			index++
		}

		p.Printf("%s %s\n", prefix, p.styles.Card(card))
	}

	choice, err := p.AskInt("Choose a card (number): ", 0, len(legal)-1)
	if err != nil {
		return deck.Card{}, err
	}

	return legal[choice], nil
}
