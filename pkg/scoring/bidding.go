package scoring

import (
	"errors"
	"fmt"

	"tricktaker/pkg/round"
)

// points awarded on top of the bid for making it exactly
const exactBidBonus = 10

// ErrInvalidBid happens when the bids add up to exactly the number of tricks
var ErrInvalidBid = errors.New("bids cannot add up to the number of tricks")

// ErrMissingBid happens when a player being scored has no bid
var ErrMissingBid = errors.New("player did not bid")

// BidRangeError is an error when a bid is negative or more than the number of tricks
type BidRangeError struct {
	Player string
	Bid    int
	Max    int
}

func (b BidRangeError) Error() string {
	return fmt.Sprintf("bid for %s must be between 0 and %d, got %d", b.Player, b.Max, b.Bid)
}

// Bidding scores players who win exactly the number of tricks they bid
type Bidding struct {
	bids      map[*round.Player]int
	numTricks int
}

// NewBidding returns a bidding scorer
// The bids cannot add up to numTricks, so at least one player must miss their bid
func NewBidding(bids map[*round.Player]int, numTricks int) (*Bidding, error) {
	sum := 0
	for player, bid := range bids {
		if bid < 0 || bid > numTricks {
			return nil, BidRangeError{
				Player: player.Name,
				Bid:    bid,
				Max:    numTricks,
			}
		}

		sum += bid
	}

	if sum == numTricks {
		return nil, ErrInvalidBid
	}

	copied := make(map[*round.Player]int, len(bids))
	for player, bid := range bids {
		copied[player] = bid
	}

	return &Bidding{
		bids:      copied,
		numTricks: numTricks,
	}, nil
}

// ForbiddenBid returns the bid the last player may not make given the bids made so far
// ok is false if every bid is allowed
func ForbiddenBid(bidsSoFar []int, numTricks int) (bid int, ok bool) {
	remaining := numTricks
	for _, b := range bidsSoFar {
		remaining -= b
	}

	if remaining < 0 || remaining > numTricks {
		return 0, false
	}

	return remaining, true
}

// Kind returns KindBidding
func (b *Bidding) Kind() Kind {
	return KindBidding
}

// Name returns "Bidding"
func (b *Bidding) Name() string {
	return "Bidding"
}

// Bid returns the player's bid
func (b *Bidding) Bid(player *round.Player) (int, bool) {
	bid, ok := b.bids[player]
	return bid, ok
}

// NumTricks returns the number of tricks the bids were made against
func (b *Bidding) NumTricks() int {
	return b.numTricks
}

// ScoreRound gives 10 plus the bid to everyone who won exactly what they bid
func (b *Bidding) ScoreRound(h History) (Score, error) {
	score := make(Score)
	for _, player := range h.Players() {
		bid, ok := b.bids[player]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingBid, player.Name)
		}

		if h.TrickCount(player) == bid {
			score[player] = exactBidBonus + bid
		} else {
			score[player] = 0
		}
	}

	return score, nil
}

func (b *Bidding) sealed() {}
