package scoring

// FixedBid defaults
const (
	DefaultTargetTricks = 3
	DefaultFixedPoints  = 20
)

// FixedBid awards points to every player who wins exactly the target number of tricks
type FixedBid struct {
	TargetTricks int
	Points       int
}

// NewFixedBid returns a fixed-bid scorer
func NewFixedBid(targetTricks, points int) *FixedBid {
	return &FixedBid{
		TargetTricks: targetTricks,
		Points:       points,
	}
}

// DefaultFixedBid returns a fixed-bid scorer with a target of 3 tricks for 20 points
func DefaultFixedBid() *FixedBid {
	return NewFixedBid(DefaultTargetTricks, DefaultFixedPoints)
}

// Kind returns KindFixedBid
func (f *FixedBid) Kind() Kind {
	return KindFixedBid
}

// Name returns "Fixed Bid"
func (f *FixedBid) Name() string {
	return "Fixed Bid"
}

// ScoreRound calculates the score
func (f *FixedBid) ScoreRound(h History) (Score, error) {
	score := make(Score)
	for _, player := range h.Players() {
		if h.TrickCount(player) == f.TargetTricks {
			score[player] = f.Points
		} else {
			score[player] = 0
		}
	}

	return score, nil
}

func (f *FixedBid) sealed() {}
