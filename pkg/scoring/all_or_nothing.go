package scoring

// all-or-nothing points
const (
	allTricksReward  = 10
	allTricksPenalty = -10
	perTrickPenalty  = -2
)

// AllOrNothing rewards a player who takes every trick and penalizes everyone else
// If nobody takes every trick, each trick taken costs two points
type AllOrNothing struct{}

// NewAllOrNothing returns an all-or-nothing scorer
func NewAllOrNothing() *AllOrNothing {
	return &AllOrNothing{}
}

// Kind returns KindAllOrNothing
func (a *AllOrNothing) Kind() Kind {
	return KindAllOrNothing
}

// Name returns "All or Nothing"
func (a *AllOrNothing) Name() string {
	return "All or Nothing"
}

// ScoreRound calculates the score
// A round where nobody took a trick scores 0 for every player
func (a *AllOrNothing) ScoreRound(h History) (Score, error) {
	players := h.Players()

	total := 0
	for _, player := range players {
		total += h.TrickCount(player)
	}

	score := make(Score, len(players))

	// only one player can take every trick
	if total > 0 {
		for _, player := range players {
			if h.TrickCount(player) != total {
				continue
			}

			for _, other := range players {
				score[other] = allTricksPenalty
			}

			score[player] = allTricksReward
			return score, nil
		}
	}

	for _, player := range players {
		score[player] = perTrickPenalty * h.TrickCount(player)
	}

	return score, nil
}

func (a *AllOrNothing) sealed() {}
