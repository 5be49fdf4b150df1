package agent

import (
	"sync"

	"einstein/experiments/metrics"
	"einstein/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the
// legal moves. The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string { return Random }

func (a *randomAgent) FindMove(req Request) (game.Move, metrics.SearchMetric, error) {
	die, err := req.die()
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	if err := game.ValidateDie(die); err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}

	moves := game.GenerateMoves(die, req.Positions)
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{Searcher: Random}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Searcher: Random}, nil
}
