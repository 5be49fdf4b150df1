package agent

import (
	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
)

type expectimaxAgent struct {
	search *searcher.Expectimax
}

// NewExpectimaxAgent returns an agent for play where future dice are unknown.
func NewExpectimaxAgent(search *searcher.Expectimax) Agent {
	return expectimaxAgent{search: search}
}

func (a expectimaxAgent) Name() string { return Expectimax }

func (a expectimaxAgent) FindMove(req Request) (game.Move, metrics.SearchMetric, error) {
	die, err := req.die()
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	return a.search.FindMove(req.Target, die, req.Positions)
}
