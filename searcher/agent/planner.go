package agent

import (
	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
)

type plannerAgent struct {
	search *searcher.AStar
}

// NewPlannerAgent returns an agent that plans against the known dice sequence.
func NewPlannerAgent(search *searcher.AStar) Agent {
	return plannerAgent{search: search}
}

func (a plannerAgent) Name() string { return Planner }

func (a plannerAgent) FindMove(req Request) (game.Move, metrics.SearchMetric, error) {
	return a.search.FindMove(req.Target, req.Positions, req.Dice)
}
