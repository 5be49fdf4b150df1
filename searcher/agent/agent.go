package agent

import (
	"errors"
	"fmt"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
)

const (
	Expectimax = "expectimax"
	Planner    = "astar"
	Random     = "random"
)

var ErrUnknownAgent = errors.New("unknown agent")

// Request is the state an agent chooses a move from. Dice[0] is the die
// rolled this turn; later entries are future rolls and only the planner
// reads them.
type Request struct {
	Target    int
	Positions game.Positions
	Dice      []int
}

func (r Request) die() (int, error) {
	if len(r.Dice) == 0 {
		return 0, searcher.ErrNoDice
	}
	return r.Dice[0], nil
}

type Agent interface {
	Name() string
	// FindMove returns the move to play, or game.NoMove to pass, with the
	// search metrics collected on the way
	FindMove(req Request) (game.Move, metrics.SearchMetric, error)
}

// New builds the agent described by config.
func New(config metrics.AgentConfig) (Agent, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Budget > 0 {
		options = append(options, searcher.WithBudget(config.Budget))
	}
	if config.Survivors {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateSurvivors))
	}

	switch config.Kind {
	case Expectimax:
		return NewExpectimaxAgent(searcher.NewExpectimax(options...)), nil
	case Planner:
		return NewPlannerAgent(searcher.NewAStar(options...)), nil
	case Random:
		return NewRandomAgent(config.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, config.Kind)
	}
}
