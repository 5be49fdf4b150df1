package searcher

import (
	"einstein/experiments/metrics"
	"einstein/game"
)

// Search defaults
const (
	DefaultDepth  = 7     // Expectimax plies below the root move
	DefaultBudget = 50000 // A* node expansions before falling back
)

const (
	ExpectimaxName = "expectimax"
	AStarName      = "astar"
)

type Option func(o *options)

type options struct {
	depth      int
	goroutines int
	budget     int
	evaluate   game.Evaluate
	collector  func() metrics.Collector
}

func defaultOptions() options {
	return options{
		depth:      DefaultDepth,
		goroutines: 1,
		budget:     DefaultBudget,
		evaluate:   game.EvaluateDistance,
		collector:  metrics.NewDummyCollector,
	}
}

// WithDepth sets the expectimax search depth. Non-positive values are ignored.
func WithDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.depth = depth
		}
	}
}

// WithGoroutines scores the expectimax root moves in parallel.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithBudget caps the number of nodes A* expands.
func WithBudget(nodes int) Option {
	return func(o *options) {
		if nodes > 0 {
			o.budget = nodes
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.collector = metrics.NewCollector
	}
}

func validate(target int, dice ...int) error {
	if err := game.ValidateTarget(target); err != nil {
		return err
	}
	for _, die := range dice {
		if err := game.ValidateDie(die); err != nil {
			return err
		}
	}
	return nil
}
