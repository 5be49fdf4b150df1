package searcher

import (
	"einstein/experiments/metrics"
	"einstein/game"

	"golang.org/x/sync/errgroup"
)

// Expectimax picks moves when future dice are unknown. Decision nodes take the
// best move for a known die; chance nodes average over the six die values.
type Expectimax struct {
	options
}

func NewExpectimax(opts ...Option) *Expectimax {
	e := &Expectimax{options: defaultOptions()}
	for _, opt := range opts {
		opt(&e.options)
	}
	return e
}

// FindMove returns the move for the rolled die with the highest expected
// score, or game.NoMove if the turn must be passed. Ties go to the move
// enumerated first.
func (e *Expectimax) FindMove(target, die int, positions game.Positions) (game.Move, metrics.SearchMetric, error) {
	if err := validate(target, die); err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}

	collector := e.collector()
	collector.Start(ExpectimaxName, e.depth, 0)

	moves := game.GenerateMoves(die, positions)
	if len(moves) == 0 {
		return game.NoMove, collector.Complete(), nil
	}

	s := &expectiSearch{target: target, evaluate: e.evaluate, metrics: collector}
	values := e.scoreMoves(s, positions, moves)

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return moves[best], collector.Complete(), nil
}

// scoreMoves evaluates every root move as a chance node. Parallel scoring
// writes each value to its own slot, so the reduction sees the same values in
// the same order as the sequential search.
func (e *Expectimax) scoreMoves(s *expectiSearch, positions game.Positions, moves []game.Move) []float64 {
	values := make([]float64, len(moves))
	if e.goroutines <= 1 {
		for i, move := range moves {
			values[i] = s.chance(game.Apply(positions, move), e.depth)
		}
		return values
	}

	var g errgroup.Group
	g.SetLimit(e.goroutines)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			values[i] = s.chance(game.Apply(positions, move), e.depth)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail
	return values
}

// expectiSearch holds the per-call state; it is safe for concurrent use
// because positions are values and the collector is atomic.
type expectiSearch struct {
	target   int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func (s *expectiSearch) chance(positions game.Positions, depth int) float64 {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(positions, s.target) {
		return s.evaluate(positions, s.target)
	}

	sum := 0.0
	for die := 1; die <= game.MaxDie; die++ {
		sum += s.decision(positions, die, depth-1)
	}
	return sum / game.MaxDie
}

func (s *expectiSearch) decision(positions game.Positions, die int, depth int) float64 {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(positions, s.target) {
		return s.evaluate(positions, s.target)
	}

	moves := game.GenerateMoves(die, positions)
	if len(moves) == 0 { // Pass
		return s.evaluate(positions, s.target)
	}

	maxValue := s.chance(game.Apply(positions, moves[0]), depth-1)
	for _, move := range moves[1:] {
		if v := s.chance(game.Apply(positions, move), depth-1); v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}
