package engine

import (
	"fmt"
	"slices"
	"time"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Name     string
	Level    *game.Level
	Agent    agent.Agent
	MaxMoves int
}

// LocalEngine plays level with a single agent. Non-positive maxMoves uses
// MaxMoves.
func LocalEngine(name string, level *game.Level, a agent.Agent, maxMoves int) *Engine {
	if level == nil || a == nil {
		panic("engine needs a level and an agent")
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}
	return &Engine{
		Name:     name,
		Level:    level,
		Agent:    a,
		MaxMoves: maxMoves,
	}
}

// Run plays until the target reaches the goal, is captured, or the move
// budget or dice run out.
func (e *Engine) Run() (Result, error) {
	target := e.Level.Target
	positions := e.Level.Positions
	limit := min(e.MaxMoves, len(e.Level.Dice))
	dice := e.Level.Dice[:limit]

	result := Result{Outcome: OutOfMoves}
	start := time.Now()
	log.Info().Msgf("starting %s with %s: target %d, %d turns", e.Name, e.Agent.Name(), target, limit)

	for turn := 0; turn < limit; turn++ {
		if game.IsTerminal(positions, target) {
			break
		}

		die := dice[turn]
		move, searchMetric, err := e.Agent.FindMove(agent.Request{
			Target:    target,
			Positions: positions,
			Dice:      dice[turn:],
		})
		if err != nil {
			return result, fmt.Errorf("turn %d: %w", turn+1, err)
		}
		result.MoveMetrics = append(result.MoveMetrics, metrics.MoveMetric{
			Step:         turn + 1,
			Die:          die,
			Move:         int(move),
			SearchMetric: searchMetric,
		})

		legal := game.GenerateMoves(die, positions)
		switch {
		case move == game.NoMove && len(legal) == 0:
			log.Info().Msgf("turn %d: die %d, no move possible", turn+1, die)
		case !slices.Contains(legal, move):
			return result, fmt.Errorf("turn %d: %w: %v on die %d", turn+1, ErrIllegalMove, move, die)
		default:
			positions = game.Apply(positions, move)
			log.Info().Msgf("turn %d: die %d, %s played %v", turn+1, die, e.Agent.Name(), move)
		}
		if searchMetric.Fallback {
			log.Warn().Msgf("turn %d: planner fell back to the greedy move", turn+1)
		}

		result.Turns = turn + 1
		result.History = append(result.History, Turn{
			Step:      turn + 1,
			Die:       die,
			Move:      move,
			Positions: positions,
		})

		if game.IsWinning(positions, target) || game.IsTerminalLoss(positions, target) {
			break
		}
	}

	switch {
	case game.IsWinning(positions, target):
		result.Outcome = Won
	case game.IsTerminalLoss(positions, target):
		result.Outcome = Captured
	}
	result.Final = positions

	end := time.Now()
	result.GameMetric = metrics.GameMetric{
		Level:     e.Name,
		Target:    target,
		Outcome:   string(result.Outcome),
		Turns:     result.Turns,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	log.Info().Msgf("completed %s with %s: %s after %d turns", e.Name, e.Agent.Name(), result.Outcome, result.Turns)
	return result, nil
}
