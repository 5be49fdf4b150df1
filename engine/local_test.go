package engine

import (
	"bytes"
	"testing"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"
	"einstein/searcher/agent"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []game.Move
	calls int
}

func (a *scriptedAgent) Name() string { return "scripted" }

func (a *scriptedAgent) FindMove(req agent.Request) (game.Move, metrics.SearchMetric, error) {
	move := a.moves[a.calls]
	a.calls++
	return move, metrics.SearchMetric{}, nil
}

func TestEngineRun(t *testing.T) {
	t.Run("planner solves a short level", func(t *testing.T) {
		level := &game.Level{
			Target:    1,
			Positions: game.Positions{3, 90, 91, 92, 93, 99},
			Dice:      []int{1, 1, 1, 1},
		}
		e := LocalEngine("straight", level, agent.NewPlannerAgent(searcher.NewAStar()), 0)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Won, result.Outcome)
		require.Equal(t, 3, result.Turns, "Cell 3 is three king-moves from the goal")
		require.Len(t, result.History, 3)
		require.Len(t, result.MoveMetrics, 3)
		require.Equal(t, 0, result.Final[0])
		require.Equal(t, "won", result.GameMetric.Outcome)
		require.Equal(t, game.Positions{3, 90, 91, 92, 93, 99}, level.Positions, "Level should not be mutated")
	})

	t.Run("target captured", func(t *testing.T) {
		level := &game.Level{
			Target:    2,
			Positions: game.Positions{13, 12, 66, 77, 88, 99},
			Dice:      []int{1, 2},
		}
		e := LocalEngine("capture", level, &scriptedAgent{moves: []game.Move{112}}, 0)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Captured, result.Outcome)
		require.Equal(t, 1, result.Turns, "Game should stop once the target is captured")
	})

	t.Run("move budget runs out", func(t *testing.T) {
		level := &game.Level{
			Target:    1,
			Positions: game.Positions{55, 90, 91, 92, 93, 99},
			Dice:      []int{2, 2, 2, 2},
		}
		a := agent.NewExpectimaxAgent(searcher.NewExpectimax(searcher.WithDepth(1)))
		e := LocalEngine("budget", level, a, 2)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, OutOfMoves, result.Outcome)
		require.Equal(t, 2, result.Turns)
	})

	t.Run("dice run out before the budget", func(t *testing.T) {
		level := &game.Level{
			Target:    1,
			Positions: game.Positions{55, 90, 91, 92, 93, 99},
			Dice:      []int{2},
		}
		e := LocalEngine("short", level, agent.NewRandomAgent(1), 0)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, OutOfMoves, result.Outcome)
		require.Equal(t, 1, result.Turns)
	})

	t.Run("rejecting an illegal move", func(t *testing.T) {
		level := &game.Level{
			Target:    1,
			Positions: game.Positions{55, 90, 91, 92, 93, 99},
			Dice:      []int{2},
		}
		e := LocalEngine("illegal", level, &scriptedAgent{moves: []game.Move{144}}, 0)

		_, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting a pass while moves exist", func(t *testing.T) {
		level := &game.Level{
			Target:    1,
			Positions: game.Positions{55, 90, 91, 92, 93, 99},
			Dice:      []int{1},
		}
		e := LocalEngine("pass", level, &scriptedAgent{moves: []game.Move{game.NoMove}}, 0)

		_, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestWriteRecord(t *testing.T) {
	level := &game.Level{
		Target:    1,
		Positions: game.Positions{3, 90, 91, 92, 93, -1},
		Dice:      []int{1, 1},
	}
	history := []Turn{
		{Step: 1, Die: 1, Move: 102, Positions: game.Positions{2, 90, 91, 92, 93, -1}},
		{Step: 2, Die: 1, Move: game.NoMove, Positions: game.Positions{2, 90, 91, 92, 93, -1}},
	}
	var buf bytes.Buffer

	err := WriteRecord(&buf, "AIPlayer", level, history)

	require.NoError(t, err)
	want := "AIPlayer\n1 1\n1\n3 90 91 92 93 -1\n2 90 91 92 93 -1\n"
	require.Equal(t, want, buf.String(), "Passed turns should not add a line")
}
