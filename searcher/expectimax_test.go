package searcher

import (
	"testing"

	"einstein/game"

	"github.com/stretchr/testify/require"
)

func TestExpectimaxFindMove(t *testing.T) {
	t.Run("taking the winning step", func(t *testing.T) {
		positions := game.Positions{55, 1, 66, 77, 88, 99}
		e := NewExpectimax(WithDepth(1))

		move, _, err := e.FindMove(2, 2, positions)

		require.NoError(t, err)
		require.Equal(t, game.NewMove(2, 0), move, "Moving onto the goal should dominate every other move")
	})

	t.Run("winning step at full depth", func(t *testing.T) {
		positions := game.Positions{55, 1, 66, 77, 88, 99}
		e := NewExpectimax(WithDepth(3))

		move, _, err := e.FindMove(2, 2, positions)

		require.NoError(t, err)
		require.Equal(t, game.NewMove(2, 0), move)
	})

	t.Run("avoiding capture of the target", func(t *testing.T) {
		// Piece 1 may capture the target on 12 or step elsewhere
		positions := game.Positions{13, 12, 66, 77, 88, 99}
		e := NewExpectimax(WithDepth(1))

		move, _, err := e.FindMove(2, 1, positions)

		require.NoError(t, err)
		require.NotEqual(t, game.NewMove(1, 12), move, "Capturing the target is a loss")
	})

	t.Run("ties go to the first enumerated move", func(t *testing.T) {
		// Piece 6 cannot affect the target, so every move scores the same
		positions := game.Positions{55, 66, 67, 68, 69, 99}
		e := NewExpectimax(WithDepth(1))

		move, _, err := e.FindMove(1, 6, positions)

		require.NoError(t, err)
		require.Equal(t, game.NewMove(6, 88), move)
	})

	t.Run("repeated calls are deterministic", func(t *testing.T) {
		positions := game.Positions{45, 34, 56, 71, 18, 63}
		e := NewExpectimax(WithDepth(3))

		first, _, err := e.FindMove(1, 4, positions)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, _, err := e.FindMove(1, 4, positions)
			require.NoError(t, err)
			require.Equal(t, first, again, "Search should have no hidden randomness")
		}
	})

	t.Run("parallel search matches sequential search", func(t *testing.T) {
		positions := game.Positions{45, 34, game.Captured, 71, 18, 63}
		sequential := NewExpectimax(WithDepth(3), WithMetrics())
		parallel := NewExpectimax(WithDepth(3), WithMetrics(), WithGoroutines(4))

		want, wantMetric, err := sequential.FindMove(1, 3, positions)
		require.NoError(t, err)
		got, gotMetric, err := parallel.FindMove(1, 3, positions)
		require.NoError(t, err)

		require.Equal(t, want, got, "Parallel search should pick the same move")
		require.Equal(t, wantMetric.Nodes, gotMetric.Nodes, "Parallel search should visit the same nodes")
	})

	t.Run("no legal move passes the turn", func(t *testing.T) {
		positions := game.Positions{game.Captured, game.Captured, game.Captured, game.Captured, game.Captured, game.Captured}
		e := NewExpectimax(WithDepth(1))

		move, _, err := e.FindMove(1, 1, positions)

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("rejecting an invalid die", func(t *testing.T) {
		_, _, err := NewExpectimax().FindMove(1, 0, game.Positions{})

		require.ErrorIs(t, err, game.ErrInvalidDie)
	})

	t.Run("rejecting an invalid target", func(t *testing.T) {
		_, _, err := NewExpectimax().FindMove(7, 1, game.Positions{})

		require.ErrorIs(t, err, game.ErrInvalidTarget)
	})
}

func TestExpectimaxMetrics(t *testing.T) {
	positions := game.Positions{55, 66, 67, 68, 69, 99}
	e := NewExpectimax(WithDepth(1), WithMetrics())

	_, metric, err := e.FindMove(1, 6, positions)

	require.NoError(t, err)
	require.Equal(t, ExpectimaxName, metric.Searcher)
	require.Equal(t, 1, metric.Depth)
	// Three root moves, each a chance node over six leaf decisions
	require.Equal(t, 3*(1+6), metric.Nodes)
	require.False(t, metric.Fallback)
}

func TestExpectimaxEvaluationFn(t *testing.T) {
	calls := 0
	evaluate := func(p game.Positions, target int) float64 {
		calls++
		return game.EvaluateDistance(p, target)
	}
	e := NewExpectimax(WithDepth(1), WithEvaluationFn(evaluate))

	_, _, err := e.FindMove(1, 6, game.Positions{55, 66, 67, 68, 69, 99})

	require.NoError(t, err)
	require.Equal(t, 3*6, calls, "Every leaf should use the supplied evaluation")
}
