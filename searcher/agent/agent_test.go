package agent

import (
	"testing"

	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("building every known agent", func(t *testing.T) {
		for _, kind := range []string{Expectimax, Planner, Random} {
			a, err := New(metrics.AgentConfig{Kind: kind, Depth: 1})

			require.NoError(t, err)
			require.Equal(t, kind, a.Name())
		}
	})

	t.Run("rejecting an unknown agent", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{Kind: "minimax"})

		require.ErrorIs(t, err, ErrUnknownAgent)
	})
}

func TestAgentsFindWinningStep(t *testing.T) {
	req := Request{
		Target:    2,
		Positions: game.Positions{55, 1, 66, 77, 88, 99},
		Dice:      []int{2, 1, 1},
	}

	for _, kind := range []string{Expectimax, Planner} {
		t.Run(kind, func(t *testing.T) {
			a, err := New(metrics.AgentConfig{Kind: kind, Depth: 2})
			require.NoError(t, err)

			move, metric, err := a.FindMove(req)

			require.NoError(t, err)
			require.Equal(t, game.NewMove(2, 0), move)
			require.Equal(t, kind, metric.Searcher)
		})
	}
}

func TestAgentsRequireDice(t *testing.T) {
	for _, kind := range []string{Expectimax, Planner, Random} {
		a, err := New(metrics.AgentConfig{Kind: kind})
		require.NoError(t, err)

		_, _, err = a.FindMove(Request{Target: 1})

		require.ErrorIs(t, err, searcher.ErrNoDice, "%s should reject a request without dice", kind)
	}
}

func TestRandomAgent(t *testing.T) {
	req := Request{
		Target:    1,
		Positions: game.Positions{45, 12, 67, 88, 90, 99},
		Dice:      []int{1},
	}

	t.Run("picking a legal move", func(t *testing.T) {
		a := NewRandomAgent(7)
		legal := game.GenerateMoves(1, req.Positions)

		for i := 0; i < 20; i++ {
			move, _, err := a.FindMove(req)
			require.NoError(t, err)
			require.Contains(t, legal, move)
		}
	})

	t.Run("same seed replays the same choices", func(t *testing.T) {
		a, b := NewRandomAgent(42), NewRandomAgent(42)

		for i := 0; i < 20; i++ {
			moveA, _, _ := a.FindMove(req)
			moveB, _, _ := b.FindMove(req)
			require.Equal(t, moveA, moveB)
		}
	})

	t.Run("passing without legal moves", func(t *testing.T) {
		empty := Request{Target: 1, Dice: []int{1}, Positions: game.Positions{
			game.Captured, game.Captured, game.Captured, game.Captured, game.Captured, game.Captured,
		}}

		move, _, err := NewRandomAgent(1).FindMove(empty)

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("rejecting an invalid die", func(t *testing.T) {
		_, _, err := NewRandomAgent(1).FindMove(Request{Target: 1, Dice: []int{8}})

		require.ErrorIs(t, err, game.ErrInvalidDie)
	})
}
