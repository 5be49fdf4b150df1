package engine

import (
	"errors"

	"einstein/experiments/metrics"
	"einstein/game"
)

// MaxMoves is the move budget of a puzzle.
const MaxMoves = 30

var ErrIllegalMove = errors.New("agent returned an illegal move")

type Outcome string

const (
	Won        Outcome = "won"
	Captured   Outcome = "captured"
	OutOfMoves Outcome = "out_of_moves"
)

// Turn records one step of play. Move is game.NoMove when the turn passed.
type Turn struct {
	Step      int
	Die       int
	Move      game.Move
	Positions game.Positions // After the move
}

type Result struct {
	Outcome     Outcome
	Turns       int
	Final       game.Positions
	History     []Turn
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}
