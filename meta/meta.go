// meta/meta.go
package meta

import (
	"einstein/engine"
	"einstein/searcher"
)

// DEPTH defines the expectimax search depth.
const DEPTH = searcher.DefaultDepth

// BUDGET defines the A* node expansion budget.
const BUDGET = searcher.DefaultBudget

// GO_ROUTINES defines the number of goroutines scoring expectimax root moves.
const GO_ROUTINES = 1

// MAX_MOVES defines the move budget of a puzzle.
const MAX_MOVES = engine.MaxMoves
