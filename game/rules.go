package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDie       = errors.New("invalid die value")
	ErrInvalidTarget    = errors.New("invalid target piece")
	ErrInvalidPositions = errors.New("invalid positions")
)

// ValidateDie returns an error unless die is in 1..6.
func ValidateDie(die int) error {
	if die < 1 || die > MaxDie {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidDie, die, MaxDie)
	}
	return nil
}

// ValidateTarget returns an error unless target names one of the six pieces.
func ValidateTarget(target int) error {
	if target < 1 || target > Pieces {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidTarget, target, Pieces)
	}
	return nil
}

// EligiblePieces returns the pieces allowed to move on die. The piece matching
// the die moves if it is alive; otherwise the nearest surviving piece below it
// and the nearest surviving piece above it may move.
func EligiblePieces(die int, p Positions) []int {
	idx := die - 1
	if p[idx] != Captured {
		return []int{die}
	}

	pieces := make([]int, 0, 2)
	for i := idx - 1; i >= 0; i-- {
		if p[i] != Captured {
			pieces = append(pieces, i+1)
			break
		}
	}
	for i := idx + 1; i < Pieces; i++ {
		if p[i] != Captured {
			pieces = append(pieces, i+1)
			break
		}
	}
	return pieces
}

// GenerateMoves lists every move available on die, eligible pieces in
// ascending order and destinations in king-offset order. Landing on an
// occupied cell is legal and captures. An empty result means the turn passes.
// It panics if die is out of range.
func GenerateMoves(die int, p Positions) []Move {
	if err := ValidateDie(die); err != nil {
		panic(err.Error())
	}

	var moves []Move
	for _, piece := range EligiblePieces(die, p) {
		for _, dest := range Neighbors(p[piece-1]) {
			moves = append(moves, NewMove(piece, dest))
		}
	}
	return moves
}
