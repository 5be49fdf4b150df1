package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Positions holds the cell of piece i+1 at index i, or Captured.
// It is a value type: every operation returns a new vector.
type Positions [Pieces]int

// NewPositions converts a slice read from an external source, validating its
// length and every cell.
func NewPositions(cells []int) (Positions, error) {
	var p Positions
	if len(cells) != Pieces {
		return p, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidPositions, len(cells), Pieces)
	}
	copy(p[:], cells)
	if err := p.Validate(); err != nil {
		return Positions{}, err
	}
	return p, nil
}

// Validate checks that every piece is captured or on a free, non-obstacle
// cell and that no two pieces share a cell.
func (p Positions) Validate() error {
	seen := make(map[int]int, Pieces)
	for i, cell := range p {
		if cell == Captured {
			continue
		}
		if !OnBoard(cell) || cell == Obstacle {
			return fmt.Errorf("%w: piece %d at invalid cell %d", ErrInvalidPositions, i+1, cell)
		}
		if other, ok := seen[cell]; ok {
			return fmt.Errorf("%w: pieces %d and %d share cell %d", ErrInvalidPositions, other, i+1, cell)
		}
		seen[cell] = i + 1
	}
	return nil
}

// Apply returns the positions after playing move. Any piece standing on the
// destination is captured.
func Apply(p Positions, move Move) Positions {
	if !move.valid() {
		panic(fmt.Sprintf("cannot apply malformed move %d", int(move)))
	}
	dest := move.Dest()
	for i, cell := range p {
		if cell == dest {
			p[i] = Captured
		}
	}
	p[move.Piece()-1] = dest
	return p
}

// IsWinning reports whether target has reached the goal.
func IsWinning(p Positions, target int) bool {
	return p[target-1] == Goal
}

// IsTerminalLoss reports whether target has been captured.
func IsTerminalLoss(p Positions, target int) bool {
	return p[target-1] == Captured
}

// IsTerminal reports whether the game is over for target.
func IsTerminal(p Positions, target int) bool {
	return IsWinning(p, target) || IsTerminalLoss(p, target)
}

// Alive counts the pieces still on the board.
func (p Positions) Alive() int {
	alive := 0
	for _, cell := range p {
		if cell != Captured {
			alive++
		}
	}
	return alive
}

func (p Positions) String() string {
	fields := make([]string, len(p))
	for i, cell := range p {
		fields[i] = strconv.Itoa(cell)
	}
	return strings.Join(fields, " ")
}
