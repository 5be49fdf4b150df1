package game

import "fmt"

// Move encodes "move piece p to cell d" as p*100 + d.
type Move int

// NoMove is returned when no legal move exists and the turn must be passed.
const NoMove Move = -1

func NewMove(piece, dest int) Move {
	return Move(piece*100 + dest)
}

// Piece returns the 1-based id of the piece being moved.
func (m Move) Piece() int {
	return int(m) / 100
}

// Dest returns the destination cell.
func (m Move) Dest() int {
	return int(m) % 100
}

func (m Move) String() string {
	if m == NoMove {
		return "pass"
	}
	return fmt.Sprintf("P%d->%d", m.Piece(), m.Dest())
}

func (m Move) valid() bool {
	piece, dest := m.Piece(), m.Dest()
	return m >= 0 && piece >= 1 && piece <= Pieces && dest != Obstacle && OnBoard(dest)
}
