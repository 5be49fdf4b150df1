package game

// Board geometry. Cells are numbered row-major on a Size x Size grid.
const (
	Size     = 10
	Cells    = Size * Size
	Goal     = 0  // The target piece must reach this cell
	Obstacle = 22 // Permanently blocked, never a destination
	Pieces   = 6
	Captured = -1 // Position of a piece that has been removed from the board
	MaxDie   = 6
)

// King-move offsets, scanned in this order everywhere so move enumeration is stable
var (
	rowOffsets = [8]int{-1, -1, -1, 0, 0, 1, 1, 1}
	colOffsets = [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
)

// neighbors caches the legal king-move destinations of every cell
var neighbors = buildNeighbors()

func buildNeighbors() [Cells][]int {
	var table [Cells][]int
	for cell := 0; cell < Cells; cell++ {
		row, col := Row(cell), Col(cell)
		adjacent := make([]int, 0, len(rowOffsets))
		for i := range rowOffsets {
			r, c := row+rowOffsets[i], col+colOffsets[i]
			if r < 0 || r >= Size || c < 0 || c >= Size {
				continue
			}
			if next := r*Size + c; next != Obstacle {
				adjacent = append(adjacent, next)
			}
		}
		table[cell] = adjacent
	}
	return table
}

// Neighbors returns the cells reachable from cell in one king-move, excluding
// off-grid cells and the obstacle. The returned slice must not be modified.
func Neighbors(cell int) []int {
	if !OnBoard(cell) {
		return nil
	}
	return neighbors[cell]
}

func Row(cell int) int { return cell / Size }

func Col(cell int) int { return cell % Size }

// OnBoard reports whether cell lies on the grid. The obstacle is on the board.
func OnBoard(cell int) bool {
	return cell >= 0 && cell < Cells
}
