package game

// Unreachable marks cells with no king-move path to the goal.
const Unreachable = -1

// DistanceField holds the minimum number of king-moves from each cell to the
// goal, avoiding the obstacle.
type DistanceField [Cells]int

// Distances is computed once at startup and only read afterwards, so it is
// safe to share between concurrent searches.
var Distances = NewDistanceField(Goal)

// NewDistanceField runs a breadth-first search outward from goal.
func NewDistanceField(goal int) *DistanceField {
	field := &DistanceField{}
	for i := range field {
		field[i] = Unreachable
	}

	field[goal] = 0
	queue := []int{goal}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, next := range Neighbors(cell) {
			if field[next] == Unreachable {
				field[next] = field[cell] + 1
				queue = append(queue, next)
			}
		}
	}
	return field
}

// To returns the distance from cell to the goal, or Unreachable for the
// obstacle and captured pieces.
func (f *DistanceField) To(cell int) int {
	if !OnBoard(cell) {
		return Unreachable
	}
	return f[cell]
}
