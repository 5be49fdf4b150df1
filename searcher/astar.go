package searcher

import (
	"container/heap"
	"errors"
	"math"

	"einstein/experiments/metrics"
	"einstein/game"

	"github.com/rs/zerolog/log"
)

var ErrNoDice = errors.New("dice sequence is empty")

// infinite is the heuristic of a position whose target is captured.
const infinite = math.MaxInt32

// AStar plans with the whole dice sequence known in advance. It returns the
// first move of a shortest winning line, or a one-ply greedy move when no
// plan is found within the dice sequence and node budget.
type AStar struct {
	options
}

func NewAStar(opts ...Option) *AStar {
	a := &AStar{options: defaultOptions()}
	for _, opt := range opts {
		opt(&a.options)
	}
	return a
}

type stateKey struct {
	positions game.Positions
	turn      int
}

type node struct {
	stateKey
	g      int
	h      int
	seq    int // Insertion order, keeps pops deterministic among equal f and h
	move   game.Move
	parent *node
}

func (n *node) f() int { return n.g + n.h }

// frontier is a min-heap on f, then h, then insertion order.
type frontier []*node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f() != q[j].f() {
		return q[i].f() < q[j].f()
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*node)) }

func (q *frontier) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// heuristic is the target's king-move distance to the goal. It never
// overestimates the moves still needed.
func heuristic(positions game.Positions, target int) int {
	dist := game.Distances.To(positions[target-1])
	if dist == game.Unreachable {
		return infinite
	}
	return dist
}

// FindMove plans from positions where dice[0] is the die rolled for the
// current turn and dice[i] the roll i turns later. It returns game.NoMove if
// no legal move exists now or the target already stands on the goal.
func (a *AStar) FindMove(target int, positions game.Positions, dice []int) (game.Move, metrics.SearchMetric, error) {
	if len(dice) == 0 {
		return game.NoMove, metrics.SearchMetric{}, ErrNoDice
	}
	if err := validate(target, dice...); err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}

	collector := a.collector()
	collector.Start(AStarName, len(dice), a.budget)

	if game.IsWinning(positions, target) {
		return game.NoMove, collector.Complete(), nil
	}
	moves := game.GenerateMoves(dice[0], positions)
	if len(moves) == 0 {
		return game.NoMove, collector.Complete(), nil
	}

	if plan := a.search(target, positions, dice, collector); plan != nil {
		return firstMove(plan), collector.Complete(), nil
	}

	collector.SetFallback()
	move := greedy(target, positions, moves)
	log.Debug().Msgf("no plan found for target %d from %v, falling back to %v", target, positions, move)
	return move, collector.Complete(), nil
}

// search runs A* and returns the first winning node popped, or nil.
func (a *AStar) search(target int, positions game.Positions, dice []int, collector metrics.Collector) *node {
	root := &node{
		stateKey: stateKey{positions: positions},
		h:        heuristic(positions, target),
		move:     game.NoMove,
	}
	if root.h == infinite {
		return nil
	}

	best := map[stateKey]int{root.stateKey: 0}
	open := &frontier{root}
	seq := 0
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if current.g > best[current.stateKey] { // Superseded by a cheaper path
			continue
		}
		if game.IsWinning(current.positions, target) {
			return current
		}
		if current.turn >= len(dice) {
			continue
		}
		if expanded >= a.budget {
			collector.SetBudgetExhausted()
			return nil
		}
		expanded++
		collector.AddNode()

		remaining := len(dice) - current.turn - 1
		successors := a.expand(current, target, dice[current.turn])
		for _, next := range successors {
			// The target needs at least h more turns
			if next.h > remaining {
				continue
			}
			if g, ok := best[next.stateKey]; ok && g <= next.g {
				continue
			}
			best[next.stateKey] = next.g
			seq++
			next.seq = seq
			heap.Push(open, next)
		}
	}
	return nil
}

// expand generates the successors of n for die. An empty move set yields a
// single pass successor.
func (a *AStar) expand(n *node, target, die int) []*node {
	moves := game.GenerateMoves(die, n.positions)
	if len(moves) == 0 {
		return []*node{{
			stateKey: stateKey{positions: n.positions, turn: n.turn + 1},
			g:        n.g + 1,
			h:        n.h,
			move:     game.NoMove,
			parent:   n,
		}}
	}

	successors := make([]*node, 0, len(moves))
	for _, move := range moves {
		next := game.Apply(n.positions, move)
		successors = append(successors, &node{
			stateKey: stateKey{positions: next, turn: n.turn + 1},
			g:        n.g + 1,
			h:        heuristic(next, target),
			move:     move,
			parent:   n,
		})
	}
	return successors
}

// firstMove walks parent links back to the root and returns the move that
// leaves it.
func firstMove(n *node) game.Move {
	for n.parent != nil && n.parent.parent != nil {
		n = n.parent
	}
	return n.move
}

// greedy picks the move whose resulting position leaves the target closest to
// the goal. Ties go to the move enumerated first.
func greedy(target int, positions game.Positions, moves []game.Move) game.Move {
	best := moves[0]
	bestH := heuristic(game.Apply(positions, best), target)
	for _, move := range moves[1:] {
		if h := heuristic(game.Apply(positions, move), target); h < bestH {
			best = move
			bestH = h
		}
	}
	return best
}
