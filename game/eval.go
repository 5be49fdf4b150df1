package game

const (
	WinScore         = 100000.0
	LossScore        = -100000.0
	UnreachableScore = -90000.0
	StepPenalty      = 100.0 // Per king-move still needed by the target
	SurvivorBonus    = 1.0   // Per piece still on the board
)

// Evaluate scores positions from the point of view of delivering target to
// the goal. Higher is better.
type Evaluate func(p Positions, target int) float64

// EvaluateDistance scores terminal positions with fixed bonuses and otherwise
// penalizes the target's distance to the goal.
func EvaluateDistance(p Positions, target int) float64 {
	cell := p[target-1]
	switch cell {
	case Goal:
		return WinScore
	case Captured:
		return LossScore
	}

	dist := Distances.To(cell)
	if dist == Unreachable {
		return UnreachableScore
	}
	return -StepPenalty * float64(dist)
}

// EvaluateSurvivors adds a small bonus per surviving piece to
// EvaluateDistance. Survivors keep the die substitution rule from handing the
// turn away from the target, and the bonus is too small to outweigh one step.
func EvaluateSurvivors(p Positions, target int) float64 {
	score := EvaluateDistance(p, target)
	if IsTerminal(p, target) {
		return score
	}
	return score + SurvivorBonus*float64(p.Alive())
}
