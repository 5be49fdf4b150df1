package experiments

import (
	"einstein/engine"
	"einstein/experiments/metrics"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games played by one agent.
type Summary struct {
	Agent      int
	Kind       string
	Games      int
	Wins       int
	Captures   int
	WinRate    float64
	MeanTurns  float64 // Over won games
	StdTurns   float64
	MeanNodes  float64 // Per searched move
	Fallbacks  int
	MeanMillis float64 // Search time per move
}

func Summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []Summary {
	agentOf := make(map[int]int, len(games)) // Game ID -> agent ID
	for _, g := range games {
		agentOf[g.ID] = g.Agent
	}

	summaries := make([]Summary, 0, len(configs))
	for _, config := range configs {
		s := Summary{Agent: config.ID, Kind: config.Kind}

		var turns []float64
		for _, g := range games {
			if g.Agent != config.ID {
				continue
			}
			s.Games++
			switch engine.Outcome(g.Outcome) {
			case engine.Won:
				s.Wins++
				turns = append(turns, float64(g.Turns))
			case engine.Captured:
				s.Captures++
			}
		}

		var nodes, millis []float64
		for _, m := range moves {
			if agentOf[m.Game] != config.ID {
				continue
			}
			nodes = append(nodes, float64(m.Nodes))
			millis = append(millis, float64(m.Duration.Microseconds())/1000)
			if m.Fallback {
				s.Fallbacks++
			}
		}

		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games)
		}
		s.MeanTurns, s.StdTurns = meanStdDev(turns)
		s.MeanNodes, _ = meanStdDev(nodes)
		s.MeanMillis, _ = meanStdDev(millis)
		summaries = append(summaries, s)
	}
	return summaries
}

// meanStdDev returns zeros for empty input and a zero deviation for a single
// sample, where the sample variance is undefined.
func meanStdDev(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
