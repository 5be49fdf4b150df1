package experiments

import (
	"fmt"
	"path/filepath"
	"strings"

	"einstein/engine"
	"einstein/experiments/metrics"
	"einstein/game"
	"einstein/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Experiment plays every level with every agent.
type Experiment struct {
	Name      string
	Levels    []string // Level file paths
	Agents    []metrics.AgentConfig
	Games     int // Games per level and agent; only the random agent varies between them
	MaxMoves  int
	OutputDir string // CSV output is skipped when empty
}

type Results struct {
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Summaries   []Summary
}

func Run(exp Experiment) (*Results, error) {
	levels := make([]*game.Level, len(exp.Levels))
	for i, path := range exp.Levels {
		level, err := game.LoadLevel(path)
		if err != nil {
			return nil, err
		}
		levels[i] = level
	}

	games := max(exp.Games, 1)
	results := &Results{}
	count := 0

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for li, level := range levels {
		name := levelName(exp.Levels[li])
		for _, config := range exp.Agents {
			log.Info().Msgf("starting level %s with agent=%+v...", name, config)

			for i := 0; i < games; i++ {
				gameConfig := config
				gameConfig.Seed += uint64(i)
				a, err := agent.New(gameConfig)
				if err != nil {
					return nil, err
				}

				result, err := engine.LocalEngine(name, level, a, exp.MaxMoves).Run()
				if err != nil {
					return nil, fmt.Errorf("level %s agent %d game %d: %w", name, config.ID, i+1, err)
				}

				count++
				results.GameRecords = append(results.GameRecords, metrics.GameRecord{
					ID:         count,
					Agent:      config.ID,
					GameMetric: result.GameMetric,
				})
				for _, mm := range result.MoveMetrics {
					results.MoveRecords = append(results.MoveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}
			}
		}
		log.Info().Msgf("completed level %d of %d", li+1, len(levels))
	}

	results.Summaries = Summarize(exp.Agents, results.GameRecords, results.MoveRecords)
	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutputDir == "" {
		return results, nil
	}
	if err := store(exp, results); err != nil {
		return nil, err
	}
	return results, nil
}

func store(exp Experiment, results *Results) error {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.GameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.MoveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func levelName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
