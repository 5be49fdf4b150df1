package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"einstein/engine"
	"einstein/experiments"
	"einstein/game"
	"einstein/meta"
	"einstein/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type flags struct {
	config     string
	level      string
	agent      string
	name       string
	out        string
	experiment bool
	logLevel   string
	depth      int
	budget     int
	goroutines int
	seed       uint64
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "YAML config file")
	flag.StringVar(&f.level, "level", "", "Level file to play")
	flag.StringVar(&f.agent, "agent", "", "Agent: expectimax, astar or random")
	flag.StringVar(&f.name, "name", "AIPlayer", "Player name written to the move record")
	flag.StringVar(&f.out, "out", "", "Move record output file")
	flag.BoolVar(&f.experiment, "experiment", false, "Play every configured level with every configured agent")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level")
	flag.IntVar(&f.depth, "depth", 0, "Expectimax search depth")
	flag.IntVar(&f.budget, "budget", 0, "A* node budget")
	flag.IntVar(&f.goroutines, "goroutines", 0, "Goroutines scoring expectimax root moves")
	flag.Uint64Var(&f.seed, "seed", 0, "Random agent seed")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(f); err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func run(f flags) error {
	config, err := loadConfig(f)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if f.experiment {
		return runExperiment(config)
	}
	return runLevel(config, f)
}

func loadConfig(f flags) (meta.Config, error) {
	config := meta.Default()
	if f.config != "" {
		var err error
		if config, err = meta.Load(f.config); err != nil {
			return config, err
		}
	}

	if f.agent != "" {
		config.Agent = f.agent
	}
	if f.logLevel != "" {
		config.LogLevel = f.logLevel
	}
	if f.depth > 0 {
		config.Depth = f.depth
	}
	if f.budget > 0 {
		config.Budget = f.budget
	}
	if f.goroutines > 0 {
		config.Goroutines = f.goroutines
	}
	if f.seed > 0 {
		config.Seed = f.seed
	}
	if f.level != "" {
		config.Levels = []string{f.level}
	}
	return config, config.Validate()
}

func runLevel(config meta.Config, f flags) error {
	if len(config.Levels) == 0 {
		return errors.New("no level given, use -level or the config file")
	}
	path := config.Levels[0]
	level, err := game.LoadLevel(path)
	if err != nil {
		return err
	}

	a, err := agent.New(config.AgentConfig())
	if err != nil {
		return err
	}

	result, err := engine.LocalEngine(path, level, a, config.MaxMoves).Run()
	if err != nil {
		return err
	}

	switch result.Outcome {
	case engine.Won:
		fmt.Printf("Puzzle solved in %d moves.\n", result.Turns)
	case engine.Captured:
		fmt.Printf("Target piece %d was captured.\n", level.Target)
	default:
		fmt.Printf("Puzzle not solved within %d moves.\n", config.MaxMoves)
	}

	if f.out != "" {
		if err := engine.WriteRecordFile(f.out, f.name, level, result.History); err != nil {
			return err
		}
		log.Info().Msgf("wrote move record to %s", f.out)
	}
	return nil
}

func runExperiment(config meta.Config) error {
	if len(config.Levels) == 0 {
		return errors.New("no levels configured")
	}

	results, err := experiments.Run(experiments.Experiment{
		Name:      "levels",
		Levels:    config.Levels,
		Agents:    config.ExperimentAgents(),
		Games:     config.Games,
		MaxMoves:  config.MaxMoves,
		OutputDir: config.OutputDir,
	})
	if err != nil {
		return err
	}

	for _, s := range results.Summaries {
		fmt.Printf("agent %d (%s): %d/%d won, %.1f±%.1f turns, %d fallbacks, %.2fms per move\n",
			s.Agent, s.Kind, s.Wins, s.Games, s.MeanTurns, s.StdTurns, s.Fallbacks, s.MeanMillis)
	}
	return nil
}
