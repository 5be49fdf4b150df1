package meta

import (
	"errors"
	"fmt"
	"os"

	"einstein/experiments/metrics"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the YAML configuration of the CLI. Omitted fields keep their
// defaults.
type Config struct {
	LogLevel   string                `yaml:"log_level"`
	Agent      string                `yaml:"agent"`
	Depth      int                   `yaml:"depth"`
	Goroutines int                   `yaml:"goroutines"`
	Budget     int                   `yaml:"budget"`
	Survivors  bool                  `yaml:"survivors"`
	Seed       uint64                `yaml:"seed"`
	MaxMoves   int                   `yaml:"max_moves"`
	Levels     []string              `yaml:"levels"`
	OutputDir  string                `yaml:"output_dir"`
	Games      int                   `yaml:"games"`
	Agents     []metrics.AgentConfig `yaml:"agents"` // Experiment line-up
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		Agent:      "expectimax",
		Depth:      DEPTH,
		Goroutines: GO_ROUTINES,
		Budget:     BUDGET,
		MaxMoves:   MAX_MOVES,
		OutputDir:  "experiments",
		Games:      1,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch {
	case c.Depth < 1:
		return fmt.Errorf("%w: depth %d must be positive", ErrInvalidConfig, c.Depth)
	case c.Goroutines < 1:
		return fmt.Errorf("%w: goroutines %d must be positive", ErrInvalidConfig, c.Goroutines)
	case c.Budget < 1:
		return fmt.Errorf("%w: budget %d must be positive", ErrInvalidConfig, c.Budget)
	case c.MaxMoves < 1:
		return fmt.Errorf("%w: max_moves %d must be positive", ErrInvalidConfig, c.MaxMoves)
	case c.Games < 1:
		return fmt.Errorf("%w: games %d must be positive", ErrInvalidConfig, c.Games)
	}
	return nil
}

// AgentConfig returns the single agent described by the top-level fields.
func (c Config) AgentConfig() metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         1,
		Kind:       c.Agent,
		Depth:      c.Depth,
		Goroutines: c.Goroutines,
		Budget:     c.Budget,
		Survivors:  c.Survivors,
		Seed:       c.Seed,
	}
}

// ExperimentAgents returns the configured line-up, or the single agent when
// none is listed.
func (c Config) ExperimentAgents() []metrics.AgentConfig {
	if len(c.Agents) == 0 {
		return []metrics.AgentConfig{c.AgentConfig()}
	}
	return c.Agents
}
