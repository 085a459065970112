package experiments

import (
	"fmt"
	"os"

	"freckers/experiments/metrics"
	"freckers/searcher"

	"gopkg.in/yaml.v3"
)

const (
	KindMCTS   = "mcts"
	KindGreedy = "greedy"
)

// MatchUp pairs agent IDs as [red, blue].
type MatchUp [2]int

type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"` // per match up
	Output   string                `yaml:"output"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps []MatchUp             `yaml:"matchups"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML experiment and fills in defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = "selfplay"
	}
	if cfg.Games <= 0 {
		cfg.Games = 1
	}
	if cfg.Output == "" {
		cfg.Output = "results"
	}

	ids := make(map[int]bool, len(cfg.Agents))
	for i := range cfg.Agents {
		a := &cfg.Agents[i]
		if ids[a.ID] {
			return nil, fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
		switch a.Kind {
		case "", KindMCTS:
			a.Kind = KindMCTS
			if _, err := searcher.ParseRollout(a.Rollout); err != nil {
				return nil, fmt.Errorf("agent %d: %w", a.ID, err)
			}
			if a.Iterations <= 0 && a.Duration <= 0 {
				return nil, fmt.Errorf("agent %d: must specify iterations or duration", a.ID)
			}
			if a.Iterations <= 0 {
				a.Iterations = unbounded
			}
		case KindGreedy:
		default:
			return nil, fmt.Errorf("agent %d: unknown kind %q", a.ID, a.Kind)
		}
	}
	if len(cfg.MatchUps) == 0 {
		return nil, fmt.Errorf("no match ups configured")
	}
	for _, m := range cfg.MatchUps {
		for _, id := range m {
			if !ids[id] {
				return nil, fmt.Errorf("match up %v: unknown agent id %d", m, id)
			}
		}
	}
	return cfg, nil
}

// unbounded lets the duration end a search.
const unbounded = 1 << 30
