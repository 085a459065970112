package experiments

import (
	"fmt"

	"freckers/agent"
	"freckers/engine"
	"freckers/experiments/metrics"
	"freckers/game"
	"freckers/searcher"

	"github.com/rs/zerolog/log"
)

// Run plays every match up in cfg and stores the records as CSV. It returns
// the results folder.
func Run(cfg *Config) (string, error) {
	configs := make(map[int]metrics.AgentConfig, len(cfg.Agents))
	for _, a := range cfg.Agents {
		configs[a.ID] = a
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchUp := range cfg.MatchUps {
		red, blue := configs[matchUp[0]], configs[matchUp[1]]

		log.Info().Msgf("starting matchup %d of %d between red=%d and blue=%d...", mi+1, len(cfg.MatchUps), red.ID, blue.ID)

		wins := map[string]int{}
		for i := 0; i < cfg.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(red, blue, uint64(count))
			if err != nil {
				return "", err
			}
			count++
			wins[winner]++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Red:        red.ID,
				Blue:       blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d game %d of %d with winner: %q", mi+1, i+1, cfg.Games, winner)
		}
		log.Info().Msgf("completed matchup %d of %d: red %d, blue %d, draws %d",
			mi+1, len(cfg.MatchUps), wins["RED"], wins["BLUE"], wins[""])
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays one game. offset varies the agents' seeds between games.
func runGame(red, blue metrics.AgentConfig, offset uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	redAgent, err := newAgent(red, game.Red, offset)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	blueAgent, err := newAgent(blue, game.Blue, offset)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	var e engine.Engine
	e, err = engine.NewLocalEngine(redAgent, blueAgent)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func newAgent(config metrics.AgentConfig, color game.Color, offset uint64) (agent.Agent, error) {
	switch config.Kind {
	case KindGreedy:
		return agent.NewGreedyAgent(color, config.Seed+offset), nil
	case KindMCTS, "":
		mcts, err := createMCTS(config, offset)
		if err != nil {
			return nil, err
		}
		return agent.NewMCTSAgent(color, mcts, config.Iterations), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}

func createMCTS(config metrics.AgentConfig, offset uint64) (*searcher.MCTS, error) {
	rollout, err := searcher.ParseRollout(config.Rollout)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithRollout(rollout),
		searcher.WithSeed(config.Seed + offset),
	}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.TopK > 0 {
		options = append(options, searcher.WithTopK(config.TopK))
	}
	if config.PlayoutLength > 0 {
		options = append(options, searcher.WithPlayoutLength(config.PlayoutLength))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Overlay {
		options = append(options, searcher.WithOverlay())
	}
	if config.NoBook {
		options = append(options, searcher.WithOpeningBook(nil))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...), nil
}
