package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"freckers/agent"
	"freckers/engine"
	"freckers/experiments"
	"freckers/game"
	"freckers/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment to run")
	benchmark := flag.Bool("benchmark", false, "Time searches of the opening position")
	runs := flag.Int("runs", 5, "Benchmark searches")
	iterations := flag.Int("iterations", 200, "Iterations per search")
	duration := flag.Duration("duration", 0, "Wall-clock limit per search")
	rollout := flag.String("rollout", "minimax", "Rollout mode: minimax or random")
	goroutines := flag.Int("goroutines", 1, "Trees grown in parallel per search")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if l, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(l)
	}

	mode, err := searcher.ParseRollout(*rollout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	options := []searcher.Option{
		searcher.WithRollout(mode),
		searcher.WithGoroutines(*goroutines),
		searcher.WithDuration(*duration),
	}

	switch {
	case *configPath != "":
		cfg, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
		if _, err := experiments.Run(cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	case *benchmark:
		experiments.RunBenchmark(*iterations, *runs, *seed, options...)
	default:
		playGreedy(*iterations, *seed, options)
	}
}

// playGreedy pits a searching Red against a greedy Blue and prints the final board.
func playGreedy(iterations int, seed uint64, options []searcher.Option) {
	options = append(options, searcher.WithSeed(seed), searcher.WithMetrics())
	red := agent.NewMCTSAgent(game.Red, searcher.NewMCTS(options...), iterations)
	blue := agent.NewGreedyAgent(game.Blue, seed)
	e, err := engine.NewLocalEngine(red, blue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	winner, gameMetric, _ := e.Run()

	ansi := termenv.EnvColorProfile() != termenv.Ascii
	fmt.Print(game.Render(e.Board(), ansi))
	if winner == "" {
		winner = "draw"
	}
	fmt.Printf("winner: %s after %d moves in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
}
