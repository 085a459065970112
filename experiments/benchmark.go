package experiments

import (
	"time"

	"freckers/game"
	"freckers/searcher"

	"github.com/rs/zerolog/log"
)

type BenchmarkResult struct {
	Runs         int
	Iterations   int
	Total        time.Duration
	PerSearch    time.Duration
	PerIteration time.Duration
}

// RunBenchmark times runs searches of the opening position. The book is
// disabled so every run searches.
func RunBenchmark(iterations, runs int, seed uint64, options ...searcher.Option) BenchmarkResult {
	iterations, runs = max(iterations, 1), max(runs, 1)
	options = append([]searcher.Option{searcher.WithSeed(seed)}, options...)
	options = append(options, searcher.WithOpeningBook(nil), searcher.WithMetrics())
	mcts := searcher.NewMCTS(options...)

	var total time.Duration
	for i := 0; i < runs; i++ {
		state := game.NewGameState(game.NewBoard(), nil)
		action, ok := mcts.Search(state, iterations)
		metric := mcts.LastSearch()
		total += metric.Duration
		log.Debug().Int("run", i+1).Bool("found", ok).Stringer("action", action).Dur("duration", metric.Duration).Msg("benchmark search")
	}

	result := BenchmarkResult{
		Runs:         runs,
		Iterations:   iterations,
		Total:        total,
		PerSearch:    total / time.Duration(runs),
		PerIteration: total / time.Duration(runs*iterations),
	}
	log.Info().Msgf("%d searches of %d iterations: %s per search, %s per iteration",
		runs, iterations, result.PerSearch, result.PerIteration)
	return result
}
