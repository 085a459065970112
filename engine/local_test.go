package engine

import (
	"testing"

	"freckers/agent"
	"freckers/experiments/metrics"
	"freckers/game"
	"freckers/searcher"

	"github.com/stretchr/testify/require"
)

// stubborn always plays the same action.
type stubborn struct {
	color  game.Color
	action game.Action
}

func (s stubborn) Color() game.Color { return s.color }

func (s stubborn) Action() (game.Action, metrics.SearchMetric) {
	return s.action, metrics.SearchMetric{}
}

func (s stubborn) Update(game.Color, game.Action) error { return nil }

func TestNewLocalEngine(t *testing.T) {
	t.Run("rejecting swapped colours", func(t *testing.T) {
		_, err := NewLocalEngine(agent.NewGreedyAgent(game.Blue, 1), agent.NewGreedyAgent(game.Red, 2))

		require.Error(t, err)
	})

	t.Run("serving as an engine", func(t *testing.T) {
		e, err := NewLocalEngine(agent.NewGreedyAgent(game.Red, 1), agent.NewGreedyAgent(game.Blue, 2))

		require.NoError(t, err)
		require.Implements(t, (*Engine)(nil), e)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("finishing a greedy game", func(t *testing.T) {
		e, err := NewLocalEngine(agent.NewGreedyAgent(game.Red, 1), agent.NewGreedyAgent(game.Blue, 2))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.True(t, e.Board().Terminal())
		require.LessOrEqual(t, len(moveMetrics), game.MaxTurns)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, "RED", gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.Contains(t, []string{"", "RED", "BLUE"}, winner)
		require.Equal(t, "RED", moveMetrics[0].Player)
		require.Equal(t, "BLUE", moveMetrics[1].Player)
	})

	t.Run("finishing a game between searchers", func(t *testing.T) {
		red := agent.NewMCTSAgent(game.Red, searcher.NewMCTS(searcher.WithRollout(searcher.Random), searcher.WithMetrics()), 4)
		blue := agent.NewMCTSAgent(game.Blue, searcher.NewMCTS(searcher.WithDepth(1), searcher.WithTopK(4), searcher.WithMetrics()), 4)
		e, err := NewLocalEngine(red, blue)
		require.NoError(t, err)

		_, gameMetric, moveMetrics := e.Run()

		require.True(t, e.Board().Terminal())
		require.Positive(t, gameMetric.TotalMoves)
		require.True(t, moveMetrics[0].BookMove, "First move should come from the book")
		require.Equal(t, "SLIDE(0-2, Down)", moveMetrics[0].Action)
	})

	t.Run("forfeiting an illegal action", func(t *testing.T) {
		red := stubborn{color: game.Red, action: game.Slide{From: game.Coord{R: 0, C: 2}, Dir: game.Up}}
		e, err := NewLocalEngine(red, agent.NewGreedyAgent(game.Blue, 1))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, "BLUE", winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, 0, e.Board().TurnCount())
	})
}
