package searcher

import (
	"math"
	"testing"

	"freckers/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// board builds an 8×8 board with the given cells and mover.
func board(t *testing.T, turn game.Color, cells map[game.Coord]game.Cell) *game.Grid {
	t.Helper()
	g, err := game.NewEmptyGrid(game.BoardN)
	require.NoError(t, err)
	for at, cell := range cells {
		g.Set(at, cell)
	}
	g.SetTurn(turn)
	return g
}

func TestTreeSelectThenExpand(t *testing.T) {
	t.Run("expanding in priority order", func(t *testing.T) {
		b := board(t, game.Red, map[game.Coord]game.Cell{
			{R: 1, C: 3}: game.RedFrog,
			{R: 2, C: 3}: game.BlueFrog, {R: 3, C: 3}: game.LilyPad,
			{R: 4, C: 3}: game.BlueFrog, {R: 5, C: 3}: game.LilyPad,
			{R: 2, C: 4}: game.LilyPad,
		})
		tr := newTree(game.NewGameState(b, nil))

		first := tr.selectThenExpand(DefaultExploration)
		second := tr.selectThenExpand(DefaultExploration)

		require.IsType(t, game.Jump{}, tr.nodes[first].action)
		require.Equal(t, game.Slide{From: game.Coord{R: 1, C: 3}, Dir: game.DownRight}, tr.nodes[second].action)
		require.Equal(t, []int{first, second}, tr.nodes[0].children)
		require.Equal(t, 0, tr.nodes[first].parent)
		require.Equal(t, game.Blue, tr.nodes[first].state.Player(), "Child state should have the next mover")
		require.Len(t, tr.nodes[0].queue, 1, "Grow should still be queued")
	})

	t.Run("discarding actions the board rejects", func(t *testing.T) {
		tr := newTree(game.NewGameState(game.NewBoard(), nil))
		tr.nodes[0].queue = []game.Candidate{
			{Action: game.Slide{From: game.Coord{R: 0, C: 2}, Dir: game.Up}},
			{Action: game.Jump{From: game.Coord{R: 0, C: 2}}},
			{Action: game.Grow{}},
		}
		tr.nodes[0].queued = true

		child := tr.selectThenExpand(DefaultExploration)

		require.Equal(t, game.Grow{}, tr.nodes[child].action)
		require.Len(t, tr.nodes[0].children, 1)
		require.Empty(t, tr.nodes[0].queue)
	})

	t.Run("enumerating every action without the opening book", func(t *testing.T) {
		tr := newTree(game.NewGameState(game.NewBoard(), nil))

		require.Equal(t, game.Actions(tr.nodes[0].state, nil), tr.unexplored(0))
		require.Greater(t, len(tr.nodes[0].queue), 1)
	})

	t.Run("returning a terminal leaf", func(t *testing.T) {
		b := board(t, game.Blue, map[game.Coord]game.Cell{{R: 7, C: 3}: game.RedFrog, {R: 3, C: 3}: game.BlueFrog})
		tr := newTree(game.NewGameState(b, nil))

		require.Equal(t, 0, tr.selectThenExpand(DefaultExploration))
		require.Len(t, tr.nodes, 1)
	})

	t.Run("selecting the unvisited child of a fully expanded node", func(t *testing.T) {
		tr := newTree(game.NewGameState(game.NewBoard(), nil))
		for i := 0; i < 3; i++ {
			tr.nodes[0].queue = append(tr.nodes[0].queue, game.Candidate{Action: game.Grow{}})
		}
		tr.nodes[0].queued = true
		a, _ := tr.expand(0)
		b, _ := tr.expand(0)
		c, _ := tr.expand(0)
		tr.backup(a, game.Red, 100)
		tr.backup(c, game.Red, 100)

		got := tr.selectChild(0, DefaultExploration)

		require.Equal(t, b, got)
	})

	t.Run("selecting the child the opponent prefers", func(t *testing.T) {
		b := board(t, game.Blue, map[game.Coord]game.Cell{
			{R: 5, C: 2}: game.BlueFrog, {R: 4, C: 2}: game.LilyPad,
			{R: 2, C: 6}: game.BlueFrog, {R: 1, C: 6}: game.LilyPad,
			{R: 0, C: 0}: game.RedFrog,
		})
		tr := newTree(game.NewGameState(b, nil))
		tr.mover = game.Red
		require.NotEmpty(t, tr.unexplored(0))
		good, ok := tr.expand(0)
		require.True(t, ok)
		bad, ok := tr.expand(0)
		require.True(t, ok)
		tr.backup(good, game.Red, -50)
		tr.backup(bad, game.Red, 50)

		got := tr.selectChild(0, 0)

		require.Equal(t, good, got, "Blue should pick the child worst for Red")
	})
}

func TestTreeBackup(t *testing.T) {
	tr := newTree(game.NewGameState(game.NewBoard(), nil))
	tr.nodes[0].queue = []game.Candidate{{Action: game.Slide{From: game.Coord{R: 0, C: 3}, Dir: game.Down}}}
	tr.nodes[0].queued = true
	child, ok := tr.expand(0)
	require.True(t, ok)
	tr.nodes[child].queue = []game.Candidate{{Action: game.Slide{From: game.Coord{R: 7, C: 3}, Dir: game.Up}}}
	tr.nodes[child].queued = true
	grandchild, ok := tr.expand(child)
	require.True(t, ok)

	t.Run("negating scores from the opponent's view", func(t *testing.T) {
		tr.backup(grandchild, game.Blue, 10)

		require.Equal(t, -10.0, tr.nodes[grandchild].rewards)
		require.Equal(t, 1, tr.nodes[grandchild].visits)
		require.Equal(t, -10.0, tr.nodes[child].rewards)
		require.Equal(t, 1, tr.nodes[child].visits)
		require.Equal(t, 0.0, tr.nodes[0].rewards, "Root should only count visits")
		require.Equal(t, 1, tr.nodes[0].visits)
	})

	t.Run("keeping scores from the root mover's view", func(t *testing.T) {
		tr.backup(child, game.Red, 4)

		require.Equal(t, -6.0, tr.nodes[child].rewards)
		require.Equal(t, 2, tr.nodes[child].visits)
		require.Equal(t, 1, tr.nodes[grandchild].visits)
		require.Equal(t, 2, tr.nodes[0].visits)
	})
}

func TestTreeRewardBounds(t *testing.T) {
	for _, rollout := range []Rollout{Minimax, Random} {
		t.Run(rollout.String(), func(t *testing.T) {
			m := NewMCTS(WithRollout(rollout), WithOpeningBook(nil))
			b := game.NewBoard()
			require.NoError(t, b.Apply(game.Slide{From: game.Coord{R: 0, C: 3}, Dir: game.Down}))
			tr := newTree(game.NewGameState(b, nil))
			rng := rand.New(rand.NewSource(3))

			for i := 0; i < 200; i++ {
				m.simulate(tr, rng)
			}

			require.Equal(t, 200, tr.nodes[0].visits)
			for i, n := range tr.nodes[1:] {
				require.Positive(t, n.visits, "node %d", i+1)
				mean := n.rewards / float64(n.visits)
				require.LessOrEqual(t, math.Abs(mean), game.WinValue, "node %d", i+1)
				if !n.state.IsTerminal() && len(n.children) == 0 {
					require.LessOrEqual(t, math.Abs(mean), game.HeuristicBound(game.BoardN), "node %d", i+1)
				}
			}
		})
	}
}
