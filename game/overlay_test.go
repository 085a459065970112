package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlayMatchesGrid(t *testing.T) {
	grid := NewBoard()
	overlay := NewOverlay(grid)
	var board Board = overlay

	for ply := 0; ply < 40 && !grid.Terminal(); ply++ {
		candidates := Actions(NewGameState(grid, nil), nil)
		require.NotEmpty(t, candidates)
		action := candidates[ply%len(candidates)].Action

		require.NoError(t, grid.Apply(action), "ply %d: %s", ply, action)
		board = board.Clone()
		require.NoError(t, board.Apply(action), "ply %d: %s", ply, action)

		require.Equal(t, Render(grid, false), Render(board, false), "ply %d", ply)
		require.Equal(t, grid.Terminal(), board.Terminal())
		require.Equal(t, grid.GoalCount(Red), board.GoalCount(Red))
		require.Equal(t, grid.GoalCount(Blue), board.GoalCount(Blue))
	}
}

func TestOverlayClone(t *testing.T) {
	t.Run("isolating clones from later writes", func(t *testing.T) {
		root := NewOverlay(NewBoard())
		child := root.Clone()

		require.NoError(t, child.Apply(Slide{From: Coord{0, 2}, Dir: Down}))
		require.NoError(t, root.Apply(Slide{From: Coord{0, 5}, Dir: Down}))

		require.Equal(t, RedFrog, root.Cell(Coord{0, 2}), "Root should not see the child's move")
		require.Equal(t, RedFrog, child.Cell(Coord{0, 5}), "Child should not see the root's move")
		require.Equal(t, RedFrog, child.Cell(Coord{1, 2}))
		require.Equal(t, RedFrog, root.Cell(Coord{1, 5}))
	})

	t.Run("keeping earlier clones intact after sealing", func(t *testing.T) {
		root := NewOverlay(NewBoard())
		require.NoError(t, root.Apply(Slide{From: Coord{0, 2}, Dir: Down}))
		first := root.Clone()
		require.NoError(t, root.Apply(Slide{From: Coord{7, 2}, Dir: Up}))
		second := root.Clone()

		require.Equal(t, BlueFrog, first.Cell(Coord{7, 2}))
		require.Equal(t, Empty, second.Cell(Coord{7, 2}))
		require.Equal(t, RedFrog, second.Cell(Coord{1, 2}))
	})

	t.Run("preserving counters", func(t *testing.T) {
		grid := NewBoard()
		grid.RecordOpening(Blue)
		grid.SetTurnCount(3)
		grid.SetTurn(Blue)
		root := NewOverlay(grid)
		root.RecordOpening(Blue)

		clone := root.Clone()

		require.Equal(t, 2, clone.OpeningUsed(Blue))
		require.Equal(t, 0, clone.OpeningUsed(Red))
		require.Equal(t, 3, clone.TurnCount())
		require.Equal(t, Blue, clone.Turn())
		require.Equal(t, 1, grid.OpeningUsed(Blue), "Overlay should own a private copy of the grid")
	})

	t.Run("flattening deep chains", func(t *testing.T) {
		grid := NewBoard()
		var board Board = NewOverlay(grid)
		for ply := 0; ply < 2*maxOverlayDepth; ply++ {
			action := Action(Grow{})
			board = board.Clone()
			require.NoError(t, board.Apply(action))
			require.NoError(t, grid.Apply(action))
		}

		overlay := board.(*Overlay)
		require.LessOrEqual(t, overlay.depth(), maxOverlayDepth)
		require.Equal(t, Render(grid, false), Render(overlay.Materialize(), false))
	})
}
