package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateTerminal(t *testing.T) {
	finished := map[Coord]Cell{
		{7, 1}: RedFrog, {7, 2}: RedFrog,
		{0, 4}: BlueFrog, {3, 4}: BlueFrog,
	}

	t.Run("scoring a win for the mover", func(t *testing.T) {
		b := newGrid(t, BoardN, Red, finished)

		require.Equal(t, WinValue, Evaluate(NewGameState(b, nil)))
	})

	t.Run("scoring a loss for the mover", func(t *testing.T) {
		b := newGrid(t, BoardN, Blue, finished)

		require.Equal(t, -WinValue, Evaluate(NewGameState(b, nil)))
	})

	t.Run("scoring a draw at the turn limit", func(t *testing.T) {
		b := NewBoard()
		b.SetTurnCount(MaxTurns)

		require.Equal(t, 0.0, Evaluate(NewGameState(b, nil)))
	})
}

func TestEvaluateHeuristic(t *testing.T) {
	t.Run("scoring the symmetric start as even", func(t *testing.T) {
		require.InDelta(t, 0.0, Evaluate(NewGameState(NewBoard(), nil)), 1e-9)
	})

	t.Run("negating the score for the other mover", func(t *testing.T) {
		cells := map[Coord]Cell{
			{6, 1}: RedFrog, {2, 2}: RedFrog,
			{4, 4}: BlueFrog, {5, 4}: BlueFrog, {6, 4}: LilyPad,
		}
		red := Evaluate(NewGameState(newGrid(t, BoardN, Red, cells), nil))
		blue := Evaluate(NewGameState(newGrid(t, BoardN, Blue, cells), nil))

		require.Greater(t, red, 0.0, "Red is further advanced")
		require.InDelta(t, -red, blue, 1e-9)
	})

	t.Run("rewarding frogs on the goal row", func(t *testing.T) {
		home := newGrid(t, BoardN, Red, map[Coord]Cell{{7, 1}: RedFrog, {3, 1}: RedFrog, {4, 4}: BlueFrog})
		away := newGrid(t, BoardN, Red, map[Coord]Cell{{5, 1}: RedFrog, {3, 1}: RedFrog, {4, 4}: BlueFrog})

		require.Greater(t, Evaluate(NewGameState(home, nil)), Evaluate(NewGameState(away, nil)))
	})

	t.Run("staying inside the heuristic bound", func(t *testing.T) {
		b := newGrid(t, BoardN, Red, map[Coord]Cell{
			{7, 0}: RedFrog, {7, 1}: RedFrog, {7, 2}: RedFrog, {6, 3}: RedFrog,
			{7, 7}: BlueFrog,
		})
		require.False(t, b.Terminal())

		v := Evaluate(NewGameState(b, nil))

		require.LessOrEqual(t, v, HeuristicBound(BoardN))
		require.Less(t, HeuristicBound(BoardN), WinValue)
	})
}
