package game

// WinValue is the magnitude of a decided game. Heuristic scores stay well below it.
const WinValue = 1000.0

const (
	goalWeight     = 5.0
	nearWeight     = 2.0
	progressWeight = 3.0
	jumpWeight     = 1.0
)

// Evaluator scores a state from the point of view of the colour to move.
type Evaluator func(*GameState) float64

// Evaluate returns ±WinValue or 0 for a finished game, otherwise a weighted sum
// of goal-row, near-goal, progress and jump-opportunity differentials. Always
// relative to the mover.
func Evaluate(gs *GameState) float64 {
	b := gs.Board()
	mover := gs.Player()
	if b.Terminal() {
		own, opp := b.GoalCount(mover), b.GoalCount(mover.Opponent())
		switch {
		case own > opp:
			return WinValue
		case own < opp:
			return -WinValue
		}
		return 0
	}

	f := extract(b)
	raw := goalWeight*float64(f.goal[Red]-f.goal[Blue]) +
		nearWeight*float64(f.near[Red]-f.near[Blue]) +
		progressWeight*(f.progress[Red]-f.progress[Blue]) +
		jumpWeight*normalize(float64(f.jumps[Red]), float64(f.jumps[Blue]))
	if mover == Blue {
		return -raw
	}
	return raw
}

// HeuristicBound is the largest magnitude Evaluate can give a non-terminal n×n board.
func HeuristicBound(n int) float64 {
	cells := float64(n * n)
	return goalWeight*cells + nearWeight*cells + progressWeight + jumpWeight
}

type features struct {
	goal     [2]int
	near     [2]int
	progress [2]float64
	jumps    [2]int
}

func extract(b Board) features {
	var f features
	var frogs [2]int
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			at := Coord{r, c}
			color, ok := b.Cell(at).Owner()
			if !ok {
				continue
			}
			frogs[color]++
			toGoal := abs(color.GoalRow(n) - r)
			switch {
			case toGoal == 0:
				f.goal[color]++
			case toGoal <= 2:
				f.near[color]++
			}
			f.progress[color] += float64(n-1-toGoal) / float64(n-1)
			f.jumps[color] += openJumps(b, color, at)
		}
	}
	for _, color := range []Color{Red, Blue} {
		if frogs[color] > 0 {
			f.progress[color] /= float64(frogs[color])
		}
	}
	return f
}

// openJumps counts single hops available to the frog at `at`.
func openJumps(b Board, color Color, at Coord) int {
	count := 0
	for _, d := range PermittedDirections(color) {
		over, land := at.Add(d), at.Add(d).Add(d)
		if land.InBounds(b.Size()) && b.Cell(over).IsFrog() && b.Cell(land) == LilyPad {
			count++
		}
	}
	return count
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
