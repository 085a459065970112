package searcher

import (
	"math"

	"freckers/game"
)

// Tree-shaping bonuses. They only steer selection and never enter rewards.
const (
	forwardBonus = 0.1  // single-segment move gaining a row
	centreBonus  = 0.05 // non-horizontal move landing in the central band
)

// ucb scores a child for selection. Unvisited children come first. rewards
// are relative to the root mover, so a parent moved by the opponent flips the
// exploitation term.
func ucb(rewards float64, visits, parentVisits int, c float64, minimizing bool) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	exploit := rewards / float64(visits)
	if minimizing {
		exploit = -exploit
	}
	lnN := math.Log(float64(max(parentVisits, 1)))
	return exploit + c*math.Sqrt(lnN/float64(visits))
}

func bonus(mover game.Color, a game.Action, n int) float64 {
	from, ok := game.Origin(a)
	if !ok {
		return 0
	}
	to, _ := game.Destination(a)

	var b float64
	if game.Segments(a) == 1 && mover.Advance(from, to) > 0 {
		b += forwardBonus
	}
	lo, hi := n/4, n-1-n/4
	if from.R != to.R && to.R >= lo && to.R <= hi && to.C >= lo && to.C <= hi {
		b += centreBonus
	}
	return b
}
