package searcher

import (
	"fmt"
	"math"
	"strings"

	"freckers/game"

	"golang.org/x/exp/rand"
)

// Rollout selects how a freshly expanded node is scored.
type Rollout int

const (
	Minimax Rollout = iota // shallow alpha-beta over the top-K actions
	Random                 // short random playout
)

func (r Rollout) String() string {
	if r == Random {
		return "random"
	}
	return "minimax"
}

func ParseRollout(s string) (Rollout, error) {
	switch strings.ToLower(s) {
	case "", "minimax":
		return Minimax, nil
	case "random":
		return Random, nil
	}
	return Minimax, fmt.Errorf("unknown rollout %q", s)
}

// playout returns a score and the colour it is relative to.
func (m *MCTS) playout(state *game.GameState, rng *rand.Rand) (game.Color, float64) {
	if state.IsTerminal() {
		m.metrics.AddFullPlayout()
		return state.Player(), m.evaluate(state)
	}
	if m.rollout == Random {
		return m.randomPlayout(state, rng)
	}
	perspective := state.Player()
	return perspective, minimax(state, m.depth, math.Inf(-1), math.Inf(1), perspective, m.topK, m.evaluate)
}

func (m *MCTS) randomPlayout(state *game.GameState, rng *rand.Rand) (game.Color, float64) {
	for ply := 0; ply < m.playoutLength && !state.IsTerminal(); ply++ {
		candidates := game.Actions(state, nil)
		if len(candidates) == 0 {
			break
		}
		next, err := state.Play(candidates[rng.Intn(len(candidates))].Action)
		if err != nil {
			break
		}
		state = next
	}
	if state.IsTerminal() {
		m.metrics.AddFullPlayout()
	}
	return state.Player(), m.evaluate(state)
}

// minimax is a fixed-depth alpha-beta search over the topK highest priority
// actions. Values are relative to perspective.
func minimax(state *game.GameState, depth int, alpha, beta float64, perspective game.Color, topK int, evaluate game.Evaluator) float64 {
	if depth == 0 || state.IsTerminal() {
		return relative(state, perspective, evaluate)
	}

	candidates := game.Actions(state, nil)
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	maximizing := state.Player() == perspective
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	explored := false
	for _, c := range candidates {
		next, err := state.Play(c.Action)
		if err != nil {
			continue
		}
		explored = true
		v := minimax(next, depth-1, alpha, beta, perspective, topK, evaluate)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, best)
		} else {
			best = min(best, v)
			beta = min(beta, best)
		}
		if beta <= alpha {
			break
		}
	}
	if !explored {
		return relative(state, perspective, evaluate)
	}
	return best
}

func relative(state *game.GameState, perspective game.Color, evaluate game.Evaluator) float64 {
	v := evaluate(state)
	if state.Player() != perspective {
		return -v
	}
	return v
}
