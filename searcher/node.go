package searcher

import (
	"freckers/game"

	"github.com/rs/zerolog/log"
)

// node is a tree vertex. Nodes live in the owning tree's slice and refer to
// each other by index; the root sits at index 0 with parent -1.
type node struct {
	parent   int
	children []int
	action   game.Action // action that led here, nil at the root
	state    *game.GameState
	queue    []game.Candidate // unexplored actions, highest priority first
	queued   bool
	rewards  float64 // relative to the root mover
	visits   int
}

// tree is grown by a single goroutine.
type tree struct {
	nodes []node
	mover game.Color // root mover
}

func newTree(state *game.GameState) *tree {
	return &tree{
		nodes: []node{{parent: -1, state: state}},
		mover: state.Player(),
	}
}

// unexplored lazily enumerates node i. Only the search root consults the
// opening book.
func (t *tree) unexplored(i int) []game.Candidate {
	n := &t.nodes[i]
	if !n.queued {
		n.queue = game.Actions(n.state, nil)
		n.queued = true
	}
	return n.queue
}

// selectThenExpand descends through fully expanded nodes and returns the
// index of a freshly expanded child, or of a leaf that cannot be expanded.
func (t *tree) selectThenExpand(exploration float64) int {
	i := 0
	for {
		if len(t.unexplored(i)) > 0 {
			if child, ok := t.expand(i); ok {
				return child
			}
		}
		if len(t.nodes[i].children) == 0 {
			return i
		}
		i = t.selectChild(i, exploration)
	}
}

// expand consumes queued actions until one applies.
func (t *tree) expand(i int) (int, bool) {
	for len(t.nodes[i].queue) > 0 {
		next := t.nodes[i].queue[0]
		t.nodes[i].queue = t.nodes[i].queue[1:]

		state, err := t.nodes[i].state.Play(next.Action)
		if err != nil {
			log.Warn().Err(err).Stringer("action", next.Action).Msg("discarding enumerated action")
			continue
		}
		t.nodes = append(t.nodes, node{parent: i, action: next.Action, state: state})
		child := len(t.nodes) - 1
		t.nodes[i].children = append(t.nodes[i].children, child)
		return child, true
	}
	return 0, false
}

func (t *tree) selectChild(i int, exploration float64) int {
	parent := &t.nodes[i]
	mover := parent.state.Player()
	minimizing := mover != t.mover
	n := parent.state.Board().Size()

	best, bestScore := parent.children[0], 0.0
	for k, c := range parent.children {
		child := &t.nodes[c]
		score := ucb(child.rewards, child.visits, parent.visits, exploration, minimizing) + bonus(mover, child.action, n)
		if k == 0 || score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// backup converts score from player's view to the root mover's and adds it
// to i and every ancestor below the root. The root only counts the visit.
func (t *tree) backup(i int, player game.Color, score float64) {
	if player != t.mover {
		score = -score
	}
	for i > 0 {
		t.nodes[i].rewards += score
		t.nodes[i].visits++
		i = t.nodes[i].parent
	}
	t.nodes[0].visits++
}
