package searcher

import (
	"context"
	"time"

	"freckers/experiments/metrics"
	"freckers/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDepth         = 2
	MaxDepth             = 3
	DefaultTopK          = 12
	DefaultPlayoutLength = 8
	DefaultExploration   = 1.414
)

type Option func(mcts *MCTS)

type MCTS struct {
	rollout       Rollout
	depth         int
	topK          int
	playoutLength int
	exploration   float64
	duration      time.Duration
	goroutines    int
	seed          uint64
	searches      uint64
	overlay       bool
	evaluate      game.Evaluator
	book          game.OpeningBook
	metrics       metrics.Collector
	last          metrics.SearchMetric
}

func WithRollout(rollout Rollout) Option {
	return func(m *MCTS) {
		m.rollout = rollout
	}
}

// WithDepth sets the minimax horizon, capped at MaxDepth.
func WithDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.depth = min(depth, MaxDepth)
		}
	}
}

func WithTopK(k int) Option {
	return func(m *MCTS) {
		if k > 0 {
			m.topK = k
		}
	}
}

func WithPlayoutLength(plies int) Option {
	return func(m *MCTS) {
		if plies > 0 {
			m.playoutLength = plies
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithDuration bounds each search by wall-clock time on top of the iteration
// budget. The first iteration always runs.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithGoroutines grows that many independent trees per search and merges their root statistics.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// WithOverlay grows the tree on copy-on-write boards instead of full copies.
func WithOverlay() Option {
	return func(m *MCTS) {
		m.overlay = true
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithOpeningBook replaces the standard book. A nil book disables it.
func WithOpeningBook(book game.OpeningBook) Option {
	return func(m *MCTS) {
		m.book = book
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		rollout:       Minimax,
		depth:         DefaultDepth,
		topK:          DefaultTopK,
		playoutLength: DefaultPlayoutLength,
		exploration:   DefaultExploration,
		goroutines:    1,
		seed:          1,
		evaluate:      game.Evaluate,
		book:          game.StandardOpening,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search picks an action for the state's mover. It returns false when the
// state has no continuation. A book move bumps the mover's opening counter on
// the state's board.
func (m *MCTS) Search(state *game.GameState, iterations int) (game.Action, bool) {
	m.metrics.Start(m.goroutines, m.rollout.String(), m.depth)
	defer func() {
		m.last = m.metrics.Complete()
	}()

	if move, ok := m.book.Next(state); ok {
		state.Board().RecordOpening(state.Player())
		m.metrics.SetBookMove(true)
		log.Debug().Stringer("player", state.Player()).Stringer("action", move).Msg("opening book move")
		return move, true
	}
	if state.IsTerminal() {
		return nil, false
	}

	ctx := context.Background()
	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	seed := m.seed + m.searches
	m.searches++
	trees := make([]*tree, m.goroutines)
	var g errgroup.Group
	for i := range trees {
		i := i
		root := m.rootState(state)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed*uint64(m.goroutines) + uint64(i)))
			t := newTree(root)
			m.grow(ctx, t, rng, iterations)
			trees[i] = t
			return nil
		})
	}
	_ = g.Wait()

	stats := merge(trees)
	if len(stats) == 0 {
		return nil, false
	}
	best := bestChild(stats)
	log.Debug().
		Stringer("player", state.Player()).
		Stringer("action", best.action).
		Int("visits", best.visits).
		Float64("value", best.rewards/float64(max(best.visits, 1))).
		Int("children", len(stats)).
		Msg("search complete")
	return best.action, true
}

// LastSearch reports the metrics of the latest Search call. Counters stay zero without WithMetrics.
func (m *MCTS) LastSearch() metrics.SearchMetric {
	return m.last
}

// rootState gives a tree its own board so workers never share one.
func (m *MCTS) rootState(state *game.GameState) *game.GameState {
	var board game.Board
	if g, ok := state.Board().(*game.Grid); ok && m.overlay {
		board = game.NewOverlay(g)
	} else {
		board = state.Board().Clone()
	}
	return game.NewGameState(board, state.LastMove)
}

func (m *MCTS) grow(ctx context.Context, t *tree, rng *rand.Rand, iterations int) {
	for i := 0; i < iterations; i++ {
		if i > 0 && ctx.Err() != nil {
			return
		}
		m.simulate(t, rng)
		m.metrics.AddIteration()
	}
}

func (m *MCTS) simulate(t *tree, rng *rand.Rand) {
	before := len(t.nodes)
	newNode := t.selectThenExpand(m.exploration)
	if len(t.nodes) > before {
		m.metrics.AddNode()
	}
	player, score := m.playout(t.nodes[newNode].state, rng)
	t.backup(newNode, player, score)
}

type childStats struct {
	action  game.Action
	rewards float64
	visits  int
}

// merge sums root child statistics across trees by action, in first-seen order.
func merge(trees []*tree) []childStats {
	var stats []childStats
	index := make(map[string]int)
	for _, t := range trees {
		if t == nil {
			continue
		}
		for _, c := range t.nodes[0].children {
			child := &t.nodes[c]
			key := game.Key(child.action)
			i, ok := index[key]
			if !ok {
				i = len(stats)
				index[key] = i
				stats = append(stats, childStats{action: child.action})
			}
			stats[i].rewards += child.rewards
			stats[i].visits += child.visits
		}
	}
	return stats
}

// bestChild maximises mean reward; the earliest child wins ties.
func bestChild(stats []childStats) childStats {
	best := stats[0]
	bestValue := best.rewards / float64(max(best.visits, 1))
	for _, s := range stats[1:] {
		if v := s.rewards / float64(max(s.visits, 1)); v > bestValue {
			best, bestValue = s, v
		}
	}
	return best
}
