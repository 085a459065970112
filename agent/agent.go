package agent

import (
	"errors"
	"fmt"

	"freckers/experiments/metrics"
	"freckers/game"
	"freckers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrOutOfTurn = errors.New("action played out of turn")

// Agent is one player. The caller asks the agent to act on its turn and
// reports every played action, its own included, through Update.
type Agent interface {
	Color() game.Color
	// Action returns the agent's next action and the metrics of finding it.
	Action() (game.Action, metrics.SearchMetric)
	Update(color game.Color, action game.Action) error
}

// tracker keeps an agent's private copy of the board in step with the game.
type tracker struct {
	color game.Color
	board *game.Grid
}

func (t *tracker) Color() game.Color {
	return t.color
}

func (t *tracker) Update(color game.Color, action game.Action) error {
	if color != t.board.Turn() {
		return fmt.Errorf("%w: %s on %s's turn", ErrOutOfTurn, color, t.board.Turn())
	}
	if err := t.board.Apply(action); err != nil {
		return fmt.Errorf("failed to apply %s for %s: %w", action, color, err)
	}
	return nil
}

// MCTSAgent searches for each action with an MCTS engine.
type MCTSAgent struct {
	tracker
	mcts       *searcher.MCTS
	iterations int
}

func NewMCTSAgent(color game.Color, mcts *searcher.MCTS, iterations int) *MCTSAgent {
	return &MCTSAgent{
		tracker:    tracker{color: color, board: game.NewBoard()},
		mcts:       mcts,
		iterations: iterations,
	}
}

// Action falls back to Grow when the search finds nothing to play.
func (a *MCTSAgent) Action() (game.Action, metrics.SearchMetric) {
	action, ok := a.mcts.Search(game.NewGameState(a.board, nil), a.iterations)
	if !ok {
		log.Warn().Stringer("player", a.color).Msg("search found no action, growing instead")
		return game.Grow{}, a.mcts.LastSearch()
	}
	return action, a.mcts.LastSearch()
}

// GreedyAgent plays the highest priority action, breaking ties at random.
type GreedyAgent struct {
	tracker
	rng *rand.Rand
}

func NewGreedyAgent(color game.Color, seed uint64) *GreedyAgent {
	return &GreedyAgent{
		tracker: tracker{color: color, board: game.NewBoard()},
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (a *GreedyAgent) Action() (game.Action, metrics.SearchMetric) {
	candidates := game.Actions(game.NewGameState(a.board, nil), nil)
	if len(candidates) == 0 {
		return game.Grow{}, metrics.SearchMetric{}
	}
	top := 1
	for top < len(candidates) && candidates[top].Priority == candidates[0].Priority {
		top++
	}
	return candidates[a.rng.Intn(top)].Action, metrics.SearchMetric{}
}
