package engine

import (
	"fmt"
	"time"

	"freckers/agent"
	"freckers/experiments/metrics"
	"freckers/game"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine referees a game between two in-process agents.
type LocalEngine struct {
	board  *game.Grid
	agents [2]agent.Agent
}

func NewLocalEngine(red, blue agent.Agent) (*LocalEngine, error) {
	if red.Color() != game.Red || blue.Color() != game.Blue {
		return nil, fmt.Errorf("agents play %s and %s, want RED and BLUE", red.Color(), blue.Color())
	}
	return &LocalEngine{
		board:  game.NewBoard(),
		agents: [2]agent.Agent{red, blue},
	}, nil
}

// Board exposes the referee's board.
func (e *LocalEngine) Board() game.Board {
	return e.board
}

// Run executes the game loop. A player whose action the referee rejects, or
// whose own board falls out of step, forfeits.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.board.Turn().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.board.Turn())

	winner := ""
	for !e.board.Terminal() {
		mover := e.board.Turn()
		step := e.board.TurnCount()

		action, searchMetric := e.agents[mover].Action()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Action:       game.Key(action),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Stringer("player", mover).Stringer("action", action).Msg("move")

		if err := e.board.Apply(action); err != nil {
			log.Error().Err(err).Msgf("%s forfeits", mover)
			winner = mover.Opponent().String()
			break
		}
		if forfeit, ok := e.update(mover, action); !ok {
			winner = forfeit.Opponent().String()
			break
		}
	}
	if winner == "" && e.board.Terminal() {
		if color, ok := game.Winner(e.board); ok {
			winner = color.String()
		}
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves, winner: %q", gameMetric.TotalMoves, winner)
	log.Debug().Msg("\n" + game.Render(e.board, false))
	return winner, gameMetric, moveMetrics
}

// update reports the action to both agents and returns the first that failed.
func (e *LocalEngine) update(mover game.Color, action game.Action) (game.Color, bool) {
	for _, a := range e.agents {
		if err := a.Update(mover, action); err != nil {
			log.Error().Err(err).Msgf("%s lost track of the game and forfeits", a.Color())
			return a.Color(), false
		}
	}
	return 0, true
}
