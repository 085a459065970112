package game

// GameState is a board snapshot plus data derived from it for one turn.
// A state is never mutated after construction; Play returns a new one.
type GameState struct {
	board    Board
	LastMove Action // nil at the search root
	frogs    []Coord
}

// NewGameState wraps b. The caller must not apply actions to b afterwards
// except through the returned state.
func NewGameState(b Board, last Action) *GameState {
	gs := &GameState{
		board:    b,
		LastMove: last,
	}
	gs.frogs = frogsOf(b, b.Turn())
	return gs
}

func frogsOf(b Board, color Color) []Coord {
	own := FrogOf(color)
	n := b.Size()
	frogs := make([]Coord, 0, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Cell(Coord{r, c}) == own {
				frogs = append(frogs, Coord{r, c})
			}
		}
	}
	return frogs
}

func (gs *GameState) Board() Board { return gs.board }

// Player is the colour to act.
func (gs *GameState) Player() Color { return gs.board.Turn() }

// Frogs lists the mover's frogs in row-major order.
func (gs *GameState) Frogs() []Coord { return gs.frogs }

// OpeningUsed reads the colour's opening-book counter from the board, so a
// book move recorded after the state was built is already counted.
func (gs *GameState) OpeningUsed(color Color) int { return gs.board.OpeningUsed(color) }

func (gs *GameState) IsTerminal() bool { return gs.board.Terminal() }

// Play applies a to a clone of the board.
func (gs *GameState) Play(a Action) (*GameState, error) {
	next := gs.board.Clone()
	if err := next.Apply(a); err != nil {
		return nil, err
	}
	return NewGameState(next, a), nil
}
