package game

const (
	OpeningTurnLimit = 15 // Book moves are only played before this turn
	OpeningMoves     = 5  // Book moves per colour
)

// OpeningBook holds a fixed, ordered list of early moves per colour.
type OpeningBook map[Color][]Action

// StandardOpening is the book for the 8×8 starting position.
var StandardOpening = OpeningBook{
	Red: {
		Slide{Coord{0, 2}, Down},
		Slide{Coord{0, 5}, Down},
		Grow{},
		Slide{Coord{0, 1}, DownRight},
		Slide{Coord{0, 6}, DownLeft},
	},
	Blue: {
		Slide{Coord{7, 2}, Up},
		Slide{Coord{7, 5}, Up},
		Grow{},
		Slide{Coord{7, 1}, UpRight},
		Slide{Coord{7, 6}, UpLeft},
	},
}

// Next returns the book move for the state's mover, if the book still
// applies and the board accepts the move.
func (book OpeningBook) Next(gs *GameState) (Action, bool) {
	if book == nil || gs.IsTerminal() {
		return nil, false
	}
	color := gs.Player()
	used := gs.OpeningUsed(color)
	moves := book[color]
	if gs.Board().TurnCount() >= OpeningTurnLimit || used >= OpeningMoves || used >= len(moves) {
		return nil, false
	}
	move := moves[used]
	if _, err := resolve(gs.Board(), color, move); err != nil {
		return nil, false
	}
	return move, true
}
