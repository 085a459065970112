package game

import "fmt"

// Coord is a 0-indexed (row, column) position on the board.
type Coord struct {
	R int
	C int
}

func (c Coord) Add(d Direction) Coord {
	return Coord{R: c.R + d.DR, C: c.C + d.DC}
}

// InBounds reports whether c lies on an n×n board.
func (c Coord) InBounds(n int) bool {
	return c.R >= 0 && c.R < n && c.C >= 0 && c.C < n
}

func (c Coord) String() string {
	return fmt.Sprintf("%d-%d", c.R, c.C)
}

// Direction is one of the 8 unit vectors. Rows grow downwards.
type Direction struct {
	DR int
	DC int
}

var (
	Up        = Direction{DR: -1, DC: 0}
	Down      = Direction{DR: 1, DC: 0}
	Left      = Direction{DR: 0, DC: -1}
	Right     = Direction{DR: 0, DC: 1}
	UpLeft    = Direction{DR: -1, DC: -1}
	UpRight   = Direction{DR: -1, DC: 1}
	DownLeft  = Direction{DR: 1, DC: -1}
	DownRight = Direction{DR: 1, DC: 1}
)

// AllDirections is the generation order used by the enumerator.
var AllDirections = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var (
	redDirections  = []Direction{Down, Left, Right, DownLeft, DownRight}
	blueDirections = []Direction{Up, Left, Right, UpLeft, UpRight}
	redForward     = []Direction{Down, DownLeft, DownRight}
	blueForward    = []Direction{Up, UpLeft, UpRight}
)

// PermittedDirections returns the directions a colour may slide or jump in:
// everything except the three pointing back at its own home edge.
func PermittedDirections(color Color) []Direction {
	if color == Red {
		return redDirections
	}
	return blueDirections
}

// ForwardDirections returns the three directions that gain a row for color.
func ForwardDirections(color Color) []Direction {
	if color == Red {
		return redForward
	}
	return blueForward
}

func permitted(color Color, d Direction) bool {
	for _, p := range PermittedDirections(color) {
		if p == d {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	}
	return fmt.Sprintf("(%d,%d)", d.DR, d.DC)
}
