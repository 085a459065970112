package game

// Color identifies a player.
type Color uint8

const (
	Red Color = iota
	Blue
)

func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

// GoalRow is the row a colour's frogs are racing towards.
func (c Color) GoalRow(n int) int {
	if c == Red {
		return n - 1
	}
	return 0
}

// Advance returns how many rows from -> to gains towards c's goal (negative when retreating).
func (c Color) Advance(from, to Coord) int {
	if c == Red {
		return to.R - from.R
	}
	return from.R - to.R
}

func (c Color) String() string {
	if c == Red {
		return "RED"
	}
	return "BLUE"
}

// Cell is the state of one board square. A frog always sits on a pad, so an
// occupied cell implies one; the pad disappears with the frog when it leaves.
type Cell uint8

const (
	Empty Cell = iota
	LilyPad
	RedFrog
	BlueFrog
)

// FrogOf returns the cell state of a square occupied by color.
func FrogOf(color Color) Cell {
	if color == Red {
		return RedFrog
	}
	return BlueFrog
}

func (c Cell) IsFrog() bool {
	return c == RedFrog || c == BlueFrog
}

// Owner returns the colour of the frog on the cell, if any.
func (c Cell) Owner() (Color, bool) {
	switch c {
	case RedFrog:
		return Red, true
	case BlueFrog:
		return Blue, true
	}
	return 0, false
}

func (c Cell) String() string {
	switch c {
	case LilyPad:
		return "*"
	case RedFrog:
		return "R"
	case BlueFrog:
		return "B"
	}
	return "."
}
