package game

import (
	"errors"
	"fmt"
)

const (
	BoardN   = 8   // Standard board size
	MaxTurns = 150 // Turn limit after which the game is scored
)

// ErrIllegalAction is returned (wrapped) by Board.Apply for any rejected action.
var ErrIllegalAction = errors.New("illegal action")

// Board is the authoritative grid state. Apply either succeeds and advances
// the mover or fails with ErrIllegalAction leaving the board untouched.
type Board interface {
	Size() int
	Cell(c Coord) Cell
	Turn() Color
	TurnCount() int
	Terminal() bool
	GoalCount(color Color) int
	OpeningUsed(color Color) int
	RecordOpening(color Color)
	Apply(a Action) error
	Clone() Board
}

type cellReader interface {
	Size() int
	Cell(c Coord) Cell
}

type change struct {
	at   Coord
	cell Cell
}

// resolve validates a for color and returns the cell changes it causes.
func resolve(r cellReader, color Color, a Action) ([]change, error) {
	n := r.Size()
	switch x := a.(type) {
	case Slide:
		if err := checkOrigin(r, color, x.From); err != nil {
			return nil, err
		}
		if !permitted(color, x.Dir) {
			return nil, fmt.Errorf("%w: %s cannot move %s", ErrIllegalAction, color, x.Dir)
		}
		to := x.From.Add(x.Dir)
		if !to.InBounds(n) || r.Cell(to) != LilyPad {
			return nil, fmt.Errorf("%w: no free lily pad at %s", ErrIllegalAction, to)
		}
		return []change{{x.From, Empty}, {to, FrogOf(color)}}, nil

	case Jump:
		if err := checkOrigin(r, color, x.From); err != nil {
			return nil, err
		}
		if len(x.Dirs) == 0 {
			return nil, fmt.Errorf("%w: jump without directions", ErrIllegalAction)
		}
		pos := x.From
		landed := make(map[Coord]bool, len(x.Dirs))
		for _, d := range x.Dirs {
			if !permitted(color, d) {
				return nil, fmt.Errorf("%w: %s cannot jump %s", ErrIllegalAction, color, d)
			}
			over, land := pos.Add(d), pos.Add(d).Add(d)
			if !land.InBounds(n) {
				return nil, fmt.Errorf("%w: jump from %s leaves the board", ErrIllegalAction, pos)
			}
			if over == x.From || !r.Cell(over).IsFrog() {
				return nil, fmt.Errorf("%w: nothing to jump over at %s", ErrIllegalAction, over)
			}
			if r.Cell(land) != LilyPad || landed[land] {
				return nil, fmt.Errorf("%w: no free lily pad at %s", ErrIllegalAction, land)
			}
			landed[land] = true
			pos = land
		}
		return []change{{x.From, Empty}, {pos, FrogOf(color)}}, nil

	case Grow:
		var changes []change
		own := FrogOf(color)
		for r0 := 0; r0 < n; r0++ {
			for c0 := 0; c0 < n; c0++ {
				at := Coord{r0, c0}
				if r.Cell(at) != own {
					continue
				}
				for _, d := range AllDirections {
					nb := at.Add(d)
					if nb.InBounds(n) && r.Cell(nb) == Empty {
						changes = append(changes, change{nb, LilyPad})
					}
				}
			}
		}
		return changes, nil
	}
	return nil, fmt.Errorf("%w: unknown action %v", ErrIllegalAction, a)
}

func checkOrigin(r cellReader, color Color, from Coord) error {
	if !from.InBounds(r.Size()) || r.Cell(from) != FrogOf(color) {
		return fmt.Errorf("%w: no %s frog at %s", ErrIllegalAction, color, from)
	}
	return nil
}

// tally counts frogs on the goal row and frogs overall, per colour.
func tally(r cellReader) (goal, frogs [2]int) {
	n := r.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			color, ok := r.Cell(Coord{row, col}).Owner()
			if !ok {
				continue
			}
			frogs[color]++
			if row == color.GoalRow(n) {
				goal[color]++
			}
		}
	}
	return goal, frogs
}

func terminal(r cellReader, turnCount int) bool {
	if turnCount >= MaxTurns {
		return true
	}
	goal, frogs := tally(r)
	for _, color := range []Color{Red, Blue} {
		if frogs[color] > 0 && goal[color] == frogs[color] {
			return true
		}
	}
	return false
}

// Winner returns the colour with more frogs home on a terminal board.
// ok is false for a draw or a game still in progress.
func Winner(b Board) (Color, bool) {
	if !b.Terminal() {
		return 0, false
	}
	red, blue := b.GoalCount(Red), b.GoalCount(Blue)
	switch {
	case red > blue:
		return Red, true
	case blue > red:
		return Blue, true
	}
	return 0, false
}

// Grid is the reference board: a flat cell slice cloned eagerly.
type Grid struct {
	n         int
	cells     []Cell
	turn      Color
	turnCount int
	opening   [2]int
}

// NewEmptyGrid returns an n×n board with no pads or frogs and Red to move.
func NewEmptyGrid(n int) (*Grid, error) {
	if n < 3 || n*n > 64 {
		return nil, fmt.Errorf("unsupported board size %d", n)
	}
	return &Grid{n: n, cells: make([]Cell, n*n)}, nil
}

// NewBoard returns the standard starting position.
func NewBoard() *Grid {
	g, _ := NewEmptyGrid(BoardN)
	n := g.n
	for _, corner := range []Coord{{0, 0}, {0, n - 1}, {n - 1, 0}, {n - 1, n - 1}} {
		g.Set(corner, LilyPad)
	}
	for c := 1; c < n-1; c++ {
		g.Set(Coord{0, c}, RedFrog)
		g.Set(Coord{n - 1, c}, BlueFrog)
		g.Set(Coord{1, c}, LilyPad)
		g.Set(Coord{n - 2, c}, LilyPad)
	}
	return g
}

func (g *Grid) Size() int { return g.n }

func (g *Grid) Cell(c Coord) Cell {
	if !c.InBounds(g.n) {
		return Empty
	}
	return g.cells[c.R*g.n+c.C]
}

// Set overwrites a cell. Used to build positions.
func (g *Grid) Set(c Coord, cell Cell) {
	g.cells[c.R*g.n+c.C] = cell
}

func (g *Grid) SetTurn(color Color) { g.turn = color }

func (g *Grid) SetTurnCount(count int) { g.turnCount = count }

func (g *Grid) Turn() Color { return g.turn }

func (g *Grid) TurnCount() int { return g.turnCount }

func (g *Grid) Terminal() bool { return terminal(g, g.turnCount) }

func (g *Grid) GoalCount(color Color) int {
	goal, _ := tally(g)
	return goal[color]
}

func (g *Grid) OpeningUsed(color Color) int { return g.opening[color] }

func (g *Grid) RecordOpening(color Color) { g.opening[color]++ }

func (g *Grid) Apply(a Action) error {
	changes, err := resolve(g, g.turn, a)
	if err != nil {
		return err
	}
	for _, ch := range changes {
		g.Set(ch.at, ch.cell)
	}
	g.turn = g.turn.Opponent()
	g.turnCount++
	return nil
}

func (g *Grid) Clone() Board {
	return g.copy()
}

func (g *Grid) copy() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		n:         g.n,
		cells:     cells,
		turn:      g.turn,
		turnCount: g.turnCount,
		opening:   g.opening,
	}
}
