package game

import (
	"fmt"
	"strings"
)

// Action is one of Slide, Jump or Grow. The set is closed: only this package
// can add variants.
type Action interface {
	isAction()
	String() string
}

// Slide moves a frog one square onto an adjacent lily pad.
type Slide struct {
	From Coord
	Dir  Direction
}

// Jump moves a frog through one or more two-square hops over occupied cells.
type Jump struct {
	From Coord
	Dirs []Direction
}

// Grow turns every empty square next to the mover's frogs into a lily pad.
type Grow struct{}

func (Slide) isAction() {}
func (Jump) isAction()  {}
func (Grow) isAction()  {}

func (s Slide) String() string {
	return fmt.Sprintf("SLIDE(%s, %s)", s.From, s.Dir)
}

func (j Jump) String() string {
	dirs := make([]string, len(j.Dirs))
	for i, d := range j.Dirs {
		dirs[i] = d.String()
	}
	return fmt.Sprintf("JUMP(%s, [%s])", j.From, strings.Join(dirs, ", "))
}

func (Grow) String() string {
	return "GROW"
}

// Key is a value identity for an action, suitable as a map key.
func Key(a Action) string {
	if a == nil {
		return ""
	}
	return a.String()
}

// Equal compares two actions by value.
func Equal(a, b Action) bool {
	switch x := a.(type) {
	case Slide:
		y, ok := b.(Slide)
		return ok && x == y
	case Jump:
		y, ok := b.(Jump)
		if !ok || x.From != y.From || len(x.Dirs) != len(y.Dirs) {
			return false
		}
		for i := range x.Dirs {
			if x.Dirs[i] != y.Dirs[i] {
				return false
			}
		}
		return true
	case Grow:
		_, ok := b.(Grow)
		return ok
	}
	return a == nil && b == nil
}

// Origin returns the square a movement action starts from.
func Origin(a Action) (Coord, bool) {
	switch x := a.(type) {
	case Slide:
		return x.From, true
	case Jump:
		return x.From, true
	}
	return Coord{}, false
}

// Destination returns the square a movement action ends on.
func Destination(a Action) (Coord, bool) {
	switch x := a.(type) {
	case Slide:
		return x.From.Add(x.Dir), true
	case Jump:
		to := x.From
		for _, d := range x.Dirs {
			to = to.Add(d).Add(d)
		}
		return to, true
	}
	return Coord{}, false
}

// Segments counts the single-direction steps of a movement action.
func Segments(a Action) int {
	switch x := a.(type) {
	case Slide:
		return 1
	case Jump:
		return len(x.Dirs)
	}
	return 0
}
