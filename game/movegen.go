package game

import "sort"

// Priority tiers, highest first. A move takes the highest tier any rule gives it.
const (
	PriorityGoal         = 1000.0 // lands on the goal row
	PriorityBreakthrough = 500.0  // within 2 rows of goal and moving forward
	PriorityMultiAdvance = 300.0  // multi-segment jump gaining 2+ rows
	PriorityForwardJump  = 150.0
	PriorityForwardSlide = 60.0
	PriorityGrow         = 50.0
	PriorityPotential    = 30.0 // sideways jump with chain potential, or isolated frog regrouping
	PriorityDefault      = 1.0
	PriorityShuffle      = 0.5 // frog already home moving along the goal row
)

const isolationThreshold = 0.3

// Candidate is a legal action with its move-ordering priority.
type Candidate struct {
	Action   Action
	Priority float64
}

// Actions enumerates the mover's legal actions, highest priority first. Ties
// keep generation order, so the result is deterministic for a given board.
// A non-nil book overrides generation while it applies. The result is empty
// only for terminal states.
func Actions(gs *GameState, book OpeningBook) []Candidate {
	if gs.IsTerminal() {
		return nil
	}
	if move, ok := book.Next(gs); ok {
		return []Candidate{{Action: move, Priority: PriorityGoal}}
	}

	b := gs.Board()
	color := gs.Player()
	n := b.Size()
	frogs := gs.Frogs()
	occupied := occupancy(b)

	var candidates []Candidate
	for _, from := range frogs {
		for _, d := range PermittedDirections(color) {
			to := from.Add(d)
			if !to.InBounds(n) || b.Cell(to) != LilyPad {
				continue
			}
			slide := Slide{From: from, Dir: d}
			candidates = append(candidates, Candidate{slide, score(b, color, slide, frogs)})
		}
		for _, dirs := range jumpChains(b, color, from, occupied) {
			jump := Jump{From: from, Dirs: dirs}
			candidates = append(candidates, Candidate{jump, score(b, color, jump, frogs)})
		}
	}
	if canGrow(b, color) || len(candidates) == 0 {
		candidates = append(candidates, Candidate{Grow{}, PriorityGrow})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})
	return candidates
}

func bit(n int, c Coord) uint64 {
	return 1 << uint(c.R*n+c.C)
}

func occupancy(b Board) uint64 {
	var mask uint64
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Cell(Coord{r, c}).IsFrog() {
				mask |= bit(n, Coord{r, c})
			}
		}
	}
	return mask
}

// jumpChains returns every maximal jump path from `from`. A path is recorded
// only at a dead end; while a segment is available the chain must continue,
// but the choice between branches is free.
func jumpChains(b Board, color Color, from Coord, occupied uint64) [][]Direction {
	n := b.Size()
	var chains [][]Direction

	var walk func(pos Coord, path []Direction, mask, landed uint64)
	walk = func(pos Coord, path []Direction, mask, landed uint64) {
		extended := false
		for _, d := range PermittedDirections(color) {
			over, land := pos.Add(d), pos.Add(d).Add(d)
			if !land.InBounds(n) || landed&bit(n, land) != 0 {
				continue
			}
			if mask&bit(n, over) == 0 {
				continue
			}
			if b.Cell(land) != LilyPad || mask&bit(n, land) != 0 {
				continue
			}
			extended = true
			next := append(path[:len(path):len(path)], d)
			nextMask := mask&^bit(n, pos)&^bit(n, over) | bit(n, land)
			walk(land, next, nextMask, landed|bit(n, land))
		}
		if !extended && len(path) > 0 {
			chains = append(chains, path)
		}
	}

	walk(from, nil, occupied, bit(n, from))
	return chains
}

func canGrow(b Board, color Color) bool {
	own := FrogOf(color)
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			at := Coord{r, c}
			if b.Cell(at) != own {
				continue
			}
			for _, d := range AllDirections {
				if nb := at.Add(d); nb.InBounds(n) && b.Cell(nb) == Empty {
					return true
				}
			}
		}
	}
	return false
}

// score assigns a movement action its priority tier.
func score(b Board, color Color, a Action, frogs []Coord) float64 {
	n := b.Size()
	goal := color.GoalRow(n)
	from, _ := Origin(a)
	to, _ := Destination(a)
	if from.R == goal {
		return PriorityShuffle
	}

	_, isJump := a.(Jump)
	advance := color.Advance(from, to)
	forward := advance > 0

	p := PriorityDefault
	if to.R == goal {
		p = max(p, PriorityGoal)
	}
	if forward && abs(goal-from.R) <= 2 {
		p = max(p, PriorityBreakthrough)
	}
	switch {
	case isJump && forward && Segments(a) >= 2 && advance >= 2:
		p = max(p, PriorityMultiAdvance)
	case isJump && forward:
		p = max(p, PriorityForwardJump)
	case forward:
		p = max(p, PriorityForwardSlide)
	case isJump && chainPotential(b, color, from, to):
		p = max(p, PriorityPotential)
	}

	before := Cohesion(from, from, frogs, n)
	if before < isolationThreshold && Cohesion(to, from, frogs, n) > before {
		p = max(p, PriorityPotential)
	}
	return p
}

// Cohesion is 1 - (mean Manhattan distance from at to the teammates) / 2n.
// The frog originally at self is not its own teammate. No teammates gives 0.
func Cohesion(at, self Coord, teammates []Coord, n int) float64 {
	total, count := 0, 0
	for _, mate := range teammates {
		if mate == self {
			continue
		}
		total += abs(at.R-mate.R) + abs(at.C-mate.C)
		count++
	}
	if count == 0 {
		return 0
	}
	return 1 - float64(total)/float64(count)/float64(2*n)
}

// chainPotential reports whether, after moving from -> to, a forward jump
// from `to` is open or would be opened by a Grow.
func chainPotential(b Board, color Color, from, to Coord) bool {
	n := b.Size()
	own := FrogOf(color)
	cellAfter := func(c Coord) Cell {
		switch c {
		case from:
			return Empty
		case to:
			return own
		}
		return b.Cell(c)
	}
	grownNext := func(c Coord) bool {
		for _, d := range AllDirections {
			if nb := c.Add(d); nb.InBounds(n) && cellAfter(nb) == own {
				return true
			}
		}
		return false
	}

	for _, d := range ForwardDirections(color) {
		over, land := to.Add(d), to.Add(d).Add(d)
		if !land.InBounds(n) || !cellAfter(over).IsFrog() {
			continue
		}
		switch cellAfter(land) {
		case LilyPad:
			// Rare: a maximal chain has already taken any open pad beyond `to`.
			return true
		case Empty:
			if grownNext(land) {
				return true
			}
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
