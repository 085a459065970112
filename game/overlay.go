package game

// maxOverlayDepth bounds the lookup chain; deeper overlays are flattened.
const maxOverlayDepth = 32

// layer is a sealed set of cell writes. Layers never change once linked.
type layer struct {
	cells  map[Coord]Cell
	parent *layer
	depth  int
}

// Overlay is a copy-on-write Board. It shares an immutable base Grid and
// records only the cells it changed; Clone is O(1) and seals the pending
// writes so earlier clones keep their view.
type Overlay struct {
	base      *Grid
	sealed    *layer
	cells     map[Coord]Cell
	turn      Color
	turnCount int
	opening   [2]int
}

// NewOverlay wraps a private copy of b.
func NewOverlay(b *Grid) *Overlay {
	return &Overlay{
		base:      b.copy(),
		cells:     map[Coord]Cell{},
		turn:      b.turn,
		turnCount: b.turnCount,
		opening:   b.opening,
	}
}

func (o *Overlay) Size() int { return o.base.n }

func (o *Overlay) Cell(c Coord) Cell {
	if cell, ok := o.cells[c]; ok {
		return cell
	}
	for l := o.sealed; l != nil; l = l.parent {
		if cell, ok := l.cells[c]; ok {
			return cell
		}
	}
	return o.base.Cell(c)
}

func (o *Overlay) Turn() Color { return o.turn }

func (o *Overlay) TurnCount() int { return o.turnCount }

func (o *Overlay) Terminal() bool { return terminal(o, o.turnCount) }

func (o *Overlay) GoalCount(color Color) int {
	goal, _ := tally(o)
	return goal[color]
}

func (o *Overlay) OpeningUsed(color Color) int { return o.opening[color] }

func (o *Overlay) RecordOpening(color Color) { o.opening[color]++ }

func (o *Overlay) Apply(a Action) error {
	changes, err := resolve(o, o.turn, a)
	if err != nil {
		return err
	}
	for _, ch := range changes {
		o.cells[ch.at] = ch.cell
	}
	o.turn = o.turn.Opponent()
	o.turnCount++
	return nil
}

func (o *Overlay) Clone() Board {
	o.seal()
	if o.depth() >= maxOverlayDepth {
		o.flatten()
	}
	return &Overlay{
		base:      o.base,
		sealed:    o.sealed,
		cells:     map[Coord]Cell{},
		turn:      o.turn,
		turnCount: o.turnCount,
		opening:   o.opening,
	}
}

// Materialize returns a standalone Grid with the same logical contents.
func (o *Overlay) Materialize() *Grid {
	g := o.base.copy()
	n := g.n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			at := Coord{r, c}
			g.Set(at, o.Cell(at))
		}
	}
	g.turn = o.turn
	g.turnCount = o.turnCount
	g.opening = o.opening
	return g
}

func (o *Overlay) seal() {
	if len(o.cells) == 0 {
		return
	}
	o.sealed = &layer{cells: o.cells, parent: o.sealed, depth: o.depth() + 1}
	o.cells = map[Coord]Cell{}
}

func (o *Overlay) depth() int {
	if o.sealed == nil {
		return 0
	}
	return o.sealed.depth
}

// flatten folds the whole chain into a new base. Clones made earlier keep
// the old base and chain, which stay valid because neither is mutated.
func (o *Overlay) flatten() {
	g := o.Materialize()
	o.base = g
	o.sealed = nil
	o.cells = map[Coord]Cell{}
}
