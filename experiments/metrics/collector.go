package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarises one call to the searcher.
type SearchMetric struct {
	Goroutines   int
	Rollout      string
	Depth        int
	Duration     time.Duration
	Iterations   int
	FullPlayouts int // simulations that reached a finished game
	Nodes        int
	BookMove     bool
}

type MoveMetric struct {
	Step   int
	Player string // colour name
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines int, rollout string, depth int)
	SetBookMove(value bool)
	AddIteration()
	AddFullPlayout()
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	rollout      string
	depth        int
	startTime    time.Time
	iterations   atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int32
	bookMove     atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines int, rollout string, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.rollout = rollout
	m.depth = depth
	m.iterations.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
	m.bookMove.Store(false)
}

func (m *collector) SetBookMove(value bool) {
	m.bookMove.Store(value)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Rollout:      m.rollout,
		Depth:        m.depth,
		Duration:     time.Since(m.startTime),
		Iterations:   int(m.iterations.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Nodes:        int(m.nodes.Load()),
		BookMove:     m.bookMove.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, rollout string, depth int) {}
func (m *dummyCollector) SetBookMove(value bool)                        {}
func (m *dummyCollector) AddIteration()                                 {}
func (m *dummyCollector) AddFullPlayout()                               {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
