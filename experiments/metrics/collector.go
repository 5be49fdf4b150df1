package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Searcher        string
	Duration        time.Duration
	Nodes           int
	Depth           int
	Budget          int
	BudgetExhausted bool // A* hit its node cap before finding a plan
	Fallback        bool // The move came from the one-ply greedy choice
}

type MoveMetric struct {
	Step int
	Die  int
	Move int
	SearchMetric
}

type GameMetric struct {
	Level     string
	Target    int
	Outcome   string
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector gathers statistics for a single search. Searchers create a fresh
// collector per call, so counters never leak between searches.
type Collector interface {
	Start(searcher string, depth, budget int)
	AddNode()
	SetBudgetExhausted()
	SetFallback()
	Complete() SearchMetric
}

type collector struct {
	searcher        string
	depth           int
	budget          int
	startTime       time.Time
	nodes           atomic.Int64
	budgetExhausted atomic.Bool
	fallback        atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(searcher string, depth, budget int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.depth = depth
	m.budget = budget
	m.nodes.Store(0)
	m.budgetExhausted.Store(false)
	m.fallback.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) SetBudgetExhausted() {
	m.budgetExhausted.Store(true)
}

func (m *collector) SetFallback() {
	m.fallback.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher:        m.searcher,
		Duration:        time.Since(m.startTime),
		Nodes:           int(m.nodes.Load()),
		Depth:           m.depth,
		Budget:          m.budget,
		BudgetExhausted: m.budgetExhausted.Load(),
		Fallback:        m.fallback.Load(),
	}
}

// dummyCollector only tracks the flags, which callers rely on even when
// metrics are disabled.
type dummyCollector struct {
	budgetExhausted bool
	fallback        bool
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, depth, budget int) {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) SetBudgetExhausted()                      { m.budgetExhausted = true }
func (m *dummyCollector) SetFallback()                             { m.fallback = true }
func (m *dummyCollector) Complete() SearchMetric {
	return SearchMetric{BudgetExhausted: m.budgetExhausted, Fallback: m.fallback}
}
