package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration  time.Duration
	Nodes     int // Queue states visited
	Terminals int // Finished battles scored
	MaxDepth  int
}

type MoveMetric struct {
	Step   int
	Player string // Character name
	Action string
	SearchMetric
}

type GameMetric struct {
	ID             string // Battle ID
	StartingPlayer string // Character name
	Winner         string // Character name, "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddNode(depth int)
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
	maxDepth  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddNode(depth int) {
	m.nodes.Add(1)
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Terminals: int(m.terminals.Load()),
		MaxDepth:  int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
