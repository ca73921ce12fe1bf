package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Decisions int64
	Nodes     int64
	MaxDepth  int
	Duration  time.Duration
}

// Collector accumulates search statistics. Implementations must be safe for
// concurrent use since one agent may play many matches at once.
type Collector interface {
	AddNode()
	AddDepth(depth int)
	AddDecision(duration time.Duration)
	Complete() SearchMetric
}

type collector struct {
	decisions atomic.Int64
	nodes     atomic.Int64
	maxDepth  atomic.Int64
	duration  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddDepth(depth int) {
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddDecision(duration time.Duration) {
	m.decisions.Add(1)
	m.duration.Add(int64(duration))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Decisions: m.decisions.Load(),
		Nodes:     m.nodes.Load(),
		MaxDepth:  int(m.maxDepth.Load()),
		Duration:  time.Duration(m.duration.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddNode()                  {}
func (m *dummyCollector) AddDepth(int)              {}
func (m *dummyCollector) AddDecision(time.Duration) {}
func (m *dummyCollector) Complete() SearchMetric    { return SearchMetric{} }
