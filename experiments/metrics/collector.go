package metrics

import (
	"sync"
	"time"

	"mancala/game"
)

type GameMetric struct {
	Winner   game.Side
	Plies    int
	Duration time.Duration
}

type SimulationMetric struct {
	Games     int
	FirstWins int
	Plies     int // Total over all games
	MinPlies  int
	MaxPlies  int
	Duration  time.Duration // Total over all games, not wall-clock
}

func (m SimulationMetric) WinRate() float64 {
	if m.Games == 0 {
		return 0
	}
	return float64(m.FirstWins) / float64(m.Games)
}

// AveragePlies returns the mean game length.
func (m SimulationMetric) AveragePlies() float64 {
	if m.Games == 0 {
		return 0
	}
	return float64(m.Plies) / float64(m.Games)
}

// Collector records finished games. Implementations must be safe for
// concurrent use by parallel simulations.
type Collector interface {
	AddGame(metric GameMetric)
	Complete() SimulationMetric
}

type collector struct {
	sync.Mutex
	metric SimulationMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) AddGame(g GameMetric) {
	m.Lock()
	defer m.Unlock()

	if m.metric.Games == 0 || g.Plies < m.metric.MinPlies {
		m.metric.MinPlies = g.Plies
	}
	if g.Plies > m.metric.MaxPlies {
		m.metric.MaxPlies = g.Plies
	}
	m.metric.Games++
	if g.Winner == game.First {
		m.metric.FirstWins++
	}
	m.metric.Plies += g.Plies
	m.metric.Duration += g.Duration
}

func (m *collector) Complete() SimulationMetric {
	m.Lock()
	defer m.Unlock()

	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddGame(GameMetric)         {}
func (m *dummyCollector) Complete() SimulationMetric { return SimulationMetric{} }
