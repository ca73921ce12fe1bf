package experiments

import (
	"context"
	"fmt"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/meta"
	"mancala/player"
	"mancala/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 200 // Per match up
	TimeBudget = meta.DURATION
)

// Strategy kinds understood by NewStrategy
const (
	RandomKind = "random"
	FirstKind  = "first"
	LastKind   = "last"
	AIKind     = "ai"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: AIKind, Depth: 1},
	{ID: 2, Kind: AIKind, Depth: 2},
	{ID: 3, Kind: AIKind, Depth: 3},
	{ID: 4, Kind: AIKind, Depth: 4},
}

var budgetConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: AIKind, Duration: TimeBudget / 10, Depth: meta.MAX_DEPTH},
	{ID: 2, Kind: AIKind, Duration: TimeBudget / 2, Depth: meta.MAX_DEPTH},
	{ID: 3, Kind: AIKind, Duration: TimeBudget, Depth: meta.MAX_DEPTH},
}

// RunDepthExperiment pairs a random baseline against fixed-depth agents.
func RunDepthExperiment(ctx context.Context, games int, writer *metrics.Writer) ([]metrics.SummaryRecord, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: RandomKind}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return RunExperiment(ctx, "depth", append(depthConfigs, baseline), matchUps, games, writer)
}

// RunBudgetExperiment pairs a depth-2 baseline against deepening agents.
func RunBudgetExperiment(ctx context.Context, games int, writer *metrics.Writer) ([]metrics.SummaryRecord, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: AIKind, Depth: 2}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range budgetConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return RunExperiment(ctx, "budget", append(budgetConfigs, baseline), matchUps, games, writer)
}

// RunExperiment simulates every match up in parallel and stores one summary
// row per match up. A nil writer skips storage.
func RunExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int, writer *metrics.Writer) ([]metrics.SummaryRecord, error) {
	log.Info().Msgf("starting %s experiment...", name)

	records := make([]metrics.SummaryRecord, 0, len(matchUps))
	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		collector := metrics.NewCollector()
		template := engine.NewMatch(NewStrategy(config1), NewStrategy(config2))
		sim := NewSimulator(template, WithCollector(collector))
		result, err := sim.Run(ctx, games, true)
		if err != nil {
			return nil, fmt.Errorf("matchup %d of %s: %w", mi+1, name, err)
		}

		records = append(records, metrics.SummaryRecord{
			Agent1:           config1.ID,
			Agent2:           config2.ID,
			Elapsed:          result.Elapsed,
			SimulationMetric: collector.Complete(),
		})

		log.Info().Msgf("completed matchup %d of %d with agent1 win rate: %.3f", mi+1, len(matchUps), result.WinRate())
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return records, nil
	}

	err := writer.WriteAgentConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteSummaries(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored summaries")

	return records, nil
}

// NewStrategy builds the strategy described by config. It panics on an
// unknown kind.
func NewStrategy(config metrics.AgentConfig) engine.Strategy {
	switch config.Kind {
	case RandomKind:
		if config.Seed > 0 {
			return player.NewRandom(player.NewSeededSource(config.Seed))
		}
		return player.NewRandom(player.CryptoSource{})
	case FirstKind:
		return player.First
	case LastKind:
		return player.Last
	case AIKind:
		return createAgent(config)
	default:
		panic(fmt.Sprintf("unknown strategy kind %q", config.Kind))
	}
}

func createAgent(config metrics.AgentConfig) *searcher.Agent {
	options := []searcher.Option{searcher.WithDepth(config.Depth)}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	return searcher.NewAgent(options...)
}
