package experiments

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/player"
	"mancala/searcher"

	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	t.Run("builds every kind", func(t *testing.T) {
		require.IsType(t, &player.Random{}, NewStrategy(metrics.AgentConfig{Kind: RandomKind}))
		require.IsType(t, &player.Random{}, NewStrategy(metrics.AgentConfig{Kind: RandomKind, Seed: 5}))
		require.IsType(t, engine.StrategyFunc(nil), NewStrategy(metrics.AgentConfig{Kind: FirstKind}))
		require.IsType(t, engine.StrategyFunc(nil), NewStrategy(metrics.AgentConfig{Kind: LastKind}))
		require.IsType(t, &searcher.Agent{}, NewStrategy(metrics.AgentConfig{Kind: AIKind, Depth: 2, Duration: time.Millisecond}))
	})

	t.Run("panics on an unknown kind", func(t *testing.T) {
		require.Panics(t, func() {
			NewStrategy(metrics.AgentConfig{Kind: "oracle"})
		})
	})
}

func TestRunExperiment(t *testing.T) {
	t.Run("stores one summary per match up", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir(), "smoke")
		require.NoError(t, err)

		first := metrics.AgentConfig{ID: 1, Kind: FirstKind}
		last := metrics.AgentConfig{ID: 2, Kind: LastKind}
		random := metrics.AgentConfig{ID: 3, Kind: RandomKind, Seed: 9}
		matchUps := [][2]metrics.AgentConfig{{first, last}, {random, first}}

		records, err := RunExperiment(context.Background(), "smoke", []metrics.AgentConfig{first, last, random}, matchUps, 12, writer)

		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, 1, records[0].Agent1)
		require.Equal(t, 2, records[0].Agent2)
		require.Equal(t, 12, records[0].Games)
		require.Equal(t, 12, records[0].FirstWins, "First should always beat last")
		require.Equal(t, 12, records[1].Games)
		require.FileExists(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.FileExists(t, filepath.Join(writer.Dir(), "summary.csv"))
	})

	t.Run("runs without a writer", func(t *testing.T) {
		records, err := RunDepthExperiment(context.Background(), 2, nil)

		require.NoError(t, err)
		require.Len(t, records, len(depthConfigs))
		for _, record := range records {
			require.Equal(t, 2, record.Games)
		}
	})

	t.Run("fails on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunBudgetExperiment(ctx, 2, nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}
