package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one strategy taking part in an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // random, first, last or ai
	Depth      int
	Duration   time.Duration
	Goroutines int
	Seed       uint64
}

// SummaryRecord aggregates one match-up. Individual games are not recorded.
type SummaryRecord struct {
	Agent1  int // AgentConfig.ID
	Agent2  int // AgentConfig.ID
	Elapsed time.Duration
	SimulationMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> for the experiment output.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "duration", "goroutines", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.Itoa(config.Goroutines),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteSummaries(records []SummaryRecord) error {
	header := []string{"agent1", "agent2", "games", "first_wins", "win_rate", "elapsed", "per_game", "avg_plies", "min_plies", "max_plies"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		perGame := time.Duration(0)
		if record.Games > 0 {
			perGame = record.Elapsed / time.Duration(record.Games)
		}
		rows = append(rows, []string{
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Games),
			strconv.Itoa(record.FirstWins),
			strconv.FormatFloat(record.WinRate(), 'f', 4, 64),
			record.Elapsed.String(),
			perGame.String(),
			strconv.FormatFloat(record.AveragePlies(), 'f', 2, 64),
			strconv.Itoa(record.MinPlies),
			strconv.Itoa(record.MaxPlies),
		})
	}
	return w.write("summary.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
