package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Setup describes one benchmark run.
type Setup struct {
	RunID     string    `json:"run_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Config    any       `json:"config"`
}

func NewSetup(config any, start time.Time) Setup {
	return Setup{
		RunID:     uuid.NewString(),
		StartTime: start.UTC(),
		EndTime:   time.Now().UTC(),
		Config:    config,
	}
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, timestamp)
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

func (w *Writer) WriteSetup(setup Setup) error {
	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.json"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteTrials(records []TrialRecord) error {
	header := []string{"trial", "algorithm", "board", "outcome", "reason", "expanded", "max_frontier", "solution_length", "cost", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Trial),
			r.Algorithm,
			r.Board,
			r.Outcome,
			r.Reason,
			strconv.Itoa(r.Expanded),
			strconv.Itoa(r.MaxFrontier),
			strconv.Itoa(r.SolutionLength),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
			r.Duration.String(),
		})
	}
	return w.writeCSV("trials.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"algorithm", "trials", "solved", "mean_expanded", "mean_max_frontier", "mean_solution_length", "mean_duration"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Algorithm,
			strconv.Itoa(s.Trials),
			strconv.Itoa(s.Solved),
			strconv.FormatFloat(s.MeanExpanded, 'f', 2, 64),
			strconv.FormatFloat(s.MeanMaxFrontier, 'f', 2, 64),
			strconv.FormatFloat(s.MeanSolutionLength, 'f', 2, 64),
			s.MeanDuration.String(),
		})
	}
	return w.writeCSV("summaries.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
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
