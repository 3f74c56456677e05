// Package stats writes the on-disk record of creature simulation runs.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"creatures/internal/model"
)

const runIndexFile = "run_index.json"

type RunConfig struct {
	RunID             string  `json:"run_id"`
	Parts             int     `json:"parts"`
	Ticks             int     `json:"ticks"`
	Seed              int64   `json:"seed"`
	RandomConnections int     `json:"random_connections"`
	Activation        string  `json:"activation"`
	WeightMin         float64 `json:"weight_min"`
	WeightMax         float64 `json:"weight_max"`
}

type PartSnapshot struct {
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	FrictionAir float64 `json:"friction_air"`
	Speed       float64 `json:"speed"`
}

type RunArtifacts struct {
	Config         RunConfig
	DistanceByTick []float64
	FinalFitness   float64
	Brain          model.BrainRecord
	Parts          []PartSnapshot
}

type FitnessHistory struct {
	DistanceByTick []float64 `json:"distance_by_tick"`
	FinalFitness   float64   `json:"final_fitness"`
}

type RunIndexEntry struct {
	RunID        string  `json:"run_id"`
	Parts        int     `json:"parts"`
	Ticks        int     `json:"ticks"`
	Seed         int64   `json:"seed"`
	FinalFitness float64 `json:"final_fitness"`
	CreatedAtUTC string  `json:"created_at_utc"`
}

func WriteRunArtifacts(baseDir string, artifacts RunArtifacts) (string, error) {
	if artifacts.Config.RunID == "" {
		return "", fmt.Errorf("run id is required")
	}

	runDir := filepath.Join(baseDir, artifacts.Config.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "config.json"), artifacts.Config); err != nil {
		return "", err
	}
	history := FitnessHistory{DistanceByTick: artifacts.DistanceByTick, FinalFitness: artifacts.FinalFitness}
	if err := writeJSON(filepath.Join(runDir, "fitness_history.json"), history); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "brain.json"), artifacts.Brain); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "parts.json"), artifacts.Parts); err != nil {
		return "", err
	}

	return runDir, nil
}

func AppendRunIndex(baseDir string, entry RunIndexEntry) error {
	if entry.RunID == "" {
		return fmt.Errorf("run id is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return err
	}

	index, err := readRunIndex(baseDir)
	if err != nil {
		return err
	}

	for i := range index {
		if index[i].RunID == entry.RunID {
			index[i] = entry
			return writeJSON(filepath.Join(baseDir, runIndexFile), index)
		}
	}

	index = append(index, entry)
	return writeJSON(filepath.Join(baseDir, runIndexFile), index)
}

// ListRunIndex returns the indexed runs, newest first. Runs created at the
// same instant are listed in reverse append order.
func ListRunIndex(baseDir string) ([]RunIndexEntry, error) {
	entries, err := readRunIndex(baseDir)
	if err != nil {
		return nil, err
	}

	type indexedEntry struct {
		entry     RunIndexEntry
		createdAt time.Time
		idx       int
	}
	indexed := make([]indexedEntry, len(entries))
	for i := range entries {
		createdAt, err := time.Parse(time.RFC3339Nano, entries[i].CreatedAtUTC)
		if err != nil {
			return nil, fmt.Errorf("run %s: invalid created_at_utc %q: %w", entries[i].RunID, entries[i].CreatedAtUTC, err)
		}
		indexed[i] = indexedEntry{entry: entries[i], createdAt: createdAt, idx: i}
	}
	sort.Slice(indexed, func(i, j int) bool {
		if indexed[i].createdAt.Equal(indexed[j].createdAt) {
			return indexed[i].idx > indexed[j].idx
		}
		return indexed[i].createdAt.After(indexed[j].createdAt)
	})

	sorted := make([]RunIndexEntry, 0, len(indexed))
	for _, item := range indexed {
		sorted = append(sorted, item.entry)
	}
	return sorted, nil
}

// readRunIndex returns the index entries in append order.
func readRunIndex(baseDir string) ([]RunIndexEntry, error) {
	entries := []RunIndexEntry{}
	if _, err := readJSON(filepath.Join(baseDir, runIndexFile), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func ReadRunConfig(baseDir, runID string) (RunConfig, bool, error) {
	var cfg RunConfig
	ok, err := readJSON(filepath.Join(baseDir, runID, "config.json"), &cfg)
	return cfg, ok, err
}

func ReadFitnessHistory(baseDir, runID string) (FitnessHistory, bool, error) {
	var history FitnessHistory
	ok, err := readJSON(filepath.Join(baseDir, runID, "fitness_history.json"), &history)
	return history, ok, err
}

func readJSON(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
