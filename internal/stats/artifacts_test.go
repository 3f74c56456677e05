package stats

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"creatures/internal/model"
)

func TestWriteRunArtifacts(t *testing.T) {
	base := t.TempDir()
	artifacts := RunArtifacts{
		Config:         RunConfig{RunID: "run-1", Parts: 2, Ticks: 3, Seed: 7},
		DistanceByTick: []float64{0.5, 1, 1.25},
		FinalFitness:   1.25,
		Brain: model.BrainRecord{
			ID:     "run-1",
			Layers: []model.LayerRecord{{Neurons: []string{"a"}}, {Neurons: []string{"b"}}},
		},
		Parts: []PartSnapshot{{Radius: 4, Color: "#FF0000", FrictionAir: 0.3}},
	}

	runDir, err := WriteRunArtifacts(base, artifacts)
	if err != nil {
		t.Fatalf("write run artifacts: %v", err)
	}
	if runDir != filepath.Join(base, "run-1") {
		t.Fatalf("unexpected run dir: %s", runDir)
	}
	for _, name := range []string{"config.json", "fitness_history.json", "brain.json", "parts.json"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	cfg, ok, err := ReadRunConfig(base, "run-1")
	if err != nil || !ok {
		t.Fatalf("read run config: ok=%t err=%v", ok, err)
	}
	if cfg != artifacts.Config {
		t.Fatalf("unexpected run config: %+v", cfg)
	}

	history, ok, err := ReadFitnessHistory(base, "run-1")
	if err != nil || !ok {
		t.Fatalf("read fitness history: ok=%t err=%v", ok, err)
	}
	if !reflect.DeepEqual(history.DistanceByTick, []float64{0.5, 1, 1.25}) || history.FinalFitness != 1.25 {
		t.Fatalf("unexpected fitness history: %+v", history)
	}
}

func TestWriteRunArtifactsRequiresRunID(t *testing.T) {
	if _, err := WriteRunArtifacts(t.TempDir(), RunArtifacts{}); err == nil {
		t.Fatal("expected missing run id error")
	}
}

func TestReadMissingRun(t *testing.T) {
	_, ok, err := ReadRunConfig(t.TempDir(), "missing")
	if err != nil {
		t.Fatalf("read missing run: %v", err)
	}
	if ok {
		t.Fatal("expected missing run to be reported as not found")
	}
}

func runIDs(entries []RunIndexEntry) []string {
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.RunID
	}
	return ids
}

func TestRunIndexOrdering(t *testing.T) {
	cases := []struct {
		name    string
		entries []RunIndexEntry
		want    []string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    []string{},
		},
		{
			name: "newest first",
			entries: []RunIndexEntry{
				{RunID: "a", CreatedAtUTC: "2024-01-01T00:00:00Z"},
				{RunID: "c", CreatedAtUTC: "2024-01-03T00:00:00Z"},
				{RunID: "b", CreatedAtUTC: "2024-01-02T00:00:00Z"},
			},
			want: []string{"c", "b", "a"},
		},
		{
			name: "equal timestamps prefer later entries",
			entries: []RunIndexEntry{
				{RunID: "a", CreatedAtUTC: "2024-01-01T00:00:00Z"},
				{RunID: "b", CreatedAtUTC: "2024-01-01T00:00:00Z"},
				{RunID: "c", CreatedAtUTC: "2024-01-01T00:00:00Z"},
				{RunID: "d", CreatedAtUTC: "2024-01-01T00:00:00Z"},
			},
			want: []string{"d", "c", "b", "a"},
		},
		{
			name: "mixed fractional precision",
			entries: []RunIndexEntry{
				{RunID: "older", CreatedAtUTC: "2024-01-01T00:00:05.1Z"},
				{RunID: "newer", CreatedAtUTC: "2024-01-01T00:00:05.12Z"},
				{RunID: "whole", CreatedAtUTC: "2024-01-01T00:00:05Z"},
			},
			want: []string{"newer", "older", "whole"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := t.TempDir()
			for _, entry := range tc.entries {
				if err := AppendRunIndex(base, entry); err != nil {
					t.Fatalf("append %s: %v", entry.RunID, err)
				}
			}

			entries, err := ListRunIndex(base)
			if err != nil {
				t.Fatalf("list run index: %v", err)
			}
			if got := runIDs(entries); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected order: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestAppendRunIndexReplacesAndKeepsAppendOrder(t *testing.T) {
	base := t.TempDir()
	for _, id := range []string{"a", "b", "c"} {
		if err := AppendRunIndex(base, RunIndexEntry{RunID: id, CreatedAtUTC: "2024-01-01T00:00:00Z"}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	if err := AppendRunIndex(base, RunIndexEntry{RunID: "a", CreatedAtUTC: "2024-01-01T00:00:00Z", FinalFitness: 3}); err != nil {
		t.Fatalf("replace a: %v", err)
	}

	raw, err := readRunIndex(base)
	if err != nil {
		t.Fatalf("read run index: %v", err)
	}
	if got := runIDs(raw); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected append order on disk, got %v", got)
	}
	if raw[0].FinalFitness != 3 {
		t.Fatalf("expected replaced entry, got %+v", raw[0])
	}

	entries, err := ListRunIndex(base)
	if err != nil {
		t.Fatalf("list run index: %v", err)
	}
	if got := runIDs(entries); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Fatalf("unexpected order: %v", got)
	}

	if err := AppendRunIndex(base, RunIndexEntry{}); err == nil {
		t.Fatal("expected missing run id error")
	}
}

func TestListRunIndexRejectsInvalidTimestamp(t *testing.T) {
	base := t.TempDir()
	if err := AppendRunIndex(base, RunIndexEntry{RunID: "bad", CreatedAtUTC: "yesterday"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := ListRunIndex(base); err == nil {
		t.Fatal("expected invalid timestamp error")
	}
}
