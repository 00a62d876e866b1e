package engine

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLHE = `<LesHouchesEvents version="3.0">
<event>
2 1 1.0 2.0 3.0 4.0
11 -1 0 0 0 0 0.1 0.2 0.3 0.4 0.5 0.6 0.7
-11 1 1 1 0 0 1.1 1.2 1.3 1.4 1.5 1.6 1.7
<wgt id="w0">0.5</wgt>
</event>
</LesHouchesEvents>
`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleLHE), 0o644); err != nil {
		t.Fatalf("Failed to write sample: %v", err)
	}
	return path
}

func TestConvertAll(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	paths := []string{
		writeSample(t, inDir, "run01.lhe"),
		writeSample(t, inDir, "run02.lhe"),
	}

	results := ConvertAll(paths, outDir, 2)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	for _, r := range results {
		if r.Err != nil {
			t.Errorf("Job %s failed: %v", r.JobID, r.Err)
			continue
		}
		if r.Events != 1 || r.Particles != 2 {
			t.Errorf("Job %s: expected 1 event and 2 particles, got %d and %d",
				r.JobID, r.Events, r.Particles)
		}
		if len(r.Outputs) != 4 {
			t.Errorf("Job %s: expected 4 outputs, got %d", r.JobID, len(r.Outputs))
		}
		for _, out := range r.Outputs {
			if _, err := os.Stat(out); err != nil {
				t.Errorf("Missing output file %s: %v", out, err)
			}
		}
	}
}

func TestConvertAllBadFile(t *testing.T) {
	outDir := t.TempDir()
	missing := filepath.Join(t.TempDir(), "missing.lhe")

	results := ConvertAll([]string{missing}, outDir, 1)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("Expected error for missing input file")
	}
}

func TestPoolStats(t *testing.T) {
	pool := NewPool("test", 4)
	defer pool.Shutdown()

	stats := pool.GetStats()
	if stats.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", stats.Workers)
	}
	if stats.Name != "test" {
		t.Errorf("Expected name 'test', got %s", stats.Name)
	}
	if !pool.IsRunning() {
		t.Error("Expected pool to be running")
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	pool := NewPool("test", 1)
	pool.Shutdown()

	err := pool.Submit(&Job{ID: "late", Path: "x.lhe"})
	if err != ErrPoolClosed {
		t.Errorf("Expected ErrPoolClosed, got %v", err)
	}
}
