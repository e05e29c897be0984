package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecorder_DisabledIsNilSafe(t *testing.T) {
	r := NewRecorder("", 1)
	if r != nil {
		t.Fatal("expected nil recorder for empty path")
	}

	// All methods must tolerate the nil receiver.
	r.Observe(Sample{Tick: 1})
	if err := r.Flush(); err != nil {
		t.Errorf("expected nil-safe flush, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("expected length 0, got %d", r.Len())
	}
}

func TestRecorder_SamplingInterval(t *testing.T) {
	r := NewRecorder(filepath.Join(t.TempDir(), "out.csv"), 2)

	for tick := uint64(1); tick <= 5; tick++ {
		r.Observe(Sample{Tick: tick})
	}

	// Only ticks 2 and 4 fall on the interval.
	if r.Len() != 2 {
		t.Errorf("expected 2 samples, got %d", r.Len())
	}
}

func TestRecorder_FlushWritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "telemetry.csv")
	r := NewRecorder(path, 1)

	r.Observe(Sample{Tick: 1, SimTime: 0.016, Count: 100, MeanSpeed: 250})
	r.Observe(Sample{Tick: 2, SimTime: 0.032, Count: 100, MeanSpeed: 260})

	if err := r.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(b)

	if !strings.Contains(out, "tick") || !strings.Contains(out, "mean_speed") {
		t.Errorf("expected csv header with column names, got %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 { // header + 2 rows
		t.Errorf("expected 3 lines, got %d: %q", len(lines), out)
	}
}
