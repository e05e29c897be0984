package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Recorder accumulates samples in memory and writes them out as one CSV
// file. A run produces at most a few thousand rows, so buffering them is
// cheaper than per-row writes.
type Recorder struct {
	path    string
	every   uint64
	samples []Sample
}

// NewRecorder creates a recorder writing to path on Flush. every is the
// sampling interval in ticks (0 means every tick). Returns nil if path is
// empty (telemetry disabled); all methods are nil-safe.
func NewRecorder(path string, every uint64) *Recorder {
	if path == "" {
		return nil
	}
	if every == 0 {
		every = 1
	}
	return &Recorder{path: path, every: every}
}

// Observe records the sample if its tick falls on the sampling interval.
func (r *Recorder) Observe(s Sample) {
	if r == nil {
		return
	}
	if s.Tick%r.every != 0 {
		return
	}
	r.samples = append(r.samples, s)
}

// Flush writes all recorded samples to the CSV file, creating parent
// directories as needed.
func (r *Recorder) Flush() error {
	if r == nil || len(r.samples) == 0 {
		return nil
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating telemetry directory: %w", err)
		}
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("creating telemetry file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&r.samples, f); err != nil {
		return fmt.Errorf("writing telemetry csv: %w", err)
	}
	return nil
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.samples)
}
