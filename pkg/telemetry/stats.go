// Package telemetry computes per-tick flock statistics and exports them as CSV,
// so a run can be inspected offline without any rendering.
package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/boids"
)

// Sample holds aggregated flock statistics for one simulation tick.
type Sample struct {
	Tick    uint64  `csv:"tick"`
	SimTime float64 `csv:"sim_time"`
	Count   int     `csv:"count"`

	// Speed distribution (pixels/second)
	MeanSpeed   float64 `csv:"mean_speed"`
	MedianSpeed float64 `csv:"median_speed"`
	P90Speed    float64 `csv:"p90_speed"`

	// Polarization is the magnitude of the mean unit heading:
	// 1.0 when the whole flock flies the same way, ~0 when headings cancel.
	Polarization float64 `csv:"polarization"`

	// Centroid and RMS distance from it
	CenterX float64 `csv:"center_x"`
	CenterY float64 `csv:"center_y"`
	Spread  float64 `csv:"spread"`
}

// Collect computes a Sample over the given flock snapshot.
// An empty flock yields a zero-valued sample.
func Collect(tick uint64, simTime float64, flock []boids.Boid) Sample {
	s := Sample{Tick: tick, SimTime: simTime, Count: len(flock)}
	if len(flock) == 0 {
		return s
	}

	n := float64(len(flock))
	speeds := make([]float64, len(flock))
	var headingX, headingY float64
	var centerX, centerY float64

	for i := range flock {
		speed := flock[i].Vel.Len()
		speeds[i] = speed
		if speed > 0 {
			headingX += flock[i].Vel.X / speed
			headingY += flock[i].Vel.Y / speed
		}
		centerX += flock[i].Pos.X
		centerY += flock[i].Pos.Y
	}

	sort.Float64s(speeds)
	s.MeanSpeed = stat.Mean(speeds, nil)
	s.MedianSpeed = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	s.P90Speed = stat.Quantile(0.9, stat.Empirical, speeds, nil)
	s.Polarization = math.Hypot(headingX, headingY) / n

	s.CenterX = centerX / n
	s.CenterY = centerY / n

	var distSqSum float64
	for i := range flock {
		dx := flock[i].Pos.X - s.CenterX
		dy := flock[i].Pos.Y - s.CenterY
		distSqSum += dx*dx + dy*dy
	}
	s.Spread = math.Sqrt(distSqSum / n)

	return s
}
