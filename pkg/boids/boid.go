package boids

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// Bounds is the world rectangle shared read-only by all boids during a tick.
type Bounds struct {
	Width  float64
	Height float64
}

// Color is the rendering-only tint of a boid. The steering engine never
// reads it.
type Color struct {
	R, G, B, A float32
}

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds and related group motion;
// "boid" is short for "bird-oid object". https://en.wikipedia.org/wiki/Boids
// Fields are exported so the renderer can read them.
type Boid struct {
	Pos  geometry.Vector2D
	Vel  geometry.Vector2D
	Tint Color
}

// DistanceTo gives the cartesian distance between this boid and the other.
func (b *Boid) DistanceTo(other *Boid) float64 {
	return b.Pos.DistanceTo(other.Pos)
}

// DistanceSquaredTo gives the squared distance between this boid and the other.
func (b *Boid) DistanceSquaredTo(other *Boid) float64 {
	return b.Pos.DistanceSquaredTo(other.Pos)
}

// NewBoid spawns one boid inside the central half of the world on each axis,
// with velocity components uniform in [-SpeedLimit/2, SpeedLimit/2] and a
// bright half-transparent tint.
func NewBoid(rng *rand.Rand, bounds Bounds, cfg *Config) Boid {
	return Boid{
		Pos: geometry.Vector2D{
			X: rng.Float64()*bounds.Width/2 + bounds.Width/4,
			Y: rng.Float64()*bounds.Height/2 + bounds.Height/4,
		},
		Vel: geometry.Vector2D{
			X: (rng.Float64() - 0.5) * cfg.SpeedLimit,
			Y: (rng.Float64() - 0.5) * cfg.SpeedLimit,
		},
		Tint: Color{
			R: (rng.Float32()*128 + 128) / 255,
			G: (rng.Float32()*128 + 128) / 255,
			B: (rng.Float32()*128 + 128) / 255,
			A: 0.5,
		},
	}
}

// NewFlock spawns cfg.AgentCount boids in one batch.
func NewFlock(rng *rand.Rand, bounds Bounds, cfg *Config) []Boid {
	flock := make([]Boid, cfg.AgentCount)
	for i := range flock {
		flock[i] = NewBoid(rng, bounds, cfg)
	}
	return flock
}
