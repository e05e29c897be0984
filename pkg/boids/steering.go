package boids

import "github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"

// Steering applies the flocking rules to one boid per tick. It only ever
// writes velocity; the caller integrates position afterwards.
type Steering struct {
	cfg    *Config
	bounds Bounds
}

// NewSteering creates a steering engine over a shared config and fixed
// world bounds.
func NewSteering(cfg *Config, bounds Bounds) *Steering {
	return &Steering{cfg: cfg, bounds: bounds}
}

// Step runs the five rules in fixed order. others must be the pre-tick
// snapshot of every boid except b itself.
func (s *Steering) Step(b *Boid, others []Boid, cursor geometry.Vector2D) {
	s.avoidOthers(b, others)
	s.flyTowardsCenter(b, others)
	s.matchVelocity(b, others)
	s.limitSpeed(b)
	s.keepWithinBounds(b, cursor)
}

// avoidOthers pushes away from every neighbor closer than MinDistance.
// The dist > 0 guard skips exactly co-located boids.
func (s *Steering) avoidOthers(b *Boid, others []Boid) {
	var move geometry.Vector2D
	minSq := s.cfg.MinDistance * s.cfg.MinDistance

	for i := range others {
		distSq := b.Pos.DistanceSquaredTo(others[i].Pos)
		if distSq < minSq && distSq > 0 {
			move = move.Add(b.Pos.Sub(others[i].Pos))
		}
	}

	b.Vel = b.Vel.Add(move.Mul(s.cfg.SeparationFactor))
}

// flyTowardsCenter steers towards the centroid of all neighbors inside
// VisualRange. No-op when no neighbor is in range.
func (s *Steering) flyTowardsCenter(b *Boid, others []Boid) {
	var center geometry.Vector2D
	neighbors := 0.0
	visualSq := s.cfg.VisualRange * s.cfg.VisualRange

	for i := range others {
		if b.Pos.DistanceSquaredTo(others[i].Pos) < visualSq {
			center = center.Add(others[i].Pos)
			neighbors++
		}
	}

	if neighbors > 0 {
		center = center.Mul(1 / neighbors)
		b.Vel = b.Vel.Add(center.Sub(b.Pos).Mul(s.cfg.CohesionFactor))
	}
}

// matchVelocity nudges velocity towards the average of all neighbors inside
// VisualRange. No-op when no neighbor is in range.
func (s *Steering) matchVelocity(b *Boid, others []Boid) {
	var avg geometry.Vector2D
	neighbors := 0.0
	visualSq := s.cfg.VisualRange * s.cfg.VisualRange

	for i := range others {
		if b.Pos.DistanceSquaredTo(others[i].Pos) < visualSq {
			avg = avg.Add(others[i].Vel)
			neighbors++
		}
	}

	if neighbors > 0 {
		avg = avg.Mul(1 / neighbors)
		b.Vel = b.Vel.Add(avg.Sub(b.Vel).Mul(s.cfg.AlignmentFactor))
	}
}

// limitSpeed rescales velocity to SpeedLimit when it exceeds it,
// preserving direction.
func (s *Steering) limitSpeed(b *Boid) {
	speed := b.Vel.Len()
	if speed > s.cfg.SpeedLimit {
		b.Vel = b.Vel.Mul(s.cfg.SpeedLimit / speed)
	}
}

// keepWithinBounds turns the boid back towards the interior near an edge and
// repels it from the cursor.
//
// Both edge tests on an axis fire for an interior boid and their nudges
// cancel; the toggle then ends up true and no damping happens. Inside the
// edge buffer exactly one test fires, leaving a net TurnFactor nudge towards
// the interior plus BoundsDamping on that axis' velocity. Evaluated
// independently per axis.
func (s *Steering) keepWithinBounds(b *Boid, cursor geometry.Vector2D) {
	xBounded, yBounded := true, true

	if b.Pos.X < s.bounds.Width-s.cfg.EdgeBuffer {
		b.Vel.X += s.cfg.TurnFactor
		xBounded = !xBounded
	}
	if b.Pos.X > s.cfg.EdgeBuffer {
		b.Vel.X -= s.cfg.TurnFactor
		xBounded = !xBounded
	}
	if b.Pos.Y < s.bounds.Height-s.cfg.EdgeBuffer {
		b.Vel.Y += s.cfg.TurnFactor
		yBounded = !yBounded
	}
	if b.Pos.Y > s.cfg.EdgeBuffer {
		b.Vel.Y -= s.cfg.TurnFactor
		yBounded = !yBounded
	}

	if !xBounded {
		b.Vel.X *= s.cfg.BoundsDamping
	}
	if !yBounded {
		b.Vel.Y *= s.cfg.BoundsDamping
	}

	if b.Pos.DistanceTo(cursor) < s.cfg.CursorAvoidRadius {
		b.Vel = b.Vel.Add(b.Pos.Sub(cursor).Mul(s.cfg.CursorAvoidFactor))
	}
}
