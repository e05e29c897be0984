package boids

import (
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

// World is the per-tick driver. Each Update it runs the input stage (phase
// transition), and only when the session ends up Playing does it advance the
// flock: every boid steers against a snapshot of the flock taken at the
// start of the tick, then integrates position from its refreshed velocity.
type World struct {
	cfg      *Config
	bounds   Bounds
	session  *Session
	steering *Steering

	// Reusable buffers; reset to length 0 each tick, keeping capacity.
	snapshot []Boid
	others   []Boid

	tick    uint64
	simTime float64
}

// NewWorld creates a world in the Setup phase. A nil logger discards output.
func NewWorld(cfg *Config, logger log.Logger) *World {
	bounds := cfg.Bounds()
	return &World{
		cfg:      cfg,
		bounds:   bounds,
		session:  NewSession(cfg, logger),
		steering: NewSteering(cfg, bounds),
	}
}

// Update advances the simulation by one tick. dt is the elapsed time in
// seconds since the previous tick, cursor the pointer position in world
// coordinates, in the pressed control keys. When the session is not Playing
// the flock is left untouched; that is a control-flow signal, not an error.
func (w *World) Update(dt float64, cursor geometry.Vector2D, in Input) {
	if !w.session.HandleInput(in) {
		return
	}
	w.stepFlock(dt, cursor)
}

// stepFlock runs the steering engine once per boid and integrates positions.
// All neighbor reads go through the pre-tick snapshot so a boid never
// observes another boid's already-updated state from the same tick.
func (w *World) stepFlock(dt float64, cursor geometry.Vector2D) {
	flock := w.session.flock
	w.snapshot = append(w.snapshot[:0], flock...)

	for i := range flock {
		w.others = append(w.others[:0], w.snapshot[:i]...)
		w.others = append(w.others, w.snapshot[i+1:]...)

		w.steering.Step(&flock[i], w.others, cursor)
		flock[i].Pos = flock[i].Pos.Add(flock[i].Vel.Mul(dt))
	}

	w.tick++
	w.simTime += dt
}

// Phase returns the current session phase.
func (w *World) Phase() Phase { return w.session.Phase() }

// Tick returns the number of simulation steps run so far.
func (w *World) Tick() uint64 { return w.tick }

// SimTime returns the accumulated simulated seconds.
func (w *World) SimTime() float64 { return w.simTime }

// Count returns the current flock size.
func (w *World) Count() int { return len(w.session.flock) }

// Snapshot returns a copy of the flock for the rendering collaborator.
// The copy never aliases the live flock, so drawing may overlap with the
// preparation of the next tick.
func (w *World) Snapshot() []Boid {
	out := make([]Boid, len(w.session.flock))
	copy(out, w.session.flock)
	return out
}
