package boids

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

func TestWorld_SnapshotIsolation(t *testing.T) {
	// Boid A is processed before boid B in the same tick. B's alignment must
	// read A's pre-tick velocity, never A's freshly updated one.
	cfg := testConfig()
	cfg.SeparationFactor = 0
	cfg.CohesionFactor = 0
	cfg.AlignmentFactor = 1.0 // full velocity copy, makes the read obvious
	cfg.TurnFactor = 0
	cfg.CursorAvoidFactor = 0

	w := NewWorld(cfg, nil)
	w.session.phase = PhasePlaying
	w.session.flock = []Boid{
		{Pos: geometry.Vector2D{X: 600, Y: 360}, Vel: geometry.Vector2D{X: 100, Y: 0}},
		{Pos: geometry.Vector2D{X: 610, Y: 360}, Vel: geometry.Vector2D{X: 0, Y: 100}},
	}

	w.Update(0, farCursor, Input{})

	// With full alignment each boid must end up with the OTHER's pre-tick
	// velocity. If B had seen A's post-update state, B would get (0,100)
	// back instead.
	if !w.session.flock[0].Vel.Eq(geometry.Vector2D{X: 0, Y: 100}) {
		t.Errorf("boid A: expected (0,100), got %s", w.session.flock[0].Vel)
	}
	if !w.session.flock[1].Vel.Eq(geometry.Vector2D{X: 100, Y: 0}) {
		t.Errorf("boid B: expected pre-tick (100,0), got %s", w.session.flock[1].Vel)
	}
}

func TestWorld_IntegratesElapsedSeconds(t *testing.T) {
	// Position advances by Vel * dt with dt in true seconds.
	cfg := testConfig()
	cfg.TurnFactor = 0
	cfg.CursorAvoidFactor = 0

	w := NewWorld(cfg, nil)
	w.session.phase = PhasePlaying
	w.session.flock = []Boid{
		{Pos: geometry.Vector2D{X: 600, Y: 360}, Vel: geometry.Vector2D{X: 100, Y: -40}},
	}

	w.Update(0.5, farCursor, Input{})

	got := w.session.flock[0].Pos
	if !got.Eq(geometry.Vector2D{X: 650, Y: 340}) {
		t.Errorf("expected position (650,340), got %s", got)
	}
	if w.Tick() != 1 {
		t.Errorf("expected tick counter 1, got %d", w.Tick())
	}
	if w.SimTime() != 0.5 {
		t.Errorf("expected sim time 0.5, got %f", w.SimTime())
	}
}

func TestWorld_NoStepOutsidePlaying(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, nil)

	// Setup: nothing to step.
	w.Update(0.016, farCursor, Input{})
	if w.Tick() != 0 {
		t.Errorf("expected no tick in setup, got %d", w.Tick())
	}

	// Paused: the flock must stay frozen.
	w.Update(0.016, farCursor, Input{Start: true})
	w.Update(0.016, farCursor, Input{Pause: true})
	frozen := w.Snapshot()

	for i := 0; i < 5; i++ {
		w.Update(0.016, farCursor, Input{})
	}
	after := w.Snapshot()
	for i := range frozen {
		if frozen[i] != after[i] {
			t.Fatalf("boid %d moved while paused", i)
		}
	}
}

func TestWorld_SpeedBoundAfterTick(t *testing.T) {
	// Freshly spawned boids live in the central half of the world, so after
	// one tick every speed obeys the limiter's bound.
	cfg := testConfig()
	w := NewWorld(cfg, nil)

	w.Update(0.016, farCursor, Input{Start: true})

	for i, b := range w.Snapshot() {
		if speed := b.Vel.Len(); speed > cfg.SpeedLimit+1e-9 {
			t.Errorf("boid %d exceeds speed limit: %f", i, speed)
		}
	}
}

func TestWorld_DeterministicTrajectories(t *testing.T) {
	// Same seed, same input sequence: bit-identical flocks.
	a := NewWorld(testConfig(), nil)
	b := NewWorld(testConfig(), nil)
	cursor := geometry.Vector2D{X: 400, Y: 400}

	a.Update(0.016, cursor, Input{Start: true})
	b.Update(0.016, cursor, Input{Start: true})
	for i := 0; i < 60; i++ {
		a.Update(0.016, cursor, Input{})
		b.Update(0.016, cursor, Input{})
	}

	flockA, flockB := a.Snapshot(), b.Snapshot()
	if len(flockA) != len(flockB) {
		t.Fatalf("flock sizes differ: %d vs %d", len(flockA), len(flockB))
	}
	for i := range flockA {
		if flockA[i] != flockB[i] {
			t.Fatalf("boid %d diverged between identically seeded runs", i)
		}
	}
}

func TestWorld_SnapshotDoesNotAliasFlock(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg, nil)
	w.Update(0.016, farCursor, Input{Start: true})

	snap := w.Snapshot()
	snap[0].Pos.X = -1

	if w.session.flock[0].Pos.X == -1 {
		t.Error("mutating a snapshot must not touch the live flock")
	}
}

func BenchmarkWorld_Update(b *testing.B) {
	cfg := testConfig()
	w := NewWorld(cfg, nil)
	w.Update(0.016, farCursor, Input{Start: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Update(0.016, farCursor, Input{})
	}
}
