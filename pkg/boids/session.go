package boids

import (
	"math/rand/v2"
	"time"

	"github.com/tochemey/goakt/v3/log"
)

// Phase is the coarse-grained session mode gating whether simulation runs.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Input is the abstracted set of control keys pressed during one tick.
type Input struct {
	Reset bool // back to setup, clears the flock
	Start bool // start from setup, or resume from pause
	Pause bool // pause while playing
}

// Session owns the flock and the phase state machine. The flock is only
// non-empty while the phase is Playing or Paused.
type Session struct {
	cfg    *Config
	bounds Bounds
	rng    *rand.Rand
	phase  Phase
	flock  []Boid
	logger log.Logger
}

// NewSession creates a session in the Setup phase. The spawn RNG is seeded
// from cfg.Seed so two sessions with the same seed and input sequence
// produce identical trajectories; a zero seed picks a time-based one.
// A nil logger discards output.
func NewSession(cfg *Config, logger log.Logger) *Session {
	if logger == nil {
		logger = log.DiscardLogger
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Session{
		cfg:    cfg,
		bounds: cfg.Bounds(),
		rng:    rand.New(rand.NewPCG(seed, seed)),
		phase:  PhaseSetup,
		logger: logger,
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase { return s.phase }

// HandleInput applies at most one phase transition for this tick and reports
// whether the resulting phase is Playing, i.e. whether the flock should be
// stepped. Reset takes priority over every other event.
func (s *Session) HandleInput(in Input) bool {
	switch {
	case in.Reset:
		if s.phase != PhaseSetup {
			s.logger.Infof("session reset: releasing %d boids", len(s.flock))
		}
		s.phase = PhaseSetup
		s.flock = nil

	case s.phase == PhaseSetup && in.Start:
		s.flock = NewFlock(s.rng, s.bounds, s.cfg)
		s.phase = PhasePlaying
		s.logger.Infof("session started: %d boids in %gx%g world",
			len(s.flock), s.bounds.Width, s.bounds.Height)

	case s.phase == PhasePlaying && in.Pause:
		s.phase = PhasePaused
		s.logger.Info("session paused")

	case s.phase == PhasePaused && in.Start:
		s.phase = PhasePlaying
		s.logger.Info("session resumed")
	}

	return s.phase == PhasePlaying
}
