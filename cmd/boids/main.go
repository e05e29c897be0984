package main

import (
	"flag"
	"fmt"
	"image/color"
	stdlog "log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/boids"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/telemetry"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/ui"
)

// whiteImage is the 1-pixel source for tinted triangle rendering.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	cfg      *boids.Config
	world    *boids.World
	recorder *telemetry.Recorder

	panel *ui.Panel
	// Widget references for easy access
	sliderVisualRange *ui.Slider
	sliderMinDistance *ui.Slider
	sliderSeparation  *ui.Slider
	sliderCohesion    *ui.Slider
	sliderAlignment   *ui.Slider
	sliderSpeedLimit  *ui.Slider
	sliderTurnFactor  *ui.Slider

	lastUpdate time.Time
}

func NewGame(cfg *boids.Config, logger log.Logger, recorder *telemetry.Recorder) *Game {
	panel := ui.NewPanel("Tuning", 10, 10, 240)

	g := &Game{
		cfg:               cfg,
		world:             boids.NewWorld(cfg, logger),
		recorder:          recorder,
		panel:             panel,
		sliderVisualRange: panel.AddSlider("Visual Range", 8, 150, cfg.VisualRange),
		sliderMinDistance: panel.AddSlider("Min Distance", 4, 50, cfg.MinDistance),
		sliderSeparation:  panel.AddSlider("Separation", 0.01, 2.0, cfg.SeparationFactor),
		sliderCohesion:    panel.AddSlider("Cohesion", 0.001, 0.2, cfg.CohesionFactor),
		sliderAlignment:   panel.AddSlider("Alignment", 0.01, 0.5, cfg.AlignmentFactor),
		sliderSpeedLimit:  panel.AddSlider("Speed Limit", 50, 800, cfg.SpeedLimit),
		sliderTurnFactor:  panel.AddSlider("Turn Factor", 1, 32, cfg.TurnFactor),
		lastUpdate:        time.Now(),
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	// 1. UI tuning; the steering engine reads the same Config.
	g.panel.Update()
	g.cfg.VisualRange = g.sliderVisualRange.Value
	g.cfg.MinDistance = g.sliderMinDistance.Value
	g.cfg.SeparationFactor = g.sliderSeparation.Value
	g.cfg.CohesionFactor = g.sliderCohesion.Value
	g.cfg.AlignmentFactor = g.sliderAlignment.Value
	g.cfg.SpeedLimit = g.sliderSpeedLimit.Value
	g.cfg.TurnFactor = g.sliderTurnFactor.Value

	// 2. Map raw keys to the abstract control set.
	in := boids.Input{
		Reset: ebiten.IsKeyPressed(ebiten.KeyR),
		Start: ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause: ebiten.IsKeyPressed(ebiten.KeyP),
	}

	mx, my := ebiten.CursorPosition()
	cursor := geometry.Vector2D{X: float64(mx), Y: float64(my)}

	// 3. Advance the simulation by one tick.
	g.world.Update(dt, cursor, in)

	if g.world.Phase() == boids.PhasePlaying {
		g.recorder.Observe(telemetry.Collect(g.world.Tick(), g.world.SimTime(), g.world.Snapshot()))
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 38, G: 51, B: 56, A: 255})

	if g.world.Phase() == boids.PhaseSetup {
		msg := "play : <space>\npause : <p>\nreset : <r>"
		ebitenutil.DebugPrintAt(screen,
			msg,
			int(g.cfg.WorldWidth/2)-60,
			int(g.cfg.WorldHeight/2)-24)
		return
	}

	for _, b := range g.world.Snapshot() {
		drawBoid(screen, b)
	}

	// Highlight the cursor so the repulsion radius is visible.
	mx, my := ebiten.CursorPosition()
	vector.FillCircle(screen, float32(mx), float32(my), 10,
		color.RGBA{R: 255, G: 255, B: 255, A: 128}, true)

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nphase: %s boids: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.world.Phase(), g.world.Count())
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-170, 10)
}

// drawBoid renders one boid as a triangle pointing along its velocity,
// tinted with the boid's own color.
func drawBoid(screen *ebiten.Image, b boids.Boid) {
	angle := b.Vel.Angle()

	tipX := b.Pos.X + math.Cos(angle)*6
	tipY := b.Pos.Y + math.Sin(angle)*6
	rightX := b.Pos.X + math.Cos(angle+2.5)*5
	rightY := b.Pos.Y + math.Sin(angle+2.5)*5
	leftX := b.Pos.X + math.Cos(angle-2.5)*5
	leftY := b.Pos.Y + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: b.Tint.R, ColorG: b.Tint.G, ColorB: b.Tint.B, ColorA: b.Tint.A,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: b.Tint.R, ColorG: b.Tint.G, ColorB: b.Tint.B, ColorA: b.Tint.A,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: b.Tint.R, ColorG: b.Tint.G, ColorB: b.Tint.B, ColorA: b.Tint.A,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

func main() {
	configFile := flag.String("config", "", "path to JSON config file (defaults used when empty)")
	schemaFile := flag.String("schema", "configs/boids.schema.json", "path to JSON schema for config validation")
	telemetryFile := flag.String("telemetry", "", "path to CSV telemetry output (disabled when empty)")
	sampleEvery := flag.Uint64("sample", 30, "telemetry sampling interval in ticks")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg := boids.DefaultConfig()
	if *configFile != "" {
		loaded, err := boids.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			stdlog.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stdout)

	recorder := telemetry.NewRecorder(*telemetryFile, *sampleEvery)

	game := NewGame(cfg, logger, recorder)

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	if err := ebiten.RunGame(game); err != nil {
		stdlog.Fatal(err)
	}

	if err := recorder.Flush(); err != nil {
		stdlog.Fatalf("flushing telemetry: %v", err)
	}
	if n := recorder.Len(); n > 0 {
		logger.Infof("wrote %d telemetry samples to %s", n, *telemetryFile)
	}
}
