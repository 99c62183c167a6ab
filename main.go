package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/scamp/chatfeed"
	"github.com/pthm-cable/scamp/config"
	"github.com/pthm-cable/scamp/render"
	"github.com/pthm-cable/scamp/sim"
	"github.com/pthm-cable/scamp/ui"
)

// doubleClickSec is the maximum gap between clicks for a super jump.
const doubleClickSec = 0.3

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	chatListen := flag.String("chat-listen", "", "Chatfeed websocket listen address (empty = disabled)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	s, err := sim.New(cfg, sim.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	})
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	if *chatListen != "" {
		feed := chatfeed.New(*chatListen, s.Enqueue)
		feed.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			feed.Shutdown(ctx)
		}()
	}

	if *headless {
		runHeadless(cfg, s, *maxTicks, rngSeed)
		return
	}
	runWindowed(cfg, s, *maxTicks)
}

// runHeadless drives the simulation on simulated time, as fast as the
// CPU allows.
func runHeadless(cfg *config.Config, s *sim.Simulation, maxTicks int, seed int64) {
	slog.Info("starting headless simulation",
		"seed", seed,
		"max_ticks", maxTicks,
	)

	now := 0.0
	for {
		s.Step(now)
		now += cfg.Physics.DT

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			return
		}
	}
}

// mousePointer feeds the raylib mouse position to the simulation.
// Reports no data while the window is unfocused.
type mousePointer struct{}

func (mousePointer) Pointer() (float32, float32, bool) {
	if !rl.IsWindowFocused() {
		return 0, 0, false
	}
	pos := rl.GetMousePosition()
	return pos.X, pos.Y, true
}

func runWindowed(cfg *config.Config, s *sim.Simulation, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Scamp")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s.SetPointerSource(mousePointer{})
	renderer := render.New(cfg)
	panel := ui.NewPanel(10, 10, 220)

	lastClick := -1.0
	dragging := false

	for !rl.WindowShouldClose() {
		now := rl.GetTime()
		mouse := rl.GetMousePosition()

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			if now-lastClick < doubleClickSec {
				s.SuperJump()
			} else if s.StartDrag(mouse.X, mouse.Y, now) {
				dragging = true
			}
			lastClick = now
		}
		if dragging {
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				s.DragMove(mouse.X, mouse.Y, now)
			} else {
				s.EndDrag()
				dragging = false
			}
		}

		if rl.IsKeyPressed(rl.KeyOne) {
			s.SetMode(sim.ModeIdle)
		}
		if rl.IsKeyPressed(rl.KeyTwo) {
			s.SetMode(sim.ModeChase)
		}
		if rl.IsKeyPressed(rl.KeyThree) {
			s.SetMode(sim.ModeAttack)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			s.SetPaused(!s.Paused())
		}
		if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
			s.AdjustScale(1)
		}
		if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
			s.AdjustScale(-1)
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			panel.Toggle()
		}

		s.Step(now)
		snap := s.Snapshot()

		rl.BeginDrawing()
		renderer.Draw(snap)
		actions := panel.Draw(ui.State{
			Mode:        snap.Pet.Mode,
			Paused:      s.Paused(),
			Scale:       snap.Pet.Scale,
			MinScale:    float32(cfg.Window.MinScale),
			MaxScale:    float32(cfg.Window.MaxScale),
			Particles:   len(snap.Particles),
			Projectiles: len(snap.Projectiles),
			Messages:    len(snap.Messages),
			Tick:        snap.Tick,
		})
		rl.EndDrawing()

		if actions.SetMode != nil {
			s.SetMode(*actions.SetMode)
		}
		if actions.TogglePause {
			s.SetPaused(!s.Paused())
		}
		if actions.SetScale != nil {
			s.SetScale(*actions.SetScale)
		}

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			break
		}
	}
}
