// Package gui shows the animated mosaic in a raylib window.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/metrics"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
)

const telemetryCapacity = 200

// Options describe the window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Background mosaic.Color
	LineWidth  float64
	FPS        int
}

// Builder creates the animation for the size the window actually got.
type Builder func(viewport mosaic.Size) (*anim.Cycle, error)

type App struct {
	Cycle     *anim.Cycle
	Viewport  mosaic.Size
	Opts      Options
	Running   bool
	ShowHUD   bool
	Telemetry []float64

	background rl.Color
	meanScale  *metrics.MeanScale
}

func NewApp(cycle *anim.Cycle, viewport mosaic.Size, opts Options) *App {
	return &App{
		Cycle:      cycle,
		Viewport:   viewport,
		Opts:       opts,
		Running:    true,
		ShowHUD:    false,
		Telemetry:  make([]float64, 0, telemetryCapacity),
		background: toColor(opts.Background),
		meanScale:  metrics.NewMeanScale(),
	}
}

// initWindow opens the window and returns the size it was given.
func initWindow(opts Options) mosaic.Size {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(int32(fps))
	return mosaic.Size{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
}

// Run opens the window, builds the mosaic for its size once and animates
// it until the window is closed.
func Run(opts Options, build Builder) error {
	size := initWindow(opts)
	defer rl.CloseWindow()

	cycle, err := build(size)
	if err != nil {
		return err
	}
	sim.Logger().Info("window opened", "width", size.Width, "height", size.Height, "shapes", cycle.Len())

	app := NewApp(cycle, size, opts)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update(float64(rl.GetFrameTime()))
		a.Draw()
	}
}

// Update handles keys and steps the cycle by the frame's elapsed time.
func (a *App) Update(dt float64) {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Cycle.Reset()
		a.Telemetry = a.Telemetry[:0]
	}

	if !a.Running {
		return
	}
	a.Cycle.Step(dt)
	a.meanScale.Observe(sim.Frame{Index: a.Cycle.Frame(), Time: a.Cycle.Elapsed(), Dt: dt, Cycle: a.Cycle})
	a.Telemetry = append(a.Telemetry, a.meanScale.Value())
	if len(a.Telemetry) > telemetryCapacity {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.background)

	a.drawShapes()
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	rl.DrawText(a.Opts.Title, 30, 30, 24, ColAccent)

	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	idx, _ := a.Cycle.Cursor()
	rl.DrawText(fmt.Sprintf("%s  shapes %d  cursor %d  t %.1fs", status, a.Cycle.Len(), idx, a.Cycle.Elapsed()), 30, 62, 16, ColText)
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [H] HUD  [Q] QUIT", 30, int32(a.Viewport.Height)-30, 14, ColTextDim)
	rl.DrawFPS(int32(a.Viewport.Width)-100, 30)

	a.DrawTelemetry()
}

// DrawTelemetry plots the recent mean scale.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}
	rectX, rectY := float32(30), float32(a.Viewport.Height)-110
	width, height := float32(400), float32(60)

	maxVal := 0.0
	for _, v := range a.Telemetry {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, v := range a.Telemetry {
		px := rectX + float32(i)/float32(telemetryCapacity)*width
		py := rectY + height - float32(v/maxVal)*height
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("scale %.2f", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}
