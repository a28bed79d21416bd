package game

import (
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/scene"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config
	Viewer       *raycast.Viewer
	Maps         *scene.MapSet
	Schedule     scene.Schedule
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Seconds of simulated time, advanced by one tick per Update
	Elapsed float64

	// UI state
	ShowMinimap bool
	ShowRays    bool

	frame    Frame
	lastBase scene.Variant
}

// New creates a game with the viewer at the configured start position and casts
// the first frame so Draw has something to show before the first Update.
func New(cfg *config.Config, maps *scene.MapSet, r render.Renderer, input render.InputManager) *Game {
	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Viewer:       raycast.NewViewer(cfg.StartPosition(), cfg.Viewer.FOV),
		Maps:         maps,
		Schedule:     cfg.MapSchedule(),
		Renderer:     r,
		InputMgr:     input,
		ShowMinimap:  cfg.Minimap.Enabled,
		ShowRays:     cfg.ShowRays,
	}
	g.lastBase = g.Schedule.Base(0)
	g.frame = g.cast(false)
	return g
}

// Frame returns the state captured by the last Update
func (g *Game) Frame() Frame {
	return g.frame
}

// Update runs one tick: pick the active map, cast every ray against it, then
// apply movement and rotation from the keyboard.
func (g *Game) Update() error {
	dt := g.InputMgr.FrameTime()

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("Quitting")
		return render.ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.ShowMinimap = !g.ShowMinimap
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.ShowRays = !g.ShowRays
	}

	g.frame = g.cast(g.InputMgr.IsKeyPressed(render.KeySpace))
	g.handleMovement(dt)

	g.Elapsed += dt
	return nil
}

// cast selects the wall set for the current time and looks at it
func (g *Game) cast(project bool) Frame {
	base := g.Schedule.Base(g.Elapsed)
	if base != g.lastBase {
		log.Printf("Switched to map %s (%s) at %.2fs", base, g.Maps.Name(base), g.Elapsed)
		g.lastBase = base
	}

	active := g.Schedule.Active(g.Elapsed)
	walls := g.Maps.Walls(active)

	return Frame{
		Active:  active,
		Theme:   base.Theme(),
		Walls:   walls,
		View:    g.Viewer.Snapshot(),
		Hits:    g.Viewer.Look(walls),
		Project: project,
	}
}

// handleMovement moves along the forward ray and turns the fan.
// Speed is scaled by the tick length; turning is a fixed step per tick.
func (g *Game) handleMovement(dt float64) {
	step := g.Config.Viewer.Speed * dt

	if g.InputMgr.IsKeyPressed(render.KeyW) {
		g.Viewer.Step(step)
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) {
		g.Viewer.Step(-step)
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) {
		g.Viewer.Rotate(-g.Config.Viewer.RotateStep)
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) {
		g.Viewer.Rotate(g.Config.Viewer.RotateStep)
	}
}

// Layout follows the window so projection always uses the current size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ScreenWidth = outsideWidth
	g.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
