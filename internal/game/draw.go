package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

var (
	colorBackground = color.NRGBA{0, 0, 0, 255}
	colorRay        = color.NRGBA{80, 80, 80, 255}
	colorHit        = color.NRGBA{0, 121, 241, 255}
	colorViewer     = color.NRGBA{0, 228, 48, 255}
	colorDirection  = color.NRGBA{253, 249, 0, 255}
	colorMinimapDot = color.NRGBA{255, 255, 255, 255}
)

const (
	wallWidth       = 4
	rayWidth        = 1
	hitRadius       = 3
	viewerRadius    = 5
	directionLength = 12
)

// Draw renders the last captured frame. The screen size is read on every call
// because the window can be resized.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()
	screen.Fill(colorBackground)

	f := g.frame
	if f.Project {
		g.drawProjection(screen, f, float64(w), float64(h))
	} else {
		g.drawWalls(screen, f)
		if g.ShowRays {
			g.drawRays(screen, f)
		}
		g.drawViewer(screen, f)
	}

	if g.ShowMinimap {
		g.drawMinimap(screen, f, float64(w), float64(h))
	}

	g.drawHUD(screen, f, h)
}

func (g *Game) drawWalls(screen render.Image, f Frame) {
	clr := f.Theme.Wall()
	for _, wall := range f.Walls {
		g.Renderer.StrokeLine(screen,
			float32(wall.A.X), float32(wall.A.Y), float32(wall.B.X), float32(wall.B.Y),
			wallWidth, clr)
	}
}

func (g *Game) drawRays(screen render.Image, f Frame) {
	origin := f.View.Position
	for _, hit := range f.Hits {
		if !hit.OK {
			continue
		}
		g.Renderer.StrokeLine(screen,
			float32(origin.X), float32(origin.Y), float32(hit.Point.X), float32(hit.Point.Y),
			rayWidth, colorRay)
		g.Renderer.FillCircle(screen, float32(hit.Point.X), float32(hit.Point.Y), hitRadius, colorHit)
	}
}

func (g *Game) drawViewer(screen render.Image, f Frame) {
	origin := f.View.Position
	g.Renderer.FillCircle(screen, float32(origin.X), float32(origin.Y), viewerRadius, colorViewer)

	for _, ray := range f.View.Rays {
		tip := origin.Vec().Add(ray.Direction.Mul(directionLength))
		g.Renderer.StrokeLine(screen,
			float32(origin.X), float32(origin.Y), float32(tip.X()), float32(tip.Y()),
			rayWidth, colorDirection)
	}
}

// drawProjection draws one vertical strip per ray that hit a wall
func (g *Game) drawProjection(screen render.Image, f Frame, w, h float64) {
	for _, col := range projection.Project(f.View, f.Hits, w, h) {
		g.Renderer.FillRect(screen,
			float32(col.X), float32(col.Top), float32(col.Width), float32(col.Height),
			projection.Shade(f.Theme, col.Brightness))
	}
}

// Minimap maps world coordinates into a scaled-down copy of the screen
// anchored to the top-right corner.
type Minimap struct {
	Scale   float64
	OriginX float64
	OriginY float64
	Width   float64
	Height  float64
}

// NewMinimap places a minimap for a w x h screen
func NewMinimap(scale, offsetX, offsetY, w, h float64) Minimap {
	mw, mh := w*scale, h*scale
	return Minimap{
		Scale:   scale,
		OriginX: w - mw - offsetX,
		OriginY: offsetY,
		Width:   mw,
		Height:  mh,
	}
}

// Point converts a world point to screen coordinates on the minimap
func (m Minimap) Point(p raycast.Point) (float32, float32) {
	return float32(p.X*m.Scale + m.OriginX), float32(p.Y*m.Scale + m.OriginY)
}

func (g *Game) drawMinimap(screen render.Image, f Frame, w, h float64) {
	cfg := g.Config.Minimap
	m := NewMinimap(cfg.Scale, cfg.OffsetX, cfg.OffsetY, w, h)

	g.Renderer.FillRect(screen, float32(m.OriginX), float32(m.OriginY), float32(m.Width), float32(m.Height), colorBackground)

	clr := f.Theme.Wall()
	for _, wall := range f.Walls {
		x1, y1 := m.Point(wall.A)
		x2, y2 := m.Point(wall.B)
		g.Renderer.StrokeLine(screen, x1, y1, x2, y2, 1, clr)
	}

	x, y := m.Point(f.View.Position)
	g.Renderer.FillCircle(screen, x, y, hitRadius, colorMinimapDot)
}

func (g *Game) drawHUD(screen render.Image, f Frame, h int) {
	status := fmt.Sprintf("%s  %d/%d hits  t=%.1fs", g.Maps.Name(f.Active), f.HitCount(), len(f.Hits), g.Elapsed)
	g.Renderer.DrawText(screen, status, 10, h-36)
	g.Renderer.DrawText(screen, "W/S move  A/D turn  SPACE 3D  M map  R rays  ESC quit", 10, h-20)
}
