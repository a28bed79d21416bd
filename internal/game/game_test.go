package game

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/scene"
)

type rectCall struct {
	x, y, w, h float32
	clr        color.Color
}

type fakeRenderer struct {
	lines   int
	circles int
	texts   []string
	rects   []rectCall
}

func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.lines++
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.rects = append(r.rects, rectCall{x, y, width, height, clr})
}

func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.circles++
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int) {
	r.texts = append(r.texts, text)
}

type fakeImage struct {
	w, h  int
	fills int
}

func (i *fakeImage) Size() (int, int)     { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color) { i.fills++ }

type fakeInput struct {
	pressed map[render.Key]bool
	just    map[render.Key]bool
}

func newFakeInput(keys ...render.Key) *fakeInput {
	in := &fakeInput{pressed: map[render.Key]bool{}, just: map[render.Key]bool{}}
	for _, k := range keys {
		in.pressed[k] = true
	}
	return in
}

func (i *fakeInput) IsKeyPressed(key render.Key) bool     { return i.pressed[key] }
func (i *fakeInput) IsKeyJustPressed(key render.Key) bool { return i.just[key] }
func (i *fakeInput) FrameTime() float64                   { return 1.0 / 60.0 }

func newTestGame(input *fakeInput) (*Game, *fakeRenderer) {
	cfg := config.DefaultConfig()
	maps := scene.NewMapSet(scene.BuiltinA(), scene.BuiltinB(), 800, 600)
	r := &fakeRenderer{}
	return New(cfg, maps, r, input), r
}

func TestUpdateCastsBeforeMoving(t *testing.T) {
	g, _ := newTestGame(newFakeInput(render.KeyW))
	start := g.Viewer.Position()
	forward := g.Viewer.Forward()

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	f := g.Frame()
	if f.View.Position != start {
		t.Errorf("Expected frame from pre-move position %v, got %v", start, f.View.Position)
	}

	expected := raycast.NewViewer(start, g.Config.Viewer.FOV).Look(f.Walls)
	for i := range expected {
		if expected[i] != f.Hits[i] {
			t.Fatalf("Ray %d: expected %+v, got %+v", i, expected[i], f.Hits[i])
		}
	}

	step := 90.0 / 60.0
	want := raycast.Point{X: start.X + forward.X()*step, Y: start.Y + forward.Y()*step}
	got := g.Viewer.Position()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Expected viewer at %v after moving, got %v", want, got)
	}
}

func TestUpdateMovesBackward(t *testing.T) {
	g, _ := newTestGame(newFakeInput(render.KeyS))
	start := g.Viewer.Position()

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if d := raycast.Distance(start, g.Viewer.Position()); math.Abs(d-1.5) > 1e-9 {
		t.Errorf("Expected to move 1.5 px, moved %f", d)
	}
	ahead := g.Viewer.Position().Vec().Sub(start.Vec()).Dot(g.Viewer.Forward())
	if ahead >= 0 {
		t.Error("Expected S to move against the forward direction")
	}
}

func TestUpdateRotates(t *testing.T) {
	tests := []struct {
		key  render.Key
		sign float64
	}{
		{render.KeyD, 1},
		{render.KeyA, -1},
	}

	for _, tt := range tests {
		g, _ := newTestGame(newFakeInput(tt.key))
		before := g.Viewer.Forward()

		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		after := g.Viewer.Forward()
		if got := raycast.AngleBetween(before, after); math.Abs(got-0.02) > 1e-9 {
			t.Errorf("Expected rotation of 0.02, got %f", got)
		}
		cross := before.X()*after.Y() - before.Y()*after.X()
		if cross*tt.sign <= 0 {
			t.Errorf("Key %d turned the wrong way", tt.key)
		}
		if g.Frame().View.Forward != before {
			t.Error("Expected the frame to keep the pre-rotation direction")
		}
	}
}

func TestUpdateQuit(t *testing.T) {
	input := newFakeInput()
	input.just[render.KeyEscape] = true
	g, _ := newTestGame(input)

	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestUpdateToggles(t *testing.T) {
	input := newFakeInput()
	input.just[render.KeyM] = true
	input.just[render.KeyR] = true
	g, _ := newTestGame(input)

	minimap, rays := g.ShowMinimap, g.ShowRays
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.ShowMinimap == minimap || g.ShowRays == rays {
		t.Error("Expected M and R to toggle the overlays")
	}
}

func TestUpdateFollowsSchedule(t *testing.T) {
	g, _ := newTestGame(newFakeInput())

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if f := g.Frame(); f.Active != scene.VariantB || len(f.Walls) != 6 {
		t.Errorf("Expected to start on map B with 6 walls, got %s with %d", f.Active, len(f.Walls))
	}

	g.Elapsed = 10.5
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	f := g.Frame()
	if f.Active != scene.VariantA || len(f.Walls) != 12 {
		t.Errorf("Expected map A with 12 walls after 10s, got %s with %d", f.Active, len(f.Walls))
	}
	if f.Theme != scene.VariantA.Theme() {
		t.Errorf("Expected theme %s, got %s", scene.VariantA.Theme(), f.Theme)
	}
}

func TestUpdateAdvancesTime(t *testing.T) {
	g, _ := newTestGame(newFakeInput())
	for i := 0; i < 60; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if math.Abs(g.Elapsed-1) > 1e-9 {
		t.Errorf("Expected 1s elapsed after 60 ticks, got %f", g.Elapsed)
	}
}

func TestDrawProjection(t *testing.T) {
	g, r := newTestGame(newFakeInput(render.KeySpace))
	g.ShowMinimap = false

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	screen := &fakeImage{w: 800, h: 600}
	g.Draw(screen)

	hits := g.Frame().HitCount()
	if hits != g.Config.Viewer.FOV+1 {
		t.Fatalf("Expected every ray to hit inside the boundary, got %d", hits)
	}
	if len(r.rects) != hits {
		t.Fatalf("Expected %d strips, got %d", hits, len(r.rects))
	}

	stripWidth := float32(800.0 / float64(g.Config.Viewer.FOV))
	for i, rect := range r.rects {
		if math.Abs(float64(rect.w-stripWidth)) > 1e-3 {
			t.Errorf("Strip %d: expected width %f, got %f", i, stripWidth, rect.w)
		}
		if math.Abs(float64(rect.y+rect.h/2-300)) > 1e-3 {
			t.Errorf("Strip %d is not vertically centered: y=%f h=%f", i, rect.y, rect.h)
		}
	}
	if r.lines != 0 {
		t.Errorf("Expected no top-down lines in the 3D view, got %d", r.lines)
	}
	if screen.fills != 1 {
		t.Errorf("Expected the screen to be cleared once, got %d", screen.fills)
	}
}

func TestDrawReadsScreenSizeEachFrame(t *testing.T) {
	g, r := newTestGame(newFakeInput(render.KeySpace))
	g.ShowMinimap = false
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	g.Draw(&fakeImage{w: 400, h: 300})

	stripWidth := float32(400.0 / float64(g.Config.Viewer.FOV))
	for i, rect := range r.rects {
		if math.Abs(float64(rect.w-stripWidth)) > 1e-3 || rect.h > 300 {
			t.Fatalf("Strip %d does not fit a 400x300 screen: %+v", i, rect)
		}
	}
}

func TestDrawTopDown(t *testing.T) {
	g, r := newTestGame(newFakeInput())
	g.ShowMinimap = false
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	g.Draw(&fakeImage{w: 800, h: 600})

	f := g.Frame()
	wantLines := len(f.Walls) + f.HitCount() + len(f.View.Rays)
	if r.lines != wantLines {
		t.Errorf("Expected %d lines, got %d", wantLines, r.lines)
	}
	if r.circles != f.HitCount()+1 {
		t.Errorf("Expected %d circles, got %d", f.HitCount()+1, r.circles)
	}
	if len(r.rects) != 0 {
		t.Errorf("Expected no strips in the top-down view, got %d", len(r.rects))
	}
	if len(r.texts) == 0 {
		t.Error("Expected HUD text")
	}
}

func TestDrawMinimap(t *testing.T) {
	g, r := newTestGame(newFakeInput())
	g.ShowRays = false
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	g.Draw(&fakeImage{w: 800, h: 600})

	if len(r.rects) != 1 {
		t.Fatalf("Expected the minimap background, got %d rects", len(r.rects))
	}
	bg := r.rects[0]
	if bg.x != 580 || bg.y != 20 || bg.w != 200 || bg.h != 150 {
		t.Errorf("Unexpected minimap placement %+v", bg)
	}
}

func TestMinimapPoint(t *testing.T) {
	m := NewMinimap(0.25, 20, 20, 800, 600)
	x, y := m.Point(raycast.Point{X: 100, Y: 150})
	if x != 605 || y != 57.5 {
		t.Errorf("Expected (605, 57.5), got (%f, %f)", x, y)
	}
}

func TestLayoutFollowsWindow(t *testing.T) {
	g, _ := newTestGame(newFakeInput())
	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 || g.ScreenWidth != 1024 || g.ScreenHeight != 768 {
		t.Errorf("Expected layout 1024x768, got %dx%d", w, h)
	}
}
