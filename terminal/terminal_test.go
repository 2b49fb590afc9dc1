package terminal

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/vmath"
)

func TestConverter_Orientation(t *testing.T) {
	c := NewConverter(80, 24, 20)

	tests := []struct {
		p    vmath.Vec2
		x, y int
	}{
		{vmath.V2(0, 0), 40, 12},
		{vmath.V2(1, 0), 60, 12},
		{vmath.V2(-1, 0), 20, 12},
		{vmath.V2(0, 1), 40, 2},
		{vmath.V2(0, -1), 40, 22},
	}
	for _, tt := range tests {
		x, y := c.ToCell(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("%v: expected (%d,%d), got (%d,%d)", tt.p, tt.x, tt.y, x, y)
		}
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	c := NewConverter(81, 25, 17)
	for _, p := range []vmath.Vec2{vmath.V2(0.3, 0), vmath.V2(-1.2, 0.33), vmath.V2(1.9, -0.95)} {
		x, y := c.ToCell(p)
		back := c.ToWorld(x, y)
		if math.Abs(back.X-p.X) > 0.5/17 || math.Abs(back.Y-p.Y) > 0.5*2/17 {
			t.Errorf("%v: cell center %v is more than half a cell away", p, back)
		}
	}

	c.Zoom(2)
	if c.CellsPerMeter() != 34 {
		t.Errorf("expected 34 cells per metre, got %v", c.CellsPerMeter())
	}
	c.Zoom(-1)
	if c.CellsPerMeter() != 34 {
		t.Error("expected non-positive zoom to be ignored")
	}
	if c.InBounds(81, 0) || c.InBounds(0, -1) || !c.InBounds(80, 24) {
		t.Error("unexpected bounds check")
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 4, '↗'},
		{math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
		{-math.Pi / 2, '↓'},
		{-math.Pi / 4, '↘'},
		{0.3, '→'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.angle); got != tt.want {
			t.Errorf("angle %v: expected %q, got %q", tt.angle, tt.want, got)
		}
	}
}

func TestTrailColor_Fades(t *testing.T) {
	if TrailColor(environment.ToFood, 0) != RgbBackground {
		t.Error("expected zero intensity to match the background")
	}
	if TrailColor(environment.ToFood, 100) == TrailColor(environment.ToAnthill, 100) {
		t.Error("expected the two fields to differ in color")
	}
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRenderer_DrawsDefaultScene(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)

	sim, err := engine.New(config.Default(), engine.DefaultScene())
	if err != nil {
		t.Fatal(err)
	}
	for range 100 {
		_ = sim.Step(0.01)
	}

	r := NewRenderer(screen, 20)
	r.Draw(sim, true)

	if ch, _, _, _ := screen.GetContent(40, 2); ch != GlyphObstacle {
		t.Errorf("expected top wall at (40,2), got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(0, 12); ch != GlyphObstacle {
		t.Errorf("expected left wall at (0,12), got %q", ch)
	}

	status := rowText(screen, 24, 80)
	if !strings.HasPrefix(status, "PAUSED") || !strings.Contains(status, "ants.count=50") {
		t.Errorf("unexpected status bar %q", status)
	}

	var food, ants, trail int
	for y := 0; y < 24; y++ {
		for _, ch := range rowText(screen, y, 80) {
			switch {
			case ch == GlyphFood:
				food++
			case ch == GlyphPheromone:
				trail++
			case strings.ContainsRune(string(headingGlyphs[:]), ch):
				ants++
			}
		}
	}
	if food == 0 || ants == 0 || trail == 0 {
		t.Errorf("expected food, ants and trail on screen, got %d %d %d", food, ants, trail)
	}
}
