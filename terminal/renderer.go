package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/environment"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbObstacle   = tcell.NewRGBColor(120, 120, 130)
	RgbFood       = tcell.NewRGBColor(255, 220, 0)
	RgbNest       = tcell.NewRGBColor(150, 90, 40)
	RgbAntSearch  = tcell.NewRGBColor(230, 230, 230)
	RgbAntCarry   = tcell.NewRGBColor(255, 80, 80)
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBg   = tcell.NewRGBColor(40, 42, 54)
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)
)

const (
	GlyphObstacle  = '█'
	GlyphFood      = '*'
	GlyphNest      = 'O'
	GlyphPheromone = '·'
)

// headingGlyphs are indexed by octant, counter-clockwise from +x
var headingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// HeadingGlyph returns the arrow closest to angle
func HeadingGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}

// Renderer draws a simulation on a tcell screen
// The bottom row is the status bar, the rest is world
type Renderer struct {
	screen tcell.Screen
	conv   *Converter

	// Per-cell max intensity, reused between frames
	trail []int
	kind  []environment.PheromoneKind
}

func NewRenderer(screen tcell.Screen, cellsPerMeter float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		conv:   NewConverter(w, max(h-1, 0), cellsPerMeter),
	}
}

func (r *Renderer) Converter() *Converter { return r.conv }

// Resize follows the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.conv.Resize(w, max(h-1, 0))
}

// Draw paints one frame and shows it
func (r *Renderer) Draw(sim *engine.Simulation, paused bool) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	r.drawTrails(sim, base)
	r.drawObstacles(sim.Obstacles(), base.Foreground(RgbObstacle))
	r.drawNest(sim.Anthill(), base.Foreground(RgbNest))

	foodStyle := base.Foreground(RgbFood)
	for p := range sim.Food().Particles() {
		r.set(p.Position(), GlyphFood, foodStyle)
	}

	search := base.Foreground(RgbAntSearch)
	carry := base.Foreground(RgbAntCarry).Bold(true)
	for _, ant := range sim.Colony().All() {
		style := search
		if ant.HasFood() {
			style = carry
		}
		r.set(ant.Position(), HeadingGlyph(ant.FacingAngle()), style)
	}

	r.drawStatus(sim, paused)
	r.screen.Show()
}

func (r *Renderer) set(p vmath.Vec2, ch rune, style tcell.Style) {
	x, y := r.conv.ToCell(p)
	if r.conv.InBounds(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// drawTrails keeps the strongest particle per cell and shades by intensity
func (r *Renderer) drawTrails(sim *engine.Simulation, base tcell.Style) {
	w, h := r.conv.Size()
	n := w * h
	if cap(r.trail) < n {
		r.trail = make([]int, n)
		r.kind = make([]environment.PheromoneKind, n)
	}
	r.trail = r.trail[:n]
	r.kind = r.kind[:n]
	clear(r.trail)

	for _, field := range []*environment.Pheromones{sim.ToAnthill(), sim.ToFood()} {
		for p := range field.Particles() {
			x, y := r.conv.ToCell(p.Position())
			if !r.conv.InBounds(x, y) {
				continue
			}
			i := y*w + x
			if p.Intensity() > r.trail[i] {
				r.trail[i] = p.Intensity()
				r.kind[i] = field.Kind()
			}
		}
	}

	for i, v := range r.trail {
		if v == 0 {
			continue
		}
		r.screen.SetContent(i%w, i/w, GlyphPheromone, nil, base.Foreground(TrailColor(r.kind[i], v)))
	}
}

// TrailColor fades from the background to full color with intensity
func TrailColor(kind environment.PheromoneKind, intensity int) tcell.Color {
	t := float64(intensity) / parameter.PheromoneMaxIntensity
	lerp := func(from, to int32) int32 { return from + int32(float64(to-from)*t) }
	if kind == environment.ToFood {
		return tcell.NewRGBColor(lerp(26, 60), lerp(27, 220), lerp(38, 90))
	}
	return tcell.NewRGBColor(lerp(26, 90), lerp(27, 140), lerp(38, 255))
}

// drawObstacles fills every cell a rectangle touches, so thin walls stay visible
func (r *Renderer) drawObstacles(obstacles *environment.Obstacles, style tcell.Style) {
	always := func(vmath.Vec2) bool { return true }
	for rect := range obstacles.All() {
		x0, y0 := r.conv.ToCell(rect.TopLeft())
		x1, y1 := r.conv.ToCell(rect.BottomRight())
		r.fill(x0, y0, x1, y1, style, GlyphObstacle, always)
	}
}

func (r *Renderer) drawNest(hill *environment.Anthill, style tcell.Style) {
	c := hill.Circle()
	rad := c.Radius()
	x0, y0 := r.conv.ToCell(c.Center().Add(vmath.V2(-rad, rad)))
	x1, y1 := r.conv.ToCell(c.Center().Add(vmath.V2(rad, -rad)))
	r.fill(x0, y0, x1, y1, style, GlyphNest, c.Contains)
	// Nests smaller than a cell still show
	r.set(c.Center(), GlyphNest, style)
}

// fill scans the cell box and paints cells whose center passes inside
func (r *Renderer) fill(x0, y0, x1, y1 int, style tcell.Style, ch rune, inside func(vmath.Vec2) bool) {
	w, h := r.conv.Size()
	x0, x1 = max(x0, 0), min(x1, w-1)
	y0, y1 = max(y0, 0), min(y1, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(r.conv.ToWorld(x, y)) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (r *Renderer) drawStatus(sim *engine.Simulation, paused bool) {
	w, h := r.screen.Size()
	if h == 0 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	x := 0
	if paused {
		x = r.text(x, y, "PAUSED ", style.Foreground(RgbPaused).Bold(true))
	}
	r.text(x, y, sim.Registry().String(), style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
