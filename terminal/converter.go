package terminal

import (
	"math"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Converter maps world metres to terminal cells
// The world origin sits at the middle of the area, +y points up, and a row
// covers aspect times the height a column covers in width
type Converter struct {
	width, height int
	cellsPerMeter float64
	aspect        float64
}

func NewConverter(width, height int, cellsPerMeter float64) *Converter {
	return &Converter{
		width:         width,
		height:        height,
		cellsPerMeter: cellsPerMeter,
		aspect:        parameter.ViewerCellAspect,
	}
}

func (c *Converter) Size() (int, int)       { return c.width, c.height }
func (c *Converter) CellsPerMeter() float64 { return c.cellsPerMeter }

func (c *Converter) Resize(width, height int) {
	c.width, c.height = width, height
}

// Zoom scales cells per metre, ignored for non-positive factors
func (c *Converter) Zoom(factor float64) {
	if factor > 0 {
		c.cellsPerMeter *= factor
	}
}

// ToCell returns the cell containing p, possibly outside the area
func (c *Converter) ToCell(p vmath.Vec2) (int, int) {
	x := float64(c.width)/2 + p.X*c.cellsPerMeter
	y := float64(c.height)/2 - p.Y*c.cellsPerMeter/c.aspect
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld returns the world position of the center of cell (x, y)
func (c *Converter) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x)+0.5-float64(c.width)/2)/c.cellsPerMeter,
		(float64(c.height)/2-float64(y)-0.5)*c.aspect/c.cellsPerMeter,
	)
}

func (c *Converter) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}
