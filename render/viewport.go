package render

import (
	"math"

	"github.com/lixenwraith/snek/components"
	"github.com/lixenwraith/snek/vmath"
)

// CellAspect is the width/height ratio correction of a terminal cell
const CellAspect = 2.0

// Viewport maps world coordinates to terminal cells and back
// The world circle is fitted into the area, centered, with x stretched by CellAspect
type Viewport struct {
	bounds  components.WorldBounds
	originX int
	originY int
	width   int
	height  int
	scale   float64 // rows per world unit
}

// NewViewport fits bounds into a width x height cell area at (originX, originY)
func NewViewport(bounds components.WorldBounds, originX, originY, width, height int) *Viewport {
	v := &Viewport{bounds: bounds}
	v.Resize(originX, originY, width, height)
	return v
}

// Resize refits the world into a new cell area
func (v *Viewport) Resize(originX, originY, width, height int) {
	v.originX, v.originY = originX, originY
	v.width, v.height = max(width, 1), max(height, 1)

	diameter := 2 * v.bounds.Radius()
	v.scale = math.Min(float64(v.height-1)/diameter, float64(v.width-1)/(diameter*CellAspect))
	if v.scale <= 0 {
		v.scale = 1 / diameter
	}
}

// Scale returns rows per world unit
func (v *Viewport) Scale() float64 { return v.scale }

// WorldToScreen maps p to a cell; ok is false outside the area
func (v *Viewport) WorldToScreen(p vmath.Vec2) (x, y int, ok bool) {
	d := p.Sub(v.bounds.Center())
	fx := float64(v.width-1)/2 + d.X*v.scale*CellAspect
	fy := float64(v.height-1)/2 + d.Y*v.scale
	x = v.originX + int(math.Round(fx))
	y = v.originY + int(math.Round(fy))
	ok = x >= v.originX && x < v.originX+v.width && y >= v.originY && y < v.originY+v.height
	return x, y, ok
}

// ScreenToWorld maps a cell to the world point under its center
func (v *Viewport) ScreenToWorld(x, y int) vmath.Vec2 {
	dx := (float64(x-v.originX) - float64(v.width-1)/2) / (v.scale * CellAspect)
	dy := (float64(y-v.originY) - float64(v.height-1)/2) / v.scale
	return v.bounds.Center().Add(vmath.V(dx, dy))
}
