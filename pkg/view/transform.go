// Package view holds the mutable interaction state of the graph window: the
// model-to-screen transform, the gesture state machine, and the current
// selection. The renderer reads this state; only the controller writes it.
package view

import "github.com/walletscope/walletscope/pkg/layout"

// Scale converts model units to pixels before zoom is applied. Layout space
// is roughly [-1,1], so at zoom 1 the graph spans about 400px.
const Scale = 200.0

// Zoom limits and the per-wheel-tick ratio.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 1.1
)

// Transform maps model-space positions to screen pixels:
//
//	screen = model*Scale*Zoom + Offset
//
// Zoom stays clamped to [MinZoom, MaxZoom]; Offset accumulates pan deltas.
type Transform struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// NewTransform returns a transform centered on a window of the given size
// at zoom 1.
func NewTransform(width, height float64) Transform {
	return Transform{Zoom: 1, OffsetX: width / 2, OffsetY: height / 2}
}

// Apply maps a model point to screen coordinates.
func (t Transform) Apply(p layout.Point) (float64, float64) {
	return p.X*Scale*t.Zoom + t.OffsetX, p.Y*Scale*t.Zoom + t.OffsetY
}

// Invert maps screen coordinates back to model space.
func (t Transform) Invert(sx, sy float64) layout.Point {
	return layout.Point{
		X: (sx - t.OffsetX) / (Scale * t.Zoom),
		Y: (sy - t.OffsetY) / (Scale * t.Zoom),
	}
}

// Pan shifts the view by a screen-space delta.
func (t *Transform) Pan(dx, dy float64) {
	t.OffsetX += dx
	t.OffsetY += dy
}

// ZoomAt multiplies the zoom by factor, clamped to the zoom limits, while
// keeping the model point under the cursor fixed on screen:
//
//	offset' = cursor - (zoom'/zoom) * (cursor - offset)
func (t *Transform) ZoomAt(cx, cy, factor float64) {
	next := clamp(t.Zoom*factor, MinZoom, MaxZoom)
	if next == t.Zoom {
		return
	}
	ratio := next / t.Zoom
	t.OffsetX = cx - ratio*(cx-t.OffsetX)
	t.OffsetY = cy - ratio*(cy-t.OffsetY)
	t.Zoom = next
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned screen-space rectangle used for UI hit testing.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
