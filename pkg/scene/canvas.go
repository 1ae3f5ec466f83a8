package scene

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is a gg-backed Surface drawing into an in-memory RGBA image. The
// window driver blits the image each frame; the export sinks encode it.
type Canvas struct {
	dc     *gg.Context
	width  float64
	height float64
}

// NewCanvas allocates a canvas of the given pixel size using face for all
// text drawing and measurement.
func NewCanvas(width, height int, face font.Face) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	return &Canvas{dc: dc, width: float64(width), height: float64(height)}
}

// Image returns the backing image. The renderer draws into it in place, so
// callers must copy if they need a stable snapshot.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Size implements Surface.
func (c *Canvas) Size() (float64, float64) { return c.width, c.height }

// Clear implements Surface.
func (c *Canvas) Clear(col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.Clear()
}

// FillCircle implements Surface.
func (c *Canvas) FillCircle(x, y, r float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

// Line implements Surface.
func (c *Canvas) Line(x1, y1, x2, y2, width float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// FillRoundedRect implements Surface.
func (c *Canvas) FillRoundedRect(x, y, w, h, radius float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Fill()
}

// StrokeRoundedRect implements Surface.
func (c *Canvas) StrokeRoundedRect(x, y, w, h, radius, width float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(width)
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Stroke()
}

// Text implements Surface.
func (c *Canvas) Text(s string, x, y float64, col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawString(s, x, y)
}

// TextWidth implements Surface.
func (c *Canvas) TextWidth(s string) float64 {
	w, _ := c.dc.MeasureString(s)
	return w
}

var _ Surface = (*Canvas)(nil)
