// Package scene renders the transfer graph each frame: edges, glowing
// nodes, truncated labels, the selection panel, and the credit-score toggle.
//
// Rendering is a pure function of the current state. The renderer never
// mutates the model, the layout, or the interaction state; its only output
// is draw calls against a [Surface]. That keeps the whole scene testable
// with a recording surface and keeps the window driver thin.
package scene

// Color is an alpha-blended RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Surface is the drawing API the renderer targets. Implementations must
// support alpha-blended fills. Text coordinates address the baseline-left
// corner of the string.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height float64)

	// Clear fills the whole surface with a color.
	Clear(c Color)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, r float64, c Color)

	// Line draws a straight line segment of the given stroke width.
	Line(x1, y1, x2, y2, width float64, c Color)

	// FillRoundedRect draws a filled rounded rectangle.
	FillRoundedRect(x, y, w, h, radius float64, c Color)

	// StrokeRoundedRect outlines a rounded rectangle.
	StrokeRoundedRect(x, y, w, h, radius, width float64, c Color)

	// Text draws a string with the surface's monospaced font.
	Text(s string, x, y float64, c Color)

	// TextWidth measures the rendered width of a string in pixels.
	TextWidth(s string) float64
}
