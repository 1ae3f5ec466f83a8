package view

import (
	"math"

	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
)

// HitRadius is the clickable radius around a rendered node, in pixels.
const HitRadius = 15.0

// dragThreshold is the per-axis movement (px) beyond which a gesture is a
// drag rather than a click.
const dragThreshold = 1.0

// Event is a pointer or wheel input consumed by the controller. Events are
// handled synchronously; Handle never blocks.
type Event interface{ isEvent() }

// PointerDown starts a gesture with the primary button at (X, Y).
type PointerDown struct{ X, Y float64 }

// PointerMove carries the pointer delta since the previous move event.
type PointerMove struct{ DX, DY float64 }

// PointerUp ends the gesture at (X, Y).
type PointerUp struct{ X, Y float64 }

// SecondaryClick clears the selection regardless of gesture state.
type SecondaryClick struct{}

// WheelScroll zooms around the cursor. Positive Ticks zoom in.
type WheelScroll struct {
	Ticks float64
	X, Y  float64
}

func (PointerDown) isEvent()    {}
func (PointerMove) isEvent()    {}
func (PointerUp) isEvent()      {}
func (SecondaryClick) isEvent() {}
func (WheelScroll) isEvent()    {}

// gesture is the controller's two-state machine.
type gesture int

const (
	idle gesture = iota
	dragging
)

// Controller resolves pointer input into pans, zooms, node selection, and
// UI-button activation. All transitions complete within Handle; no
// asynchronous work happens here.
type Controller struct {
	model     *model.Model
	positions layout.Positions
	state     *State

	toggleButton Rect

	phase   gesture
	moved   bool
	travelX float64 // accumulated |dx| since PointerDown
	travelY float64
}

// NewController wires the controller to the graph, its layout, and the
// shared state. toggleButton is the fixed screen rectangle of the credit
// panel toggle.
func NewController(m *model.Model, pos layout.Positions, st *State, toggleButton Rect) *Controller {
	return &Controller{
		model:        m,
		positions:    pos,
		state:        st,
		toggleButton: toggleButton,
	}
}

// Dragging reports whether a primary-button gesture is in progress.
func (c *Controller) Dragging() bool { return c.phase == dragging }

// Handle processes one input event and mutates the shared state.
func (c *Controller) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		c.phase = dragging
		c.moved = false
		c.travelX = 0
		c.travelY = 0

	case PointerMove:
		if c.phase != dragging {
			return
		}
		c.travelX += math.Abs(ev.DX)
		c.travelY += math.Abs(ev.DY)
		if c.travelX > dragThreshold || c.travelY > dragThreshold {
			c.moved = true
		}
		c.state.View.Pan(ev.DX, ev.DY)

	case PointerUp:
		if c.phase != dragging {
			return
		}
		c.phase = idle
		if !c.moved {
			c.resolveClick(ev.X, ev.Y)
		}

	case SecondaryClick:
		c.state.Selection = Selection{}

	case WheelScroll:
		c.state.View.ZoomAt(ev.X, ev.Y, math.Pow(ZoomStep, ev.Ticks))
	}
}

// resolveClick applies the click-priority rules: toggle button first, then
// the first node (insertion order) within HitRadius, otherwise a no-op.
// First-match-in-insertion-order is the documented tie-break when hit
// circles overlap.
func (c *Controller) resolveClick(x, y float64) {
	if c.toggleButton.Contains(x, y) {
		c.state.ShowCreditPanel = !c.state.ShowCreditPanel
		return
	}

	for _, key := range c.model.Nodes() {
		p, ok := c.positions[key]
		if !ok {
			continue
		}
		sx, sy := c.state.View.Apply(p)
		if math.Hypot(x-sx, y-sy) <= HitRadius {
			c.state.Selection = Selection{
				Node:         key,
				Transactions: c.model.TransactionsFor(key),
			}
			return
		}
	}
	// Outside every interactive region: selection unchanged.
}
