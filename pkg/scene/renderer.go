package scene

import (
	"fmt"

	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/view"
)

// Drawing constants for the node and panel geometry.
const (
	NodeRadius = 10.0
	GlowLayers = 5

	labelChars        = 4  // node label truncation
	panelIDChars      = 10 // selected-node id truncation
	panelLineChars    = 6  // counterparty truncation inside panel lines
	panelMaxLines     = 9
	panelPadding      = 12.0
	panelLineHeight   = 18.0
	panelCornerRadius = 8.0

	buttonWidth  = 160.0
	buttonHeight = 40.0
	buttonMargin = 20.0
)

// ToggleButtonRect returns the fixed screen rectangle of the credit-panel
// toggle for a window of the given size. The controller hit-tests against
// the same rectangle the renderer draws.
func ToggleButtonRect(width, height float64) view.Rect {
	return view.Rect{
		X: buttonMargin,
		Y: height - buttonHeight - buttonMargin,
		W: buttonWidth,
		H: buttonHeight,
	}
}

// Renderer draws the scene. It holds only immutable inputs: the graph, its
// layout, the theme, and the precomputed credit-score line.
type Renderer struct {
	model     *model.Model
	positions layout.Positions
	theme     Theme
	score     int
}

// NewRenderer builds a renderer for one dataset. score is the precomputed
// credit score shown when the toggle is enabled.
func NewRenderer(m *model.Model, pos layout.Positions, theme Theme, score int) *Renderer {
	return &Renderer{model: m, positions: pos, theme: theme, score: score}
}

// Render draws one frame of the given state onto the surface. It performs
// no mutation; calling it twice with the same state draws the same pixels.
func (r *Renderer) Render(s Surface, st *view.State) {
	s.Clear(r.theme.Background)
	r.drawEdges(s, st)
	r.drawNodes(s, st)
	if st.Selection.Active() {
		r.drawSelectionPanel(s, st.Selection)
	}
	r.drawToggleButton(s, st.ShowCreditPanel)
}

// drawEdges draws every edge under the nodes. Multi-edges overdraw the same
// segment, which reads as a stronger connection.
func (r *Renderer) drawEdges(s Surface, st *view.State) {
	for _, e := range r.model.Edges() {
		from, okF := r.positions[e.From]
		to, okT := r.positions[e.To]
		if !okF || !okT {
			continue
		}
		x1, y1 := st.View.Apply(from)
		x2, y2 := st.View.Apply(to)
		s.Line(x1, y1, x2, y2, 1.5, r.theme.Edge)
	}
}

// drawNodes draws the glow rings, the solid disc, and the truncated label
// for every node, in insertion order.
func (r *Renderer) drawNodes(s Surface, st *view.State) {
	for _, key := range r.model.Nodes() {
		p, ok := r.positions[key]
		if !ok {
			continue
		}
		x, y := st.View.Apply(p)

		for i := GlowLayers; i >= 1; i-- {
			s.FillCircle(x, y, NodeRadius+float64(i)*3, r.theme.NodeGlow)
		}
		s.FillCircle(x, y, NodeRadius, r.theme.NodeFill)
		s.Text(model.TruncateKey(key, labelChars), x+NodeRadius+2, y-NodeRadius-2, r.theme.Label)
	}
}

// drawSelectionPanel draws the top-left information panel for the selected
// node: a bordered translucent rectangle, the truncated identifier, and up
// to panelMaxLines transaction lines.
func (r *Renderer) drawSelectionPanel(s Surface, sel view.Selection) {
	lines := make([]string, 0, panelMaxLines+1)
	lines = append(lines, model.TruncateKey(sel.Node, panelIDChars))
	for i, tx := range sel.Transactions {
		if i >= panelMaxLines {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s — %s",
			tx.Direction, model.TruncateKey(tx.Counterparty, panelLineChars), tx.Label))
	}

	width := 0.0
	for _, line := range lines {
		if w := s.TextWidth(line); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := float64(len(lines))*panelLineHeight + 2*panelPadding

	s.FillRoundedRect(buttonMargin, buttonMargin, width, height, panelCornerRadius, r.theme.PanelFill)
	s.StrokeRoundedRect(buttonMargin, buttonMargin, width, height, panelCornerRadius, 1.5, r.theme.PanelBorder)

	y := buttonMargin + panelPadding + panelLineHeight - 4
	for _, line := range lines {
		s.Text(line, buttonMargin+panelPadding, y, r.theme.PanelText)
		y += panelLineHeight
	}
}

// drawToggleButton draws the credit-panel toggle and, when enabled, the
// score text beside it.
func (r *Renderer) drawToggleButton(s Surface, enabled bool) {
	_, h := s.Size()
	rect := ToggleButtonRect(0, h) // width is unused for an anchored-left button

	fill := r.theme.ButtonFill
	label := "Credit: off"
	if enabled {
		fill = r.theme.ButtonActive
		label = "Credit: on"
	}

	s.FillRoundedRect(rect.X, rect.Y, rect.W, rect.H, panelCornerRadius, fill)
	s.StrokeRoundedRect(rect.X, rect.Y, rect.W, rect.H, panelCornerRadius, 1.5, r.theme.ButtonBorder)
	s.Text(label, rect.X+panelPadding, rect.Y+rect.H/2+5, r.theme.ButtonText)

	if enabled {
		color := r.theme.CreditText
		if r.score < 400 {
			color = r.theme.CreditTextWarn
		}
		s.Text(fmt.Sprintf("Credit score: %d / 1000", r.score),
			rect.X+rect.W+panelPadding, rect.Y+rect.H/2+5, color)
	}
}
