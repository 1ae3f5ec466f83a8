// Package app drives the interactive viewer window.
//
// It wires the pure pieces together: input events from the window system
// are translated into controller events, the controller mutates the view
// state, and each frame the renderer draws the scene onto a software
// canvas that is blitted to the window. All work happens on the render
// goroutine; nothing here is safe for concurrent use.
package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/scene"
	"github.com/walletscope/walletscope/pkg/score"
	"github.com/walletscope/walletscope/pkg/view"
)

// Options configures the viewer window.
type Options struct {
	Wallet  string
	Records []model.TransferRecord
	Width   int
	Height  int
	Layout  layout.Options

	FontName string  // system font name; embedded default when empty
	FontSize float64 // 0 selects scene.DefaultFontSize
}

// Run opens the viewer window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.FontSize <= 0 {
		opts.FontSize = scene.DefaultFontSize
	}

	face, err := scene.LoadFontFace(opts.FontName, opts.FontSize)
	if err != nil {
		return err
	}

	m := model.Build(opts.Records)
	positions := layout.Compute(m, opts.Layout)
	state := view.NewState(float64(opts.Width), float64(opts.Height))
	button := scene.ToggleButtonRect(float64(opts.Width), float64(opts.Height))

	game := &game{
		controller: view.NewController(m, positions, state, button),
		renderer:   scene.NewRenderer(m, positions, scene.DefaultTheme(), score.Estimate(opts.Records)),
		canvas:     scene.NewCanvas(opts.Width, opts.Height, face),
		state:      state,
		width:      opts.Width,
		height:     opts.Height,
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("walletscope — " + model.TruncateKey(opts.Wallet, 10))
	return ebiten.RunGame(game)
}

type game struct {
	controller *view.Controller
	renderer   *scene.Renderer
	canvas     *scene.Canvas
	state      *view.State

	width  int
	height int
	lastX  int
	lastY  int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.controller.Handle(view.PointerDown{X: float64(x), Y: float64(y)})
		g.lastX, g.lastY = x, y
	}
	if g.controller.Dragging() && (x != g.lastX || y != g.lastY) {
		g.controller.Handle(view.PointerMove{
			DX: float64(x - g.lastX),
			DY: float64(y - g.lastY),
		})
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.controller.Handle(view.PointerUp{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.controller.Handle(view.SecondaryClick{})
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.controller.Handle(view.WheelScroll{Ticks: dy, X: float64(x), Y: float64(y)})
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.canvas, g.state)
	if rgba, ok := g.canvas.Image().(*image.RGBA); ok {
		screen.WritePixels(rgba.Pix)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
