package scene

// Theme is the scene's color palette. The default leans on the same dark
// palette the terminal UI uses so the window and CLI output feel related.
type Theme struct {
	Background Color
	Edge       Color
	NodeFill   Color
	NodeGlow   Color
	Label      Color

	PanelFill   Color
	PanelBorder Color
	PanelText   Color

	ButtonFill     Color
	ButtonActive   Color
	ButtonBorder   Color
	ButtonText     Color
	CreditText     Color
	CreditTextWarn Color
}

// DefaultTheme returns the standard dark palette.
func DefaultTheme() Theme {
	return Theme{
		Background: RGB(0.09, 0.09, 0.13),
		Edge:       Color{R: 0.39, G: 0.45, B: 0.64, A: 0.55},
		NodeFill:   RGB(0.55, 0.91, 0.99),
		NodeGlow:   Color{R: 0.55, G: 0.91, B: 0.99, A: 0.10},
		Label:      RGB(0.97, 0.97, 0.95),

		PanelFill:   Color{R: 0.16, G: 0.16, B: 0.21, A: 0.85},
		PanelBorder: RGB(0.74, 0.58, 0.98),
		PanelText:   RGB(0.97, 0.97, 0.95),

		ButtonFill:     RGB(0.16, 0.16, 0.21),
		ButtonActive:   RGB(0.31, 0.98, 0.48),
		ButtonBorder:   RGB(0.74, 0.58, 0.98),
		ButtonText:     RGB(0.97, 0.97, 0.95),
		CreditText:     RGB(0.31, 0.98, 0.48),
		CreditTextWarn: RGB(1.0, 0.72, 0.42),
	}
}
