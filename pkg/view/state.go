package view

import "github.com/walletscope/walletscope/pkg/model"

// Selection is the currently selected node and its transaction list. An
// empty Node means nothing is selected.
type Selection struct {
	Node         string
	Transactions []model.Transaction
}

// Active reports whether a node is selected.
func (s Selection) Active() bool { return s.Node != "" }

// State is all mutable interaction state, owned by the driver loop and
// passed by reference to the controller and renderer. No package-level
// globals.
type State struct {
	View            Transform
	Selection       Selection
	ShowCreditPanel bool
}

// NewState returns interaction state for a window of the given size.
func NewState(width, height float64) *State {
	return &State{View: NewTransform(width, height)}
}
