// Package types: internal types
package types

import (
	"log/slog"

	"github.com/jdlms/tip-calculator/internal/calculator"
	"github.com/jdlms/tip-calculator/internal/ui/components"
	"github.com/rivo/tview"
)

// AppState holds the main application state
type AppState struct {
	App    *tview.Application
	Grid   *tview.Grid
	Header *tview.TextView
	Footer *tview.TextView

	BillInput     *tview.InputField
	DecrementBtn  *tview.Button
	IncrementBtn  *tview.Button
	SplitCount    *tview.TextView
	TipAmount     *tview.TextView
	TipPercent    *tview.TextView
	TipSlider     *components.TipSlider
	SplitControls *tview.Flex

	Engine *calculator.Engine
	Logger *slog.Logger
}

// Focusables returns the widgets Tab cycles through, in screen order.
func (s *AppState) Focusables() []tview.Primitive {
	return []tview.Primitive{s.BillInput, s.DecrementBtn, s.IncrementBtn, s.TipSlider}
}
