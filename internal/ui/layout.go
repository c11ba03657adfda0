package ui

import (
	"github.com/jdlms/tip-calculator/internal/types"
	"github.com/rivo/tview"
)

// SetupGrid configures the single screen layout: total header, the bill
// form and the footer, centered horizontally.
func SetupGrid(state *types.AppState) *tview.Grid {
	splitRow := tview.NewFlex().
		AddItem(label("Split"), 0, 1, false).
		AddItem(state.DecrementBtn, 7, 0, false).
		AddItem(state.SplitCount, 5, 0, false).
		AddItem(state.IncrementBtn, 7, 0, false)

	tipRow := tview.NewFlex().
		AddItem(label("Tip"), 0, 1, false).
		AddItem(state.TipAmount, 0, 1, false)

	state.SplitControls = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(splitRow, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(tipRow, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(state.TipPercent, 1, 0, false).
		AddItem(state.TipSlider, 1, 0, false)

	form := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(state.BillInput, 3, 0, true).
		AddItem(state.SplitControls, 6, 0, false)
	form.SetBorder(true)

	grid := tview.NewGrid().
		SetRows(4, 11, 0, 3).
		SetColumns(0, 50, 0).
		SetBorders(false)

	grid.AddItem(state.Header, 0, 1, 1, 1, 0, 0, false)
	grid.AddItem(form, 1, 1, 1, 1, 0, 0, true)
	grid.AddItem(state.Footer, 3, 0, 1, 3, 0, 0, false)

	return grid
}
