package ui

import (
	"strconv"

	"github.com/jdlms/tip-calculator/internal/calculator"
	"github.com/jdlms/tip-calculator/internal/types"
	"github.com/jdlms/tip-calculator/internal/ui/components"
)

// RenderSummary writes the engine values into the widgets. It runs on the
// event loop, so widgets are updated directly.
func RenderSummary(state *types.AppState, snap calculator.Snapshot) {
	components.SetTotal(state.Header, FormatCurrency(snap.TotalPerPerson))
	state.TipAmount.SetText(FormatCurrency(snap.TipAmount))
	state.SplitCount.SetText(strconv.Itoa(snap.Contributors))
	state.TipPercent.SetText(FormatPercent(snap.TipPercentage))
}

// SetControlsEnabled disables the split and tip controls while the bill
// amount is not a valid number.
func SetControlsEnabled(state *types.AppState, enabled bool) {
	state.DecrementBtn.SetDisabled(!enabled)
	state.IncrementBtn.SetDisabled(!enabled)
	state.TipSlider.SetDisabled(!enabled)
}
