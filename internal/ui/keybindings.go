package ui

import (
	"github.com/jdlms/tip-calculator/internal/types"
	"github.com/rivo/tview"
)

// CycleFocus moves focus to the next (or previous) enabled control.
// Disabled controls are skipped; the bill field is always reachable.
func CycleFocus(state *types.AppState, forward bool) {
	items := state.Focusables()
	current := -1
	focus := state.App.GetFocus()
	for i, p := range items {
		if p == focus {
			current = i
			break
		}
	}

	step := 1
	if !forward {
		step = -1
	}
	for n := 1; n <= len(items); n++ {
		next := items[((current+step*n)%len(items)+len(items))%len(items)]
		if focusable(next) {
			state.App.SetFocus(next)
			return
		}
	}
}

func focusable(p tview.Primitive) bool {
	if w, ok := p.(interface{ IsDisabled() bool }); ok {
		return !w.IsDisabled()
	}
	return true
}
