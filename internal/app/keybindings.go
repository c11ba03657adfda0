package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/tip-calculator/internal/types"
	"github.com/jdlms/tip-calculator/internal/ui"
)

// SetupKeyBindings configures keyboard input handling
func SetupKeyBindings(state *types.AppState) {
	state.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			ui.CycleFocus(state, true)
			return nil
		case tcell.KeyBacktab:
			ui.CycleFocus(state, false)
			return nil
		}

		// Runes belong to the bill field while it has focus
		if state.App.GetFocus() == state.BillInput {
			return event
		}

		switch event.Rune() {
		case 'q':
			state.App.Stop()
			return nil
		case '+':
			ChangeContributors(state, 1)
			return nil
		case '-':
			ChangeContributors(state, -1)
			return nil
		}

		return event
	})
}
