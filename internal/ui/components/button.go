package components

import "github.com/rivo/tview"

// NewRoundButton creates a small icon button such as "−" or "+".
func NewRoundButton(icon string, onClick func()) *tview.Button {
	button := tview.NewButton("( " + icon + " )")
	if onClick != nil {
		button.SetSelectedFunc(onClick)
	}
	return button
}
