package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewAmountField creates the labeled numeric field used for the bill amount.
// onChange receives every edit and onCommit fires when Enter is pressed.
func NewAmountField(title string, onChange func(text string), onCommit func()) *tview.InputField {
	field := tview.NewInputField().
		SetLabel("$ ").
		SetPlaceholder("0.00").
		SetAcceptanceFunc(tview.InputFieldFloat)

	field.SetBorder(true).SetTitle(title).SetTitleAlign(tview.AlignLeft)

	if onChange != nil {
		field.SetChangedFunc(onChange)
	}
	field.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter && onCommit != nil {
			onCommit()
		}
	})
	return field
}
