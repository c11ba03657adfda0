package components

import "github.com/rivo/tview"

// NewFooter creates the key help line.
func NewFooter() *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetText("Enter to apply | Tab to move | +/- split | ←/→ tip, Enter to set | 'q' to quit")
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)
	return footer
}
