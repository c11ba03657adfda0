package components

import "github.com/rivo/tview"

// NewTotalHeader creates the "Total Per Person" banner at the top of the screen.
func NewTotalHeader() *tview.TextView {
	header := tview.NewTextView()
	header.SetBorder(true)
	header.SetTextAlign(tview.AlignCenter)
	header.SetDynamicColors(true)
	SetTotal(header, "$0.00")
	return header
}

// SetTotal writes the formatted per-person total into the header.
func SetTotal(header *tview.TextView, total string) {
	header.SetText("Total Per Person\n[::b]" + total + "[::-]")
}
