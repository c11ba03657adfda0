package ui

import (
	"github.com/rivo/tview"
)

// CreateSplitCount creates the contributor count shown between the buttons
func CreateSplitCount() *tview.TextView {
	count := tview.NewTextView()
	count.SetTextAlign(tview.AlignCenter)
	count.SetText("1")
	return count
}

// CreateTipAmount creates the right-aligned tip value
func CreateTipAmount() *tview.TextView {
	tip := tview.NewTextView()
	tip.SetTextAlign(tview.AlignRight)
	tip.SetText(FormatCurrency(0))
	return tip
}

// CreateTipPercent creates the percentage label above the slider
func CreateTipPercent() *tview.TextView {
	percent := tview.NewTextView()
	percent.SetTextAlign(tview.AlignCenter)
	percent.SetText(FormatPercent(0))
	return percent
}

func label(text string) *tview.TextView {
	return tview.NewTextView().SetText(text)
}
