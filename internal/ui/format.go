package ui

import "fmt"

// FormatCurrency renders an amount the way the screen shows money.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPercent renders a whole tip percentage.
func FormatPercent(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}
