package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when bill text is empty or not a number.
var ErrInvalidAmount = errors.New("invalid bill amount")

// ParseAmount trims text and parses it as a float64. Both the validity check
// and the split computation go through here.
//
// Negative values and exponent notation are accepted; NaN and infinities are not.
func ParseAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, trimmed)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, trimmed)
	}
	return amount, nil
}
