// Package calculator holds the bill splitting state for one screen session.
//
// Inputs are written raw (the bill text as typed, the slider position) and
// derived values are only refreshed on a commit: submitting the bill field,
// releasing the slider, or changing the number of contributors.
package calculator

import (
	"io"
	"log/slog"
	"math"
)

// Snapshot is a read-only copy of the engine state handed to listeners.
type Snapshot struct {
	BillAmountRaw  string
	Valid          bool
	SliderPosition float64
	TipPercentage  int
	Contributors   int
	TipAmount      float64
	TotalPerPerson float64
}

// Listener is called after every recompute.
type Listener func(Snapshot)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine splits a bill plus tip between contributors.
// It is not safe for concurrent use; all calls are expected from the UI loop.
type Engine struct {
	billAmountRaw  string
	sliderPosition float64
	tipPercentage  int
	contributors   int

	tipAmount      float64
	totalPerPerson float64

	listeners []Listener
	logger    *slog.Logger
}

// New returns an engine at session defaults: empty amount, 0% tip and one contributor.
func New(opts ...Option) *Engine {
	e := &Engine{
		contributors: 1,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers fn to be called after each recompute.
func (e *Engine) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

// SetBillAmount stores the text verbatim. Derived values are left alone
// until the amount is committed.
func (e *Engine) SetBillAmount(text string) {
	e.billAmountRaw = text
}

// BillAmountRaw returns the bill text as last set.
func (e *Engine) BillAmountRaw() string {
	return e.billAmountRaw
}

// IsValid reports whether the current bill text parses as an amount.
func (e *Engine) IsValid() bool {
	_, err := ParseAmount(e.billAmountRaw)
	return err == nil
}

// CommitBillAmount recomputes the derived values from the current bill text.
// When the text is not a valid amount nothing changes and ErrInvalidAmount
// is returned.
func (e *Engine) CommitBillAmount() error {
	if _, err := ParseAmount(e.billAmountRaw); err != nil {
		e.logger.Debug("bill commit suppressed", "raw", e.billAmountRaw, "error", err)
		return err
	}
	e.recompute()
	return nil
}

// SetTipPercentageFromSlider records a slider position in [0,1] and updates
// the tip percentage. Positions outside the range are clamped.
func (e *Engine) SetTipPercentageFromSlider(position float64) {
	switch {
	case math.IsNaN(position), position < 0:
		position = 0
	case position > 1:
		position = 1
	}
	e.sliderPosition = position
	e.tipPercentage = int(math.Round(position * 100))
}

// SliderPosition returns the last slider position.
func (e *Engine) SliderPosition() float64 {
	return e.sliderPosition
}

// TipPercentage returns the current whole tip percent.
func (e *Engine) TipPercentage() int {
	return e.tipPercentage
}

// CommitSlider recomputes after the slider is released.
func (e *Engine) CommitSlider() {
	e.recompute()
}

// IncrementContributors adds one contributor and recomputes.
func (e *Engine) IncrementContributors() {
	e.contributors++
	e.recompute()
}

// DecrementContributors removes one contributor and recomputes. At one
// contributor it does nothing and returns false.
func (e *Engine) DecrementContributors() bool {
	if e.contributors <= 1 {
		return false
	}
	e.contributors--
	e.recompute()
	return true
}

// Contributors returns the number of people splitting the bill.
func (e *Engine) Contributors() int {
	return e.contributors
}

// TipAmount returns the tip computed at the last recompute.
func (e *Engine) TipAmount() float64 {
	return e.tipAmount
}

// TotalPerPerson returns each contributor's share computed at the last recompute.
func (e *Engine) TotalPerPerson() float64 {
	return e.totalPerPerson
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		BillAmountRaw:  e.billAmountRaw,
		Valid:          e.IsValid(),
		SliderPosition: e.sliderPosition,
		TipPercentage:  e.tipPercentage,
		Contributors:   e.contributors,
		TipAmount:      e.tipAmount,
		TotalPerPerson: e.totalPerPerson,
	}
}

// recompute refreshes the derived values. Stale callbacks can reach it with
// an invalid amount, in which case it leaves everything as is.
func (e *Engine) recompute() bool {
	amount, err := ParseAmount(e.billAmountRaw)
	if err != nil {
		e.logger.Debug("recompute skipped", "raw", e.billAmountRaw, "error", err)
		return false
	}

	e.tipAmount = amount * float64(e.tipPercentage) / 100
	e.totalPerPerson = (amount + e.tipAmount) / float64(e.contributors)

	e.logger.Debug("recomputed split",
		"amount", amount,
		"tip_percent", e.tipPercentage,
		"contributors", e.contributors,
		"tip", e.tipAmount,
		"total_per_person", e.totalPerPerson,
	)

	snap := e.Snapshot()
	for _, fn := range e.listeners {
		fn(snap)
	}
	return true
}
