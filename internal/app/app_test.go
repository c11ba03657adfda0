package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/tip-calculator/internal/config"
	"github.com/jdlms/tip-calculator/internal/types"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noFocus(tview.Primitive) {}

func press(p tview.Primitive, k tcell.Key) {
	p.InputHandler()(tcell.NewEventKey(k, 0, tcell.ModNone), noFocus)
}

func typeText(p tview.Primitive, text string) {
	for _, r := range text {
		p.InputHandler()(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), noFocus)
	}
}

func capture(state *types.AppState, event *tcell.EventKey) *tcell.EventKey {
	return state.App.GetInputCapture()(event)
}

func newTestApp(t *testing.T) *types.AppState {
	t.Helper()
	cfg := &config.Config{Theme: config.ThemeRosePineMoon, SliderSteps: 10}
	state, err := CreateApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return state
}

func headerText(state *types.AppState) string {
	return state.Header.GetText(true)
}

func TestCreateAppStartsAtDefaults(t *testing.T) {
	state := newTestApp(t)

	assert.Contains(t, headerText(state), "$0.00")
	assert.Equal(t, "$0.00", state.TipAmount.GetText(true))
	assert.Equal(t, "0%", state.TipPercent.GetText(true))
	assert.Equal(t, "1", state.SplitCount.GetText(true))
	assert.Equal(t, state.BillInput, state.App.GetFocus())
	assert.True(t, state.TipSlider.IsDisabled())
}

func TestCreateAppRejectsUnknownTheme(t *testing.T) {
	_, err := CreateApp(&config.Config{Theme: "neon", SliderSteps: 10}, nil)
	require.Error(t, err)
}

func TestBillSplitFlow(t *testing.T) {
	state := newTestApp(t)

	typeText(state.BillInput, "100")
	assert.False(t, state.TipSlider.IsDisabled())
	assert.Contains(t, headerText(state), "$0.00", "typing alone does not recompute")

	press(state.BillInput, tcell.KeyEnter)
	assert.Contains(t, headerText(state), "$100.00")

	// dragging updates the percent label only
	press(state.TipSlider, tcell.KeyRight)
	assert.Equal(t, "10%", state.TipPercent.GetText(true))
	assert.Equal(t, "$0.00", state.TipAmount.GetText(true))
	assert.Contains(t, headerText(state), "$100.00")

	press(state.TipSlider, tcell.KeyEnter)
	assert.Equal(t, "$10.00", state.TipAmount.GetText(true))
	assert.Contains(t, headerText(state), "$110.00")

	press(state.IncrementBtn, tcell.KeyEnter)
	assert.Equal(t, "2", state.SplitCount.GetText(true))
	assert.Contains(t, headerText(state), "$55.00")

	press(state.DecrementBtn, tcell.KeyEnter)
	press(state.DecrementBtn, tcell.KeyEnter)
	assert.Equal(t, "1", state.SplitCount.GetText(true))
	assert.Contains(t, headerText(state), "$110.00")
}

func TestInvalidAmountIsNotApplied(t *testing.T) {
	state := newTestApp(t)

	typeText(state.BillInput, "50.50")
	press(state.BillInput, tcell.KeyEnter)
	require.Contains(t, headerText(state), "$50.50")

	state.BillInput.SetText("")
	press(state.BillInput, tcell.KeyEnter)

	assert.Contains(t, headerText(state), "$50.50")
	assert.True(t, state.TipSlider.IsDisabled())

	ChangeContributors(state, 1)
	assert.Equal(t, 1, state.Engine.Contributors())
}

func TestKeyBindings(t *testing.T) {
	state := newTestApp(t)
	typeText(state.BillInput, "90")
	press(state.BillInput, tcell.KeyEnter)

	plus := tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)
	minus := tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone)

	// runes go to the field while it has focus
	assert.Equal(t, plus, capture(state, plus))
	assert.Equal(t, 1, state.Engine.Contributors())

	assert.Nil(t, capture(state, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, state.DecrementBtn, state.App.GetFocus())

	assert.Nil(t, capture(state, plus))
	assert.Nil(t, capture(state, plus))
	assert.Equal(t, 3, state.Engine.Contributors())
	assert.Contains(t, headerText(state), "$30.00")

	assert.Nil(t, capture(state, minus))
	assert.Equal(t, 2, state.Engine.Contributors())

	assert.Nil(t, capture(state, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)))
	assert.Equal(t, state.BillInput, state.App.GetFocus())
}

func TestTabSkipsDisabledControls(t *testing.T) {
	state := newTestApp(t)

	capture(state, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.Equal(t, state.BillInput, state.App.GetFocus())

	typeText(state.BillInput, "10")
	capture(state, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	assert.Equal(t, state.TipSlider, state.App.GetFocus())
}

func TestSliderReleasedOnFocusChange(t *testing.T) {
	state := newTestApp(t)
	typeText(state.BillInput, "200")
	press(state.BillInput, tcell.KeyEnter)

	state.App.SetFocus(state.TipSlider)
	press(state.TipSlider, tcell.KeyRight)
	press(state.TipSlider, tcell.KeyRight)
	assert.Equal(t, "$0.00", state.TipAmount.GetText(true))

	state.App.SetFocus(state.BillInput)
	assert.Equal(t, "$40.00", state.TipAmount.GetText(true))
	assert.Contains(t, headerText(state), "$240.00")
}
