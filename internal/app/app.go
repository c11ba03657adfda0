package app

import (
	"log/slog"

	"github.com/jdlms/tip-calculator/internal/calculator"
	"github.com/jdlms/tip-calculator/internal/config"
	"github.com/jdlms/tip-calculator/internal/types"
	"github.com/jdlms/tip-calculator/internal/ui"
	"github.com/jdlms/tip-calculator/internal/ui/components"
	"github.com/rivo/tview"
)

// CreateApp initializes and returns the application state
func CreateApp(cfg *config.Config, logger *slog.Logger) (*types.AppState, error) {
	if err := ui.SetupTheme(cfg.Theme); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	state := &types.AppState{
		Engine: calculator.New(calculator.WithLogger(logger)),
		Logger: logger,
	}

	// Create components
	state.Header = components.NewTotalHeader()
	state.Footer = components.NewFooter()
	state.SplitCount = ui.CreateSplitCount()
	state.TipAmount = ui.CreateTipAmount()
	state.TipPercent = ui.CreateTipPercent()

	state.BillInput = components.NewAmountField("Enter Bill Amount",
		func(text string) { UpdateBillAmount(state, text) },
		func() { CommitBillAmount(state) },
	)
	state.DecrementBtn = components.NewRoundButton("−", func() { ChangeContributors(state, -1) })
	state.IncrementBtn = components.NewRoundButton("+", func() { ChangeContributors(state, 1) })

	state.TipSlider = components.NewTipSlider(cfg.SliderSteps).
		SetChangedFunc(func(position float64) {
			state.Engine.SetTipPercentageFromSlider(position)
			state.TipPercent.SetText(ui.FormatPercent(state.Engine.TipPercentage()))
		}).
		SetReleasedFunc(func(float64) {
			logger.Debug("tip slider released", "percent", state.Engine.TipPercentage())
			state.Engine.CommitSlider()
		})

	// Every recompute repaints the derived values
	state.Engine.Subscribe(func(snap calculator.Snapshot) {
		ui.RenderSummary(state, snap)
	})
	ui.SetControlsEnabled(state, false)

	// Setup grid
	state.Grid = ui.SetupGrid(state)

	// Create application
	state.App = tview.NewApplication().
		SetRoot(state.Grid, true).
		EnableMouse(true).
		SetFocus(state.BillInput)

	// Setup key bindings
	SetupKeyBindings(state)

	return state, nil
}

// UpdateBillAmount stores the live field text and toggles the controls that
// need a valid amount
func UpdateBillAmount(state *types.AppState, text string) {
	state.Engine.SetBillAmount(text)
	ui.SetControlsEnabled(state, state.Engine.IsValid())
}

// CommitBillAmount applies the field text when Enter is pressed
func CommitBillAmount(state *types.AppState) {
	// the field may have been edited without a changed callback (SetText)
	state.Engine.SetBillAmount(state.BillInput.GetText())
	ui.SetControlsEnabled(state, state.Engine.IsValid())

	if err := state.Engine.CommitBillAmount(); err != nil {
		state.Logger.Debug("bill amount not applied", "error", err)
		return
	}
	state.Logger.Info("bill amount applied", "amount", state.Engine.BillAmountRaw())
}

// ChangeContributors adds or removes one contributor. Like the buttons, it
// does nothing until the bill amount is valid.
func ChangeContributors(state *types.AppState, delta int) {
	if !state.Engine.IsValid() {
		return
	}
	if delta > 0 {
		state.Engine.IncrementContributors()
	} else if !state.Engine.DecrementContributors() {
		state.Logger.Debug("split already at one contributor")
		return
	}
	state.Logger.Info("split changed", "contributors", state.Engine.Contributors())
}
