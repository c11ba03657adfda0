package components

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TipSlider is a horizontal slider over [0,1] with a fixed number of stops.
//
// Moving the thumb (arrow keys, h/l, mouse drag) fires the changed func.
// Letting go (Enter, Space, mouse release, or leaving the slider after a
// move) fires the released func once.
type TipSlider struct {
	*tview.Box

	steps    int
	stop     int
	disabled bool
	pending  bool
	dragging bool

	changed  func(position float64)
	released func(position float64)
}

// NewTipSlider returns a slider with steps increments between 0 and 1.
func NewTipSlider(steps int) *TipSlider {
	if steps < 1 {
		steps = 1
	}
	return &TipSlider{
		Box:   tview.NewBox(),
		steps: steps,
	}
}

// SetChangedFunc sets the handler called while the thumb moves.
func (s *TipSlider) SetChangedFunc(handler func(position float64)) *TipSlider {
	s.changed = handler
	return s
}

// SetReleasedFunc sets the handler called when the thumb is let go.
func (s *TipSlider) SetReleasedFunc(handler func(position float64)) *TipSlider {
	s.released = handler
	return s
}

// SetDisabled toggles whether the slider reacts to input.
func (s *TipSlider) SetDisabled(disabled bool) *TipSlider {
	s.disabled = disabled
	if disabled {
		s.pending = false
		s.dragging = false
	}
	return s
}

// IsDisabled reports whether input is ignored.
func (s *TipSlider) IsDisabled() bool {
	return s.disabled
}

// Steps returns the number of increments.
func (s *TipSlider) Steps() int {
	return s.steps
}

// Position returns the thumb position in [0,1].
func (s *TipSlider) Position() float64 {
	return float64(s.stop) / float64(s.steps)
}

// SetPosition snaps the thumb to the stop nearest to position without
// calling any handler.
func (s *TipSlider) SetPosition(position float64) *TipSlider {
	s.stop = s.clamp(int(math.Round(position * float64(s.steps))))
	return s
}

func (s *TipSlider) clamp(stop int) int {
	if stop < 0 {
		return 0
	}
	if stop > s.steps {
		return s.steps
	}
	return stop
}

func (s *TipSlider) moveTo(stop int) {
	stop = s.clamp(stop)
	if stop == s.stop {
		return
	}
	s.stop = stop
	s.pending = true
	if s.changed != nil {
		s.changed(s.Position())
	}
}

func (s *TipSlider) release() {
	s.pending = false
	if s.released != nil {
		s.released(s.Position())
	}
}

// stopAt maps a screen column to the nearest stop.
func (s *TipSlider) stopAt(column int) int {
	x, _, width, _ := s.GetInnerRect()
	if width <= 1 {
		return 0
	}
	ratio := float64(column-x) / float64(width-1)
	return s.clamp(int(math.Round(ratio * float64(s.steps))))
}

// Draw draws the track and the thumb.
func (s *TipSlider) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	y += height / 2

	background := tview.Styles.PrimitiveBackgroundColor
	track := tcell.StyleDefault.Background(background).Foreground(tview.Styles.TertiaryTextColor)
	filled := tcell.StyleDefault.Background(background).Foreground(tview.Styles.GraphicsColor)
	thumb := filled
	switch {
	case s.disabled:
		filled = track
		thumb = track
	case s.HasFocus():
		thumb = tcell.StyleDefault.Background(background).Foreground(tview.Styles.TitleColor)
	}

	thumbAt := int(math.Round(s.Position() * float64(width-1)))
	for i := 0; i < width; i++ {
		switch {
		case i == thumbAt:
			screen.SetContent(x+i, y, '●', nil, thumb)
		case i < thumbAt:
			screen.SetContent(x+i, y, '━', nil, filled)
		default:
			screen.SetContent(x+i, y, '─', nil, track)
		}
	}
}

// InputHandler returns the handler for this primitive.
func (s *TipSlider) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if s.disabled {
			return
		}
		switch event.Key() {
		case tcell.KeyLeft:
			s.moveTo(s.stop - 1)
		case tcell.KeyRight:
			s.moveTo(s.stop + 1)
		case tcell.KeyHome:
			s.moveTo(0)
		case tcell.KeyEnd:
			s.moveTo(s.steps)
		case tcell.KeyEnter:
			s.release()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				s.moveTo(s.stop - 1)
			case 'l':
				s.moveTo(s.stop + 1)
			case ' ':
				s.release()
			}
		}
	})
}

// MouseHandler returns the mouse handler for this primitive.
func (s *TipSlider) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if s.disabled {
			return false, nil
		}
		x, y := event.Position()
		switch action {
		case tview.MouseLeftDown:
			if !s.InRect(x, y) {
				return false, nil
			}
			setFocus(s)
			s.dragging = true
			s.moveTo(s.stopAt(x))
			return true, s
		case tview.MouseMove:
			if s.dragging {
				s.moveTo(s.stopAt(x))
				return true, s
			}
		case tview.MouseLeftUp:
			if s.dragging {
				s.dragging = false
				s.moveTo(s.stopAt(x))
				s.release()
				return true, nil
			}
		}
		return false, nil
	})
}

// Blur releases a pending move before losing focus.
func (s *TipSlider) Blur() {
	if s.pending {
		s.release()
	}
	s.Box.Blur()
}
