package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jdlms/tip-calculator/internal/config"
	"github.com/rivo/tview"
)

type palette struct {
	base, surface, overlay tcell.Color
	muted, subtle, text    tcell.Color
	rose, foam             tcell.Color
}

var palettes = map[string]palette{
	config.ThemeRosePineMoon: {
		base:    tcell.NewRGBColor(35, 33, 54),    // #232136
		surface: tcell.NewRGBColor(42, 39, 63),    // #2a273f
		overlay: tcell.NewRGBColor(57, 53, 82),    // #393552
		muted:   tcell.NewRGBColor(110, 106, 134), // #6e6a86
		subtle:  tcell.NewRGBColor(144, 140, 170), // #908caa
		text:    tcell.NewRGBColor(224, 222, 244), // #e0def4
		rose:    tcell.NewRGBColor(235, 188, 186), // #ebbcba
		foam:    tcell.NewRGBColor(156, 207, 216), // #9ccfd8
	},
	config.ThemeRosePineDawn: {
		base:    tcell.NewRGBColor(250, 244, 237), // #faf4ed
		surface: tcell.NewRGBColor(255, 250, 243), // #fffaf3
		overlay: tcell.NewRGBColor(242, 233, 225), // #f2e9e1
		muted:   tcell.NewRGBColor(152, 147, 165), // #9893a5
		subtle:  tcell.NewRGBColor(121, 117, 147), // #797593
		text:    tcell.NewRGBColor(87, 82, 121),   // #575279
		rose:    tcell.NewRGBColor(215, 130, 126), // #d7827e
		foam:    tcell.NewRGBColor(86, 148, 159),  // #56949f
	},
}

// SetupTheme installs one of the Rose Pine variants as the tview theme.
func SetupTheme(name string) error {
	p, ok := palettes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}

	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    p.base,
		ContrastBackgroundColor:     p.surface,
		MoreContrastBackgroundColor: p.overlay,
		BorderColor:                 p.muted,
		TitleColor:                  p.rose,
		GraphicsColor:               p.foam,
		PrimaryTextColor:            p.text,
		SecondaryTextColor:          p.subtle,
		TertiaryTextColor:           p.muted,
		InverseTextColor:            p.base,
		ContrastSecondaryTextColor:  p.text,
	}
	return nil
}
