package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sorted/constants"
	"github.com/lixenwraith/sorted/ui"
)

// Theme holds the resolved palette
type Theme struct {
	Background colorful.Color
	Bar        colorful.Color
	Compare    colorful.Color
	Sorted     colorful.Color
	Text       colorful.Color
	DimText    colorful.Color
	Buttons    ui.ButtonStyle

	// ShadeRange darkens short bars toward Background, 0 disables shading
	ShadeRange float64
}

// DefaultTheme returns the palette from constants
func DefaultTheme() Theme {
	return Theme{
		Background: ui.HexColor(constants.BackgroundColor),
		Bar:        ui.HexColor(constants.BarColor),
		Compare:    ui.HexColor(constants.CompareColor),
		Sorted:     ui.HexColor(constants.SortedColor),
		Text:       ui.HexColor(constants.TextColor),
		DimText:    ui.HexColor(constants.DimTextColor),
		Buttons:    ui.DefaultButtonStyle(),
		ShadeRange: constants.BarShadeRange,
	}
}

// BaseStyle is the text style over the background
func (t Theme) BaseStyle() tcell.Style {
	return tcell.StyleDefault.Background(ui.Color(t.Background)).Foreground(ui.Color(t.Text))
}

// BarColor returns the color of a non-highlighted bar of value v.
// Taller bars are brighter; fraction is v/max clamped to [0,1].
func (t Theme) BarColor(v, maxValue int) colorful.Color {
	if maxValue <= 0 || t.ShadeRange <= 0 {
		return t.Bar
	}
	fraction := min(max(float64(v)/float64(maxValue), 0), 1)
	return t.Bar.BlendLab(t.Background, (1-fraction)*t.ShadeRange)
}
