package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sorted/constants"
)

// Color converts a colorful color to a tcell true color
func Color(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HexColor parses a "#rrggbb" palette constant.
// Palette values are compile-time constants, so a parse failure is a programming error.
func HexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("ui: bad palette color " + hex)
	}
	return c
}

// ButtonStyle defines button colors
type ButtonStyle struct {
	Fg      tcell.Color
	Bg      tcell.Color
	HoverBg tcell.Color
	KeyFg   tcell.Color
}

// DefaultButtonStyle returns the palette button colors
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Fg:      Color(HexColor(constants.TextColor)),
		Bg:      Color(HexColor(constants.ButtonColor)),
		HoverBg: Color(HexColor(constants.ButtonHover)),
		KeyFg:   Color(HexColor(constants.TextColor).BlendLab(HexColor(constants.ButtonColor), 0.4)),
	}
}
