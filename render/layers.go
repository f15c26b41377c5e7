package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/lixenwraith/sorted/constants"
	"github.com/lixenwraith/sorted/ui"
)

// partialBlocks index by eighths of a cell, 0 is unused
var partialBlocks = [8]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

func backgroundLayer(theme Theme) Layer {
	style := theme.BaseStyle()
	return LayerFunc(func(_ *Frame, s tcell.Screen) {
		s.Fill(' ', style)
	})
}

// BarsArea returns the region bars are drawn in below the buttons
func BarsArea(width, height int, buttons []ui.Button) ui.Rect {
	top := max(ui.Bottom(buttons), constants.LabelRow+1) + constants.BarsMarginTop
	return ui.Rect{X: 0, Y: top, W: width, H: max(height-top, 0)}
}

// BarGeometry returns the per-bar width and left offset for n bars in area.
// Bars never get narrower than one cell; excess bars are clipped at the right edge.
func BarGeometry(area ui.Rect, n int) (barWidth, offset int) {
	if n <= 0 {
		return 0, 0
	}
	barWidth = max(area.W/n, 1)
	offset = max((area.W-barWidth*n)/2, 0)
	return barWidth, offset
}

// BarEighths returns the bar height in eighths of a cell for value v
func BarEighths(v, maxValue, rows int) int {
	if v <= 0 || maxValue <= 0 || rows <= 0 {
		return 0
	}
	h := v * rows * 8 / maxValue
	return min(max(h, 1), rows*8)
}

func barsLayer(theme Theme) Layer {
	bgColor := ui.Color(theme.Background)
	compare := ui.Color(theme.Compare)
	sorted := ui.Color(theme.Sorted)

	return LayerFunc(func(f *Frame, s tcell.Screen) {
		w, h := s.Size()
		area := BarsArea(w, h, f.Buttons)
		if area.Empty() || len(f.Values) == 0 {
			return
		}

		maxValue := f.MaxValue
		if maxValue <= 0 {
			maxValue = lo.Max(f.Values)
		}

		barWidth, offset := BarGeometry(area, len(f.Values))
		drawWidth := barWidth
		if barWidth >= constants.BarGapMinWidth {
			drawWidth = barWidth - 1
		}

		for i, v := range f.Values {
			x0 := area.X + offset + i*barWidth
			if x0 >= area.Right() {
				break
			}

			var color tcell.Color
			switch {
			case lo.Contains(f.Highlight, i):
				color = compare
			case f.Sorted:
				color = sorted
			default:
				color = ui.Color(theme.BarColor(v, maxValue))
			}
			full := tcell.StyleDefault.Background(color).Foreground(color)
			edge := tcell.StyleDefault.Background(bgColor).Foreground(color)

			eighths := BarEighths(v, maxValue, area.H)
			fullRows, rem := eighths/8, eighths%8

			for dx := 0; dx < drawWidth; dx++ {
				x := x0 + dx
				for r := 0; r < fullRows; r++ {
					s.SetContent(x, area.Bottom()-1-r, ' ', nil, full)
				}
				if rem > 0 {
					s.SetContent(x, area.Bottom()-1-fullRows, partialBlocks[rem], nil, edge)
				}
			}
		}
	})
}

func headerLayer(theme Theme) Layer {
	base := theme.BaseStyle()
	title := base.Bold(true)
	dim := base.Foreground(ui.Color(theme.DimText))

	return LayerFunc(func(f *Frame, s tcell.Screen) {
		w, _ := s.Size()
		drawText(s, constants.MarginLeft, constants.TitleRow, f.Title, title)
		drawText(s, constants.MarginLeft, constants.LabelRow, f.Label, base)

		if f.Status != "" {
			x := w - runewidth.StringWidth(f.Status) - constants.MarginLeft
			labelEnd := constants.MarginLeft + runewidth.StringWidth(f.Label) + 1
			if x >= labelEnd {
				drawText(s, x, constants.LabelRow, f.Status, dim)
			}
		}
	})
}

func buttonsLayer(theme Theme) Layer {
	return LayerFunc(func(f *Frame, s tcell.Screen) {
		for _, b := range f.Buttons {
			b.Render(s, f.PointerX, f.PointerY, theme.Buttons)
		}
	})
}

// drawText writes text starting at (x, y), advancing by display width
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
