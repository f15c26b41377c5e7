package constants

// Window Text
const (
	Title = "SORTED! - Multi Algorithm Visualizer"

	// RegenerateLabel is the caption of the array regeneration button
	RegenerateLabel = "New Array"

	// RegenerateKey is the keyboard shortcut for RegenerateLabel
	RegenerateKey = 'n'

	// MuteKey toggles sound
	MuteKey = 'm'
)

// Layout (terminal cells)
const (
	// TitleRow and LabelRow hold the title and active algorithm label
	TitleRow = 0
	LabelRow = 1

	// ButtonTop is the first row of the button bar
	ButtonTop = 3

	// ButtonPadding is the horizontal space on each side of a button label
	ButtonPadding = 2

	// ButtonGap separates adjacent buttons
	ButtonGap = 1

	// ButtonHeight is the height of one button row
	ButtonHeight = 1

	// BarsMarginTop is the space between the last button row and the tallest bar
	BarsMarginTop = 1

	// BarGapMinWidth is the bar width from which a one-cell gap separates bars
	BarGapMinWidth = 3

	// MarginLeft is the left indent of header text
	MarginLeft = 2
)

// Palette (RGB hex)
const (
	BackgroundColor = "#1e1e1e"
	BarColor        = "#4682b4"
	CompareColor    = "#ff6347"
	SortedColor     = "#2ecc71"
	ButtonColor     = "#3498db"
	ButtonHover     = "#2980b9"
	TextColor       = "#f0f0f0"
	DimTextColor    = "#9a9a9a"
)

// BarShadeRange is how far short bars are darkened toward the background (0..1)
const BarShadeRange = 0.35
