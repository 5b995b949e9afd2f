package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the terminal renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// RowColors cycles brick colors by grid row.
var RowColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan}

// RowColor returns the brick color for a grid row.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return RowColors[row%len(RowColors)]
}
