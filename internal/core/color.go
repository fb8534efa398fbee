package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors used by the lane renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
)
