package engine

import "strings"

// Color identifies a token. Tokens carry no identity beyond their color.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorPink
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorCyan:
		return 'C'
	case ColorPink:
		return 'K'
	default:
		return '?'
	}
}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a string to a Color.
// Accepts full names and the single-letter form returned by Char.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "blue", "b":
		return ColorBlue, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "cyan", "c":
		return ColorCyan, true
	case "pink", "k":
		return ColorPink, true
	default:
		return ColorRed, false
	}
}

// AllColors returns a slice of all valid colors.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := range ColorCount {
		colors = append(colors, c)
	}
	return colors
}

// Palette returns the first n colors of the palette.
// n is clamped to [0, ColorCount].
func Palette(n int) []Color {
	if n < 0 {
		n = 0
	}
	if n > int(ColorCount) {
		n = int(ColorCount)
	}
	return AllColors()[:n]
}
