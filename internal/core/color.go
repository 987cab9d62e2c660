package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the games. HUD text and overlays use the bright colors,
// bricks use the row palette (Purple..Orange).
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorPurple
	ColorPink

	numColors
)

// ansiCodes holds the ANSI 256-color code for every color but ColorDefault.
var ansiCodes = [numColors]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorDarkGray:      "240",
	ColorPurple:        "135",
	ColorPink:          "205",
}

// ANSI returns the ANSI 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every defined color, ColorDefault included.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
