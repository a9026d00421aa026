package core

import (
	"fmt"
	"strings"
)

// Color is one of the 16 colors of the classic text-mode palette.
// The numeric values match the VGA attribute nibble.
type Color uint8

const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorPink
	ColorYellow
	ColorWhite
)

var colorNames = [...]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light_gray",
	"dark_gray", "light_blue", "light_green", "light_cyan", "light_red", "pink", "yellow", "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ansiIndex maps VGA order to ANSI order; the two disagree on which of
// blue/red and cyan/yellow come first.
var ansiIndex = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// ANSI returns the color's index in the terminal's 16-color palette.
func (c Color) ANSI() int {
	return ansiIndex[c&0x0f]
}

// ParseColor resolves a palette color by name ("light_green", "Light Green"
// and "lightgreen" are all accepted).
func ParseColor(name string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(norm)
	for i, n := range colorNames {
		if strings.ReplaceAll(n, "_", "") == norm {
			return Color(i), nil
		}
	}
	return ColorBlack, fmt.Errorf("core: unknown color %q", name)
}

// ColorCode is a foreground/background attribute pair.
type ColorCode struct {
	Fg Color
	Bg Color
}

// DefaultCode is light gray on black, the text-mode default attribute.
var DefaultCode = ColorCode{Fg: ColorLightGray, Bg: ColorBlack}

// NewColorCode builds an attribute pair.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode{Fg: fg, Bg: bg}
}
