package logger

import (
	"sort"

	"github.com/pkg/errors"
)

// Color names a terminal foreground color. The zero value means no color.
type Color string

// Palette entries, named and numbered as in Python's termcolor. Grey is
// an alias of Black.
const (
	NoColor      Color = ""
	Black        Color = "black"
	Grey         Color = "grey"
	Red          Color = "red"
	Green        Color = "green"
	Yellow       Color = "yellow"
	Blue         Color = "blue"
	Magenta      Color = "magenta"
	Cyan         Color = "cyan"
	LightGrey    Color = "light_grey"
	DarkGrey     Color = "dark_grey"
	LightRed     Color = "light_red"
	LightGreen   Color = "light_green"
	LightYellow  Color = "light_yellow"
	LightBlue    Color = "light_blue"
	LightMagenta Color = "light_magenta"
	LightCyan    Color = "light_cyan"
	White        Color = "white"
)

// VT100 SGR codes
const (
	reset = "\x1b[0m"
)

var colorCodes = map[Color]string{
	Black:        "\x1b[30m",
	Grey:         "\x1b[30m",
	Red:          "\x1b[31m",
	Green:        "\x1b[32m",
	Yellow:       "\x1b[33m",
	Blue:         "\x1b[34m",
	Magenta:      "\x1b[35m",
	Cyan:         "\x1b[36m",
	LightGrey:    "\x1b[37m",
	DarkGrey:     "\x1b[90m",
	LightRed:     "\x1b[91m",
	LightGreen:   "\x1b[92m",
	LightYellow:  "\x1b[93m",
	LightBlue:    "\x1b[94m",
	LightMagenta: "\x1b[95m",
	LightCyan:    "\x1b[96m",
	White:        "\x1b[97m",
}

// Semantic categories used by the colorizers.
const (
	FileColor  = Blue
	DirColor   = Blue
	TimeColor  = Green
	PlaceColor = Yellow
	ValueColor = Cyan
	NameColor  = Yellow

	WarningColor = Yellow
	ErrorColor   = Red
)

// Valid reports whether c is NoColor or a palette entry.
func (c Color) Valid() bool {
	if c == NoColor {
		return true
	}
	_, ok := colorCodes[c]
	return ok
}

// ParseColor returns the palette entry called name.
func ParseColor(name string) (Color, error) {
	c := Color(name)
	if !c.Valid() {
		return NoColor, errors.Errorf("unknown color %q (want one of %v)", name, Colors())
	}
	return c, nil
}

// Colors lists the palette in name order.
func Colors() []Color {
	out := make([]Color, 0, len(colorCodes))
	for c := range colorCodes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Colored wraps text in the escape sequence for c followed by a reset.
// NoColor and unknown colors return text unchanged.
func Colored(text string, c Color) string {
	code, ok := colorCodes[c]
	if !ok {
		return text
	}
	return code + text + reset
}
