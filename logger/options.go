package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ColorMode describes how escape codes reach the console.
type ColorMode int

// ColorMode constants
const (
	// ColorAlways passes escape codes through to the console.
	ColorAlways ColorMode = iota
	// ColorAuto behaves like ColorAlways on a terminal and ColorNever otherwise.
	ColorAuto
	// ColorNever removes escape codes before they reach the console.
	ColorNever
)

var colorModeNames = []string{
	ColorAlways: "ALWAYS",
	ColorAuto:   "AUTO",
	ColorNever:  "NEVER",
}

// String turns a ColorMode into a string
func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
	return colorModeNames[m]
}

// Set a ColorMode from its case-insensitive name
func (m *ColorMode) Set(s string) error {
	for n, name := range colorModeNames {
		if strings.EqualFold(s, name) {
			*m = ColorMode(n)
			return nil
		}
	}
	return errors.Errorf("unknown color mode %q (want one of %s)", s, strings.Join(colorModeNames, "|"))
}

// Type of the value
func (m *ColorMode) Type() string {
	return "string"
}

// Options configures the routing table built by NewRouter. Start from
// DefaultOptions: the zero value keeps color codes in the file.
type Options struct {
	// FilePath additionally logs to this file (appended, parent directories
	// created). A leading "~" is expanded. Empty means console only.
	// Default: ""
	FilePath string
	// Format is the line template, see FormatterConfig.
	// Default: DefaultFormat
	Format string
	// DateFormat is the Go time layout for {time}.
	// Default: DefaultDateFormat
	DateFormat string
	// StripConsole removes escape codes from console lines.
	// Default: false
	StripConsole bool
	// StripFile removes escape codes from file lines.
	// Default: true
	StripFile bool
	// Color selects how the console writer treats escape codes.
	// Default: ColorAlways, or the value of LOGGER_COLOR when set
	Color ColorMode
}

// DefaultOptions returns the options used at package initialisation.
func DefaultOptions() Options {
	opt := Options{
		Format:       DefaultFormat,
		DateFormat:   DefaultDateFormat,
		StripConsole: false,
		StripFile:    true,
		Color:        ColorAlways,
	}
	if env := os.Getenv("LOGGER_COLOR"); env != "" {
		var mode ColorMode
		if err := mode.Set(env); err == nil {
			opt.Color = mode
		}
	}
	return opt
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// consoleWriter wraps out according to mode. Only an *os.File can be a
// terminal, any other writer counts as redirected output.
func consoleWriter(out io.Writer, mode ColorMode) io.Writer {
	f, isFile := out.(*os.File)
	if mode == ColorAuto {
		mode = ColorNever
		if isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			mode = ColorAlways
		}
	}
	if mode == ColorNever {
		return colorable.NewNonColorable(out)
	}
	if isFile {
		return colorable.NewColorable(f)
	}
	return out
}
