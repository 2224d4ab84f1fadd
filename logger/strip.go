package logger

import (
	"fmt"
	"regexp"
)

// ansiEscape matches ESC up to and including the next 'm'.
var ansiEscape = regexp.MustCompile("\x1b[^m]*m")

// Strip returns the text form of v with every ANSI color escape removed.
func Strip(v any) string {
	return ansiEscape.ReplaceAllString(fmt.Sprint(v), "")
}
