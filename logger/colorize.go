package logger

import "fmt"

// The colorizers below tag a value with the color of its category so that
// paths, times and values stand out inside a console message. Values are
// rendered with fmt.Sprint, so a type controls its text by implementing
// fmt.Stringer.

// URL colors v as a URL.
func URL(v any) string { return Colored(fmt.Sprint(v), FileColor) }

// File colors v as a file path.
func File(v any) string { return Colored(fmt.Sprint(v), FileColor) }

// Dir colors v as a directory.
func Dir(v any) string { return Colored(fmt.Sprint(v), DirColor) }

// Time colors v as a time or duration.
func Time(v any) string { return Colored(fmt.Sprint(v), TimeColor) }

// Place colors v as a place.
func Place(v any) string { return Colored(fmt.Sprint(v), PlaceColor) }

// Val colors v as a value.
func Val(v any) string { return Colored(fmt.Sprint(v), ValueColor) }

// Name colors v as a name.
func Name(v any) string { return Colored(fmt.Sprint(v), NameColor) }
