package logger

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasttemplate"
)

// Template placeholders understood by Formatter.
const (
	tagTime    = "time"
	tagLevel   = "level"
	tagMessage = "message"
	tagPid     = "pid"
)

const (
	// DefaultFormat renders "[2006-01-02 15:04:05 INFO] message".
	DefaultFormat = "[{time} {level}] {message}"
	// DefaultDateFormat is the time layout used for {time}.
	DefaultDateFormat = "2006-01-02 15:04:05"
)

// FormatterConfig describes a Formatter.
type FormatterConfig struct {
	// Format is the line template. Placeholders are {time}, {level},
	// {message} and {pid}. Braces cannot be escaped.
	// Default: DefaultFormat
	Format string
	// DateFormat is a Go time layout used to render {time}.
	// Default: DefaultDateFormat
	DateFormat string
	// Strip removes ANSI escapes from the rendered line.
	Strip bool
	// Color wraps the whole line in one color. Setting it implies Strip so
	// that colors embedded in the message cannot end the line color early.
	Color Color
}

// Formatter renders a record into one line of text. It is immutable and
// safe for concurrent use.
type Formatter struct {
	tmpl       *fasttemplate.Template
	format     string
	dateFormat string
	strip      bool
	color      Color
}

// NewFormatter checks cfg and returns a Formatter for it. Template and
// color errors are reported here, never when a record is formatted.
func NewFormatter(cfg FormatterConfig) (*Formatter, error) {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}
	if !cfg.Color.Valid() {
		return nil, errors.Errorf("unknown color %q", cfg.Color)
	}
	tmpl, err := fasttemplate.NewTemplate(cfg.Format, "{", "}")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log format %q", cfg.Format)
	}
	if _, err := tmpl.ExecuteFunc(io.Discard, checkTag); err != nil {
		return nil, errors.Wrapf(err, "invalid log format %q", cfg.Format)
	}
	return &Formatter{
		tmpl:       tmpl,
		format:     cfg.Format,
		dateFormat: cfg.DateFormat,
		strip:      cfg.Strip,
		color:      cfg.Color,
	}, nil
}

func checkTag(_ io.Writer, tag string) (int, error) {
	switch tag {
	case tagTime, tagLevel, tagMessage, tagPid:
		return 0, nil
	}
	return 0, errors.Errorf("unknown placeholder {%s}", tag)
}

// Config returns the configuration the Formatter was built from, with
// defaults filled in.
func (f *Formatter) Config() FormatterConfig {
	return FormatterConfig{
		Format:     f.format,
		DateFormat: f.dateFormat,
		Strip:      f.strip,
		Color:      f.color,
	}
}

// FormatRecord renders entry without a trailing newline.
func (f *Formatter) FormatRecord(entry *logrus.Entry) string {
	text := f.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return io.WriteString(w, f.field(entry, tag))
	})
	if f.strip || f.color != NoColor {
		text = Strip(text)
	}
	if f.color != NoColor {
		text = Colored(text, f.color)
	}
	return text
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(f.FormatRecord(entry) + "\n"), nil
}

func (f *Formatter) field(entry *logrus.Entry, tag string) string {
	switch tag {
	case tagTime:
		return entry.Time.Format(f.dateFormat)
	case tagLevel:
		return LevelName(entry.Level)
	case tagMessage:
		return entry.Message
	case tagPid:
		return strconv.Itoa(os.Getpid())
	}
	return ""
}
