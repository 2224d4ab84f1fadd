package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// routedLevels are the levels that get handlers, in routing order.
var routedLevels = []Level{InfoLevel, WarnLevel, ErrorLevel}

// consoleColors holds the fixed console color per level. File handlers
// are never colored.
var consoleColors = map[Level]Color{
	InfoLevel:  NoColor,
	WarnLevel:  WarningColor,
	ErrorLevel: ErrorColor,
}

// Router is a complete routing table: one console handler per routed
// level and, when a file is configured, one file handler per level.
type Router struct {
	handlers []*Handler
	filePath string

	mu   sync.Mutex // guards file
	file *os.File
}

// NewRouter builds the routing table described by opt. It creates the log
// file's directory and opens the file for appending; any failure there or
// in the format is returned and nothing is left open.
func NewRouter(opt Options) (*Router, error) {
	path, err := expandPath(opt.FilePath)
	if err != nil {
		return nil, err
	}

	formatters := make(map[string]*Formatter, 2*len(routedLevels))
	for _, level := range routedLevels {
		console, err := NewFormatter(FormatterConfig{
			Format:     opt.Format,
			DateFormat: opt.DateFormat,
			Strip:      opt.StripConsole,
			Color:      consoleColors[level],
		})
		if err != nil {
			return nil, err
		}
		formatters[ConsoleDestination+level.String()] = console
		if path == "" {
			continue
		}
		file, err := NewFormatter(FormatterConfig{
			Format:     opt.Format,
			DateFormat: opt.DateFormat,
			Strip:      opt.StripFile,
		})
		if err != nil {
			return nil, err
		}
		formatters[FileDestination+level.String()] = file
	}

	r := &Router{filePath: path}
	var fileDest *destination
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create log directory for %q", path)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open log file %q", path)
		}
		r.file = f
		fileDest = newDestination(FileDestination, f)
	}
	consoleDest := newDestination(ConsoleDestination, consoleWriter(outStdout, opt.Color))

	for _, level := range routedLevels {
		r.handlers = append(r.handlers, &Handler{
			filter:    LevelFilter{Level: level},
			formatter: formatters[ConsoleDestination+level.String()],
			dest:      consoleDest,
		})
		if fileDest != nil {
			r.handlers = append(r.handlers, &Handler{
				filter:    LevelFilter{Level: level},
				formatter: formatters[FileDestination+level.String()],
				dest:      fileDest,
			})
		}
	}
	return r, nil
}

// expandPath resolves a leading "~" to the home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand log file path %q", path)
	}
	return expanded, nil
}

// Handlers returns the handlers in routing order.
func (r *Router) Handlers() []*Handler {
	out := make([]*Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// FilePath returns the expanded log file path, or "" for console only.
func (r *Router) FilePath() string {
	return r.filePath
}

// consoleOnly returns a copy of r without its file handlers.
func (r *Router) consoleOnly() *Router {
	out := &Router{}
	for _, h := range r.handlers {
		if h.dest.name == ConsoleDestination {
			out.handlers = append(out.handlers, h)
		}
	}
	return out
}

// hooks groups the handlers by level the way logrus stores them.
func (r *Router) hooks() logrus.LevelHooks {
	hooks := make(logrus.LevelHooks)
	for _, h := range r.handlers {
		hooks.Add(h)
	}
	return hooks
}

// Apply makes r the only set of handlers on l and drops everything below
// INFO before a record is created. The hook set is swapped in one step.
func (r *Router) Apply(l *logrus.Logger) {
	l.SetLevel(InfoLevel)
	l.ReplaceHooks(r.hooks())
}

// hasOpenFile reports whether r still holds an open log file.
func (r *Router) hasOpenFile() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file != nil
}

// Close closes the log file, if any. It is safe to call more than once
// and from several goroutines.
func (r *Router) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

var (
	installMu sync.Mutex
	active    *Router
)

// Install makes r the process-wide routing table and returns the one it
// replaced, which the caller owns and should Close.
func Install(r *Router) (previous *Router) {
	installMu.Lock()
	defer installMu.Unlock()
	return installLocked(r)
}

func installLocked(r *Router) (previous *Router) {
	r.Apply(std)
	previous, active = active, r
	return previous
}

// Active returns the installed routing table, nil before the first Install.
func Active() *Router {
	installMu.Lock()
	defer installMu.Unlock()
	return active
}

// Configure builds a Router from opt and installs it, closing the log
// file of the table it replaces. On error the current table stays in place.
func Configure(opt Options) error {
	r, err := NewRouter(opt)
	if err != nil {
		return err
	}
	return Install(r).Close()
}
