package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/trickstertwo/xclock"
)

// Level is the severity of a record.
type Level = logrus.Level

// Levels used by this package. Only Info, Warn and Error are routed.
const (
	// DebugLevel is accepted but never emitted.
	DebugLevel = logrus.DebugLevel
	// InfoLevel is routed to the console uncolored.
	InfoLevel = logrus.InfoLevel
	// WarnLevel is routed to the console in yellow.
	WarnLevel = logrus.WarnLevel
	// ErrorLevel is routed to the console in red.
	ErrorLevel = logrus.ErrorLevel
	// FatalLevel has no handler; records at this level are dropped.
	FatalLevel = logrus.FatalLevel
)

// RoutedLevels returns the levels that have handlers, in routing order.
func RoutedLevels() []Level {
	out := make([]Level, len(routedLevels))
	copy(out, routedLevels)
	return out
}

// LevelName returns the upper-case name of level, e.g. "WARNING".
func LevelName(level Level) string {
	return strings.ToUpper(level.String())
}

// std is the process-wide logger. Its own output is discarded: records
// only reach the console and the file through the installed handlers.
var std = newStandardLogger()

func newStandardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	l.Formatter = discardFormatter{}
	l.Level = InfoLevel
	return l
}

type discardFormatter struct{}

func (discardFormatter) Format(*logrus.Entry) ([]byte, error) { return nil, nil }

// StandardLogger returns the process-wide logrus logger the routing table
// is installed on. Records logged on it directly are routed the same way
// as the package functions, but logrus stamps them with time.Now(); use
// WithTime(xclock.Now()) to follow the xclock default clock.
func StandardLogger() *logrus.Logger {
	return std
}

func init() {
	if err := Configure(DefaultOptions()); err != nil {
		panic(err)
	}
}

// Close closes the log file of the installed routing table and keeps
// logging to the console only. Safe to call more than once.
func Close() error {
	installMu.Lock()
	defer installMu.Unlock()
	if active == nil || !active.hasOpenFile() {
		return nil
	}
	old := active
	installLocked(old.consoleOnly())
	return old.Close()
}

func logf(level Level, format string, v ...any) {
	if !std.IsLevelEnabled(level) {
		return
	}
	std.WithTime(xclock.Now()).Logf(level, format, v...)
}

func logln(level Level, v ...any) {
	if !std.IsLevelEnabled(level) {
		return
	}
	std.WithTime(xclock.Now()).Logln(level, v...)
}

// Log logs the operands, formatted with fmt.Sprint, at level. Levels
// without a handler produce no output; PanicLevel still panics as logrus
// does.
func Log(level Level, v ...any) {
	if !std.IsLevelEnabled(level) {
		return
	}
	std.WithTime(xclock.Now()).Log(level, v...)
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Debugf logs a debug message. Debug is below INFO and never emitted.
func Debugf(format string, v ...any) { logf(DebugLevel, format, v...) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { logf(InfoLevel, format, v...) }

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { logf(WarnLevel, format, v...) }

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { logf(ErrorLevel, format, v...) }

// --- Plain logging methods (Println style) ---

// Debugln logs a debug message. Debug is below INFO and never emitted.
func Debugln(v ...any) { logln(DebugLevel, v...) }

// Infoln logs an informational message, operands separated by spaces.
func Infoln(v ...any) { logln(InfoLevel, v...) }

// Warnln logs a warning message, operands separated by spaces.
func Warnln(v ...any) { logln(WarnLevel, v...) }

// Errorln logs an error message, operands separated by spaces.
func Errorln(v ...any) { logln(ErrorLevel, v...) }

// --- API logging methods (HTTP status code based) ---

// Api logs an HTTP API call with the level chosen from the status code:
// 1xx-3xx -> INFO, 4xx -> WARNING, 5xx -> ERROR.
//
// Example:
//
//	logger.Api(200, "api call successful")
//	logger.Api(404, "resource not found")
func Api(statusCode int, msg string) {
	logf(statusCodeToLevel(statusCode), "[%d] %s", statusCode, msg)
}

// statusCodeToLevel maps HTTP status codes to log levels.
func statusCodeToLevel(code int) Level {
	switch {
	case code >= 500:
		return ErrorLevel
	case code >= 400:
		return WarnLevel
	default:
		return InfoLevel // 1xx, 2xx, 3xx
	}
}
